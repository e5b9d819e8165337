package primitive

import (
	"math/big"
)

type integerInfo struct {
	bits    int
	signed  bool
	min     *big.Int
	max     *big.Int
	mask    *big.Int
	modulus *big.Int
}

func newIntegerInfo(bits int, signed bool) integerInfo {
	one := big.NewInt(1)
	modulus := new(big.Int).Lsh(one, uint(bits))
	mask := new(big.Int).Sub(modulus, one)

	if !signed {
		return integerInfo{bits: bits, signed: false, min: big.NewInt(0), max: mask, mask: mask, modulus: modulus}
	}

	half := new(big.Int).Lsh(one, uint(bits-1))
	return integerInfo{
		bits:    bits,
		signed:  true,
		min:     new(big.Int).Neg(half),
		max:     new(big.Int).Sub(half, one),
		mask:    mask,
		modulus: modulus,
	}
}

// integerInfos is filled during variable initialization, before any init function
// (category pairs are derived from it).
var integerInfos = func() (res [KindTotal]integerInfo) {
	for _, k := range Kinds() {
		if k.IsInteger() {
			res[k] = newIntegerInfo(k.Bits(), k.IsSigned())
		}
	}

	return res
}()

func (k KindEnum) integerInfo() integerInfo {
	if !k.IsInteger() {
		panic("only integer kinds has meaningful range, but requested for: " + k.String())
	}

	return integerInfos[k]
}

// Min returns a fresh copy of the smallest value of an integer kind.
func (k KindEnum) Min() *big.Int {
	return new(big.Int).Set(k.integerInfo().min)
}

// Max returns a fresh copy of the largest value of an integer kind.
func (k KindEnum) Max() *big.Int {
	return new(big.Int).Set(k.integerInfo().max)
}

// Contains reports whether v lies within [Min, Max] of an integer kind.
func (k KindEnum) Contains(v *big.Int) bool {
	info := k.integerInfo()
	return v.Cmp(info.min) >= 0 && v.Cmp(info.max) <= 0
}

// Wrap reduces v to the two's-complement bit pattern of the kind and reads it back
// with the kind's signedness.
func (k KindEnum) Wrap(v *big.Int) *big.Int {
	info := k.integerInfo()

	pattern := new(big.Int).And(v, info.mask)
	if info.signed && pattern.Bit(info.bits-1) == 1 {
		pattern.Sub(pattern, info.modulus)
	}

	return pattern
}

// MaxExactInteger returns 2^p for a float kind: every integer with magnitude up to
// it is exactly representable, 2^p+1 is not.
func (k KindEnum) MaxExactInteger() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(k.SignificandBits()))
}

// MaxFinite returns the largest finite value of a float kind.
func (k KindEnum) MaxFinite() *big.Float {
	p := k.SignificandBits()
	bias := 1<<(k.ExponentBits()-1) - 1

	// (2^p - 1) * 2^(bias - p + 1)
	mant := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(p)), big.NewInt(1))
	res := new(big.Float).SetInt(mant)

	return res.SetMantExp(res, bias-p+1)
}

// RangeWithin reports whether every value of integer kind k is a value of other.
func (k KindEnum) RangeWithin(other KindEnum) bool {
	src, dst := k.integerInfo(), other.integerInfo()
	return src.min.Cmp(dst.min) >= 0 && src.max.Cmp(dst.max) <= 0
}
