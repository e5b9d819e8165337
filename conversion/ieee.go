package conversion

import (
	"math/big"

	"conversion-oracle/primitive"
	"conversion-oracle/utils"
)

// fromIEEE decodes an IEEE 754 binary interchange format with a hidden bit.
func fromIEEE(kind primitive.KindEnum, bits uint64) Value {
	fracBits := kind.SignificandBits() - 1
	expBits := kind.ExponentBits()
	fracMask := uint64(1)<<fracBits - 1
	expMask := uint64(1)<<expBits - 1
	bias := int(expMask >> 1)

	negative := bits>>(fracBits+expBits)&1 == 1
	exp := bits >> fracBits & expMask
	frac := bits & fracMask

	switch {
	case exp == expMask && frac == 0:
		return newFloat(kind, new(big.Float).SetInf(negative))
	case exp == expMask:
		if frac>>(fracBits-1)&1 == 1 {
			return newNaN(kind, quietNaN, negative)
		}
		return newNaN(kind, signalingNaN, negative)
	}

	mant, scale := frac, 1-bias-fracBits // subnormal or zero
	if utils.IsInRange(1, exp, expMask-1) {
		mant |= 1 << fracBits
		scale = int(exp) - bias - fracBits
	}

	return newFloat(kind, scaled(mant, scale, kind, negative))
}

// Float80FromBits decodes the x87 extended precision layout: sign and 15-bit
// exponent in signExp, 64-bit significand with an explicit integer bit.
func Float80FromBits(signExp uint16, significand uint64) Value {
	const (
		expMask = 0x7fff
		bias    = 16383
		quiet   = 1 << 62
	)

	kind := primitive.KindFloat80
	negative := signExp&0x8000 != 0
	exp := int(signExp & expMask)
	frac := significand &^ (1 << 63)

	switch {
	case exp == expMask && frac == 0:
		return newFloat(kind, new(big.Float).SetInf(negative))
	case exp == expMask && frac&quiet != 0:
		return newNaN(kind, quietNaN, negative)
	case exp == expMask:
		return newNaN(kind, signalingNaN, negative)
	case exp == 0:
		return newFloat(kind, scaled(significand, 1-bias-63, kind, negative))
	default:
		return newFloat(kind, scaled(significand, exp-bias-63, kind, negative))
	}
}

func scaled(mant uint64, scale int, kind primitive.KindEnum, negative bool) *big.Float {
	f := new(big.Float).SetPrec(uint(kind.SignificandBits())).SetUint64(mant)
	f.SetMantExp(f, scale)
	if negative {
		f.Neg(f)
	}

	return f
}

// RoundFloat rounds x to the nearest value of a float kind, ties to even,
// honoring subnormals and overflowing to infinity. Non-float kinds yield the
// zero Value.
func RoundFloat(kind primitive.KindEnum, x *big.Float) Value {
	if !kind.IsFloat() {
		return Value{}
	}

	if x.IsInf() {
		return newFloat(kind, new(big.Float).SetInf(x.Signbit()))
	}

	r, _ := x.Rat(nil)
	return newFloat(kind, roundRat(kind, r, x.Signbit()))
}

// IsExactIn reports whether x is a finite value of the float kind, unchanged by rounding.
func IsExactIn(kind primitive.KindEnum, x *big.Float) bool {
	if !kind.IsFloat() || x.IsInf() {
		return false
	}

	rounded := RoundFloat(kind, x)
	return !rounded.IsInf(0) && rounded.float.Cmp(x) == 0
}

// roundRat rounds an exact rational into the format of a float kind. negative
// carries the sign of a zero r.
func roundRat(kind primitive.KindEnum, r *big.Rat, negative bool) *big.Float {
	p := kind.SignificandBits()
	bias := 1<<(kind.ExponentBits()-1) - 1
	emin, emax := 1-bias, bias
	quantumExp := emin - p + 1

	signed := func(z *big.Float) *big.Float {
		z.SetPrec(uint(p))
		if negative != z.Signbit() {
			z.Neg(z)
		}
		return z
	}

	if r.Sign() == 0 {
		return signed(new(big.Float))
	}
	negative = r.Sign() < 0

	// ToZero never carries into the next binade, so the exponent is exact
	exp := new(big.Float).SetPrec(64).SetMode(big.ToZero).SetRat(r).MantExp(nil)
	prec := min(p, exp-quantumExp)

	var z *big.Float
	switch {
	case prec >= 1:
		z = new(big.Float).SetPrec(uint(prec)).SetMode(big.ToNearestEven).SetRat(r)
	case prec == 0:
		// |r| lies in [quantum/2, quantum): the tie goes to zero
		half := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(1-quantumExp)))
		z = new(big.Float)
		if new(big.Rat).Abs(r).Cmp(half) > 0 {
			z.SetMantExp(big.NewFloat(1), quantumExp)
		}
	default:
		z = new(big.Float)
	}

	if z.Sign() != 0 && z.MantExp(nil) > emax+1 {
		return new(big.Float).SetInf(negative)
	}

	return signed(z)
}
