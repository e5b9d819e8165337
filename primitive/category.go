package primitive

import (
	"maps"
	"math/big"
)

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // every source value converts exactly
	CategoryUnsafeNumber                          // some source values are not representable in the target

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

func (c CategoryEnum) String() string {
	switch c {
	case CategorySafeNumber:
		return "safe"
	case CategoryUnsafeNumber:
		return "unsafe"
	case CategoryAll:
		return "all"
	case CategoryNone:
		return "none"
	default:
		return "mixed"
	}
}

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = map[CategoryEnum]map[ConversionPair]struct{}{
		CategorySafeNumber:   {},
		CategoryUnsafeNumber: {},
	}

	for _, fromKind := range Kinds() {
		for _, toKind := range Kinds() {
			pair := ConversionPair{fromKind, toKind}
			if isLossless(pair) {
				conversionPairs[CategorySafeNumber][pair] = struct{}{}
			} else {
				conversionPairs[CategoryUnsafeNumber][pair] = struct{}{}
			}
		}
	}
}

func isLossless(pair ConversionPair) bool {
	from, to := pair.From, pair.To

	switch {
	case from.IsInteger() && to.IsInteger():
		return from.RangeWithin(to)
	case from.IsInteger() && to.IsFloat():
		// integers up to 2^p are exact; 2^p itself is a power of two
		limit := to.MaxExactInteger()
		return from.Max().Cmp(limit) <= 0 && new(big.Int).Neg(from.Min()).Cmp(limit) <= 0
	case from.IsFloat() && to.IsFloat():
		return from.SignificandBits() <= to.SignificandBits() && from.ExponentBits() <= to.ExponentBits()
	default:
		// float to integer loses fractions, infinities and NaNs
		return false
	}
}

// Category returns the category the pair belongs to.
func (p ConversionPair) Category() CategoryEnum {
	for category, pairs := range conversionPairs {
		if _, ok := pairs[p]; ok {
			return category
		}
	}

	return CategoryNone
}

// IsSafe reports whether every value of From is exactly representable in To.
func IsSafe(from, to KindEnum) bool {
	_, ok := conversionPairs[CategorySafeNumber][ConversionPair{from, to}]
	return ok
}

// Pairs returns every conversion pair belonging to the allowed categories.
func Pairs(allowed CategoryEnum) map[ConversionPair]struct{} {
	res := map[ConversionPair]struct{}{}

	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		maps.Copy(res, conversionPairs[category])
	}

	return res
}
