package conversion

import (
	"fmt"
	"math/big"
	"strings"

	"conversion-oracle/primitive"
)

// Parse reads a literal of the given kind. Integers accept an optional sign and
// decimal digits; floats additionally accept fractions, exponents and the
// special forms .infinity, .nan and .signalingNaN (dot optional, sign optional).
// Float literals are rounded to the nearest value of the kind. Ratios and
// hexadecimal, octal or binary forms are rejected.
func Parse(kind primitive.KindEnum, literal string) (Value, error) {
	s := strings.TrimSpace(literal)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty literal", ErrInvalidLiteral)
	}

	switch {
	case kind.IsInteger():
		return parseInteger(kind, s)
	case kind.IsFloat():
		return parseFloat(kind, s)
	default:
		return Value{}, fmt.Errorf("%w: cannot parse %q as %s", ErrUnsupportedKind, literal, kind)
	}
}

// MustParse is like Parse but panics on error.
func MustParse(kind primitive.KindEnum, literal string) Value {
	v, err := Parse(kind, literal)
	if err != nil {
		panic(err)
	}

	return v
}

func parseInteger(kind primitive.KindEnum, s string) (Value, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q is not a %s literal", ErrInvalidLiteral, s, kind.Name())
	}

	return Integer(kind, n)
}

func parseFloat(kind primitive.KindEnum, s string) (Value, error) {
	negative := false
	body := s
	switch s[0] {
	case '-':
		negative = true
		body = s[1:]
	case '+':
		body = s[1:]
	}

	switch strings.ToLower(strings.TrimPrefix(body, ".")) {
	case "infinity", "inf":
		return newFloat(kind, new(big.Float).SetInf(negative)), nil
	case "nan":
		return newNaN(kind, quietNaN, negative), nil
	case "signalingnan", "snan":
		return newNaN(kind, signalingNaN, negative), nil
	}

	r, ok := new(big.Rat).SetString(body)
	if !ok || !isDecimal(body) {
		return Value{}, fmt.Errorf("%w: %q is not a %s literal", ErrInvalidLiteral, s, kind.Name())
	}

	if negative {
		r.Neg(r)
	}

	return newFloat(kind, roundRat(kind, r, negative)), nil
}

// isDecimal reports whether s is unsigned decimal digits with an optional
// fraction and an optional signed exponent.
func isDecimal(s string) bool {
	mantissa, exp, hasExp := strings.Cut(strings.ToLower(s), "e")
	if hasExp {
		if exp != "" && (exp[0] == '+' || exp[0] == '-') {
			exp = exp[1:]
		}

		if !allDigits(exp) {
			return false
		}
	}

	whole, frac, _ := strings.Cut(mantissa, ".")
	if whole == "" && frac == "" {
		return false
	}

	return (whole == "" || allDigits(whole)) && (frac == "" || allDigits(frac))
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
