package conversion

import (
	"fmt"
	"math"
	"math/big"

	"github.com/x448/float16"

	"conversion-oracle/primitive"
)

type nanKind uint8

const (
	notNaN nanKind = iota
	quietNaN
	signalingNaN
)

// Value is an immutable numeric value tagged with its kind.
//
// Integer kinds hold an exact *big.Int. Float kinds hold an exact *big.Float
// (finite or infinite, negative zero preserved) or a NaN marker. The zero Value
// has no kind and is rejected by every operation.
type Value struct {
	kind    primitive.KindEnum
	integer *big.Int
	float   *big.Float
	nan     nanKind
	signbit bool // NaN sign only
}

func newInteger(kind primitive.KindEnum, v *big.Int) Value {
	return Value{kind: kind, integer: v}
}

func newFloat(kind primitive.KindEnum, f *big.Float) Value {
	return Value{kind: kind, float: f}
}

func newNaN(kind primitive.KindEnum, nan nanKind, negative bool) Value {
	return Value{kind: kind, nan: nan, signbit: negative}
}

func Int(v int) Value       { return newInteger(primitive.KindInt, big.NewInt(int64(v))) }
func Int8(v int8) Value     { return newInteger(primitive.KindInt8, big.NewInt(int64(v))) }
func Int16(v int16) Value   { return newInteger(primitive.KindInt16, big.NewInt(int64(v))) }
func Int32(v int32) Value   { return newInteger(primitive.KindInt32, big.NewInt(int64(v))) }
func Int64(v int64) Value   { return newInteger(primitive.KindInt64, big.NewInt(v)) }
func Uint(v uint) Value     { return newInteger(primitive.KindUint, new(big.Int).SetUint64(uint64(v))) }
func Uint8(v uint8) Value   { return newInteger(primitive.KindUint8, new(big.Int).SetUint64(uint64(v))) }
func Uint16(v uint16) Value { return newInteger(primitive.KindUint16, new(big.Int).SetUint64(uint64(v))) }
func Uint32(v uint32) Value { return newInteger(primitive.KindUint32, new(big.Int).SetUint64(uint64(v))) }
func Uint64(v uint64) Value { return newInteger(primitive.KindUint64, new(big.Int).SetUint64(v)) }

// Float16 keeps the exact bits of h, signaling NaNs included.
func Float16(h float16.Float16) Value {
	return fromIEEE(primitive.KindFloat16, uint64(h.Bits()))
}

// Float32 keeps the exact bits of f, signaling NaNs included.
func Float32(f float32) Value {
	return fromIEEE(primitive.KindFloat32, uint64(math.Float32bits(f)))
}

func Float64(f float64) Value {
	return fromIEEE(primitive.KindFloat64, math.Float64bits(f))
}

// Float80 rounds x to the extended precision format. Magnitudes beyond the
// largest finite value become infinities.
func Float80(x *big.Float) Value {
	return RoundFloat(primitive.KindFloat80, x)
}

// Integer builds a value of an integer kind, failing when v does not fit.
func Integer(kind primitive.KindEnum, v *big.Int) (Value, error) {
	if !kind.IsInteger() {
		return Value{}, fmt.Errorf("%w: %s is not an integer kind", ErrUnsupportedKind, kind.Name())
	}

	if !kind.Contains(v) {
		return Value{}, fmt.Errorf("%w: %s does not fit %s", ErrOutOfRange, v, kind.Name())
	}

	return newInteger(kind, new(big.Int).Set(v)), nil
}

// FromBits interprets the low bits of raw as a value of kind: two's complement
// for integers, IEEE 754 for Float16, Float32 and Float64.
// Float80 needs 80 bits, use Float80FromBits.
func FromBits(kind primitive.KindEnum, raw uint64) (Value, error) {
	switch {
	case kind.IsInteger():
		return newInteger(kind, kind.Wrap(new(big.Int).SetUint64(raw))), nil
	case kind == primitive.KindFloat80 || !kind.IsFloat():
		return Value{}, fmt.Errorf("%w: cannot build %s from 64 bits", ErrUnsupportedKind, kind.Name())
	}

	width := kind.Bits()
	return fromIEEE(kind, raw&(1<<width-1)), nil
}

// Zero returns the zero value of kind.
func Zero(kind primitive.KindEnum) Value {
	switch {
	case kind.IsInteger():
		return newInteger(kind, new(big.Int))
	case kind.IsFloat():
		return newFloat(kind, new(big.Float).SetPrec(uint(kind.SignificandBits())))
	default:
		return Value{}
	}
}

func (v Value) Kind() primitive.KindEnum { return v.kind }
func (v Value) IsValid() bool            { return v.kind.IsValid() }
func (v Value) IsInteger() bool          { return v.kind.IsInteger() }
func (v Value) IsFloat() bool            { return v.kind.IsFloat() }
func (v Value) IsNaN() bool              { return v.nan != notNaN }
func (v Value) IsSignalingNaN() bool     { return v.nan == signalingNaN }

// IsInf reports whether v is an infinity with the given sign: >0 positive,
// <0 negative, 0 either.
func (v Value) IsInf(sign int) bool {
	if v.float == nil || !v.float.IsInf() {
		return false
	}

	return sign == 0 || (sign > 0) == !v.float.Signbit()
}

// IsFinite reports whether v is an integer or a finite float.
func (v Value) IsFinite() bool {
	if v.IsInteger() {
		return true
	}

	return v.float != nil && !v.float.IsInf()
}

// Signbit reports whether v is negative or negative zero (or a NaN with its sign bit set).
func (v Value) Signbit() bool {
	switch {
	case v.integer != nil:
		return v.integer.Sign() < 0
	case v.float != nil:
		return v.float.Signbit()
	default:
		return v.signbit
	}
}

// BigInt returns a copy of an integer value, or nil for floats.
func (v Value) BigInt() *big.Int {
	if v.integer == nil {
		return nil
	}

	return new(big.Int).Set(v.integer)
}

// BigFloat returns a copy of a non-NaN float value, or nil otherwise.
func (v Value) BigFloat() *big.Float {
	if v.float == nil {
		return nil
	}

	return new(big.Float).Copy(v.float)
}

// Int64 returns an integer value as int64, when it fits.
func (v Value) Int64() (int64, bool) {
	if v.integer == nil || !v.integer.IsInt64() {
		return 0, false
	}

	return v.integer.Int64(), true
}

// Uint64 returns an integer value as uint64, when it fits.
func (v Value) Uint64() (uint64, bool) {
	if v.integer == nil || !v.integer.IsUint64() {
		return 0, false
	}

	return v.integer.Uint64(), true
}

// Equal reports whether both values have the same kind and the same value.
// Zeros of different sign differ, NaNs equal NaNs of the same kind, sign and signaling state.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch {
	case v.integer != nil || other.integer != nil:
		return v.integer != nil && other.integer != nil && v.integer.Cmp(other.integer) == 0
	case v.float != nil || other.float != nil:
		return v.float != nil && other.float != nil &&
			v.float.Cmp(other.float) == 0 && v.float.Signbit() == other.float.Signbit()
	default:
		return v.nan == other.nan && v.signbit == other.signbit
	}
}

// String renders v in the literal form accepted by Parse: +255, -0.5, -0,
// +.infinity, -.nan, +.signalingNaN.
func (v Value) String() string {
	sign := "+"
	if v.Signbit() {
		sign = "-"
	}

	switch {
	case !v.IsValid():
		return "<invalid>"
	case v.integer != nil:
		if v.integer.Sign() < 0 {
			return v.integer.String()
		}
		return sign + v.integer.String()
	case v.nan == quietNaN:
		return sign + ".nan"
	case v.nan == signalingNaN:
		return sign + ".signalingNaN"
	case v.float.IsInf():
		return sign + ".infinity"
	}

	abs := new(big.Float).Abs(v.float)
	if abs.IsInt() {
		n, _ := abs.Int(nil)
		return sign + n.String()
	}

	return sign + new(big.Float).SetPrec(uint(v.kind.SignificandBits())).Set(abs).Text('f', -1)
}

// GoString includes the kind, e.g. UInt8(+255).
func (v Value) GoString() string {
	return v.kind.Name() + "(" + v.String() + ")"
}
