package conversion

import (
	"math/big"
	"reflect"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"

	"conversion-oracle/primitive"
)

// Of wraps a native Go number, named types included. float16.Float16 is
// treated as a Float16 rather than as its uint16 representation.
func Of[T constraints.Integer | constraints.Float](v T) Value {
	kind := primitive.FromReflectType(reflect.TypeFor[T]())

	switch {
	case kind == primitive.KindFloat16:
		return Float16(float16.Frombits(uint16(v)))
	case kind == primitive.KindFloat32:
		return Float32(float32(v))
	case kind == primitive.KindFloat64:
		return Float64(float64(v))
	case kind.IsSigned():
		return newInteger(kind, big.NewInt(int64(v)))
	default:
		return newInteger(kind, new(big.Int).SetUint64(uint64(v)))
	}
}

func integerKindOf[T constraints.Integer]() (primitive.KindEnum, bool) {
	kind := primitive.FromReflectType(reflect.TypeFor[T]())
	return kind, kind.IsInteger()
}

func toNative[T constraints.Integer](v Value) T {
	if v.kind.IsSigned() {
		return T(v.integer.Int64())
	}

	return T(v.integer.Uint64())
}

// Exactly converts v to T when it is exactly representable.
func Exactly[T constraints.Integer](v Value) (T, bool) {
	kind, ok := integerKindOf[T]()
	if !ok {
		return 0, false
	}

	converted, ok := Checked(v, kind).Value()
	if !ok {
		return 0, false
	}

	return toNative[T](converted), true
}

// TruncatingAs runs o.Truncating towards T. A nil oracle means Default().
func TruncatingAs[T constraints.Integer](o *Oracle, v Value) T {
	if o == nil {
		o = defaultOracle
	}

	kind, ok := integerKindOf[T]()
	if !ok {
		o.fault(v, kind, PolicyTruncating, unsupportedTarget(kind))
		return 0
	}

	return toNative[T](o.Truncating(v, kind))
}

// TrappingAs runs o.Trapping towards T. A nil oracle means Default().
func TrappingAs[T constraints.Integer](o *Oracle, v Value) T {
	if o == nil {
		o = defaultOracle
	}

	kind, ok := integerKindOf[T]()
	if !ok {
		o.fault(v, kind, PolicyTrapping, unsupportedTarget(kind))
		return 0
	}

	return toNative[T](o.Trapping(v, kind))
}
