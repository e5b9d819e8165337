package primitive

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/x448/float16"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt // pointer sized
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint // pointer sized
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat16
	KindFloat32
	KindFloat64
	KindFloat80 // x87 extended precision, emulated

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Kinds returns every valid kind in declaration order.
func Kinds() []KindEnum {
	res := make([]KindEnum, 0, KindTotal-1)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		res = append(res, k)
	}

	return res
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat16, KindFloat32, KindFloat64, KindFloat80:
		return true
	}
}

// IsSigned reports whether the kind can hold negative values. Floats are signed.
func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindFloat16, KindFloat32, KindFloat64, KindFloat80:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// Bits returns the storage width of the kind.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16, KindFloat16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	case KindFloat80:
		return 80
	}
}

// SignificandBits returns the float precision, the hidden bit included.
func (k KindEnum) SignificandBits() int {
	switch k {
	default:
		panic("only float kinds has significand, but requested for: " + k.String())
	case KindFloat16:
		return 11
	case KindFloat32:
		return 24
	case KindFloat64:
		return 53
	case KindFloat80:
		return 64
	}
}

func (k KindEnum) ExponentBits() int {
	switch k {
	default:
		panic("only float kinds has exponent, but requested for: " + k.String())
	case KindFloat16:
		return 5
	case KindFloat32:
		return 8
	case KindFloat64:
		return 11
	case KindFloat80:
		return 15
	}
}

var kindNames = [...]string{
	KindInt:     "Int",
	KindInt8:    "Int8",
	KindInt16:   "Int16",
	KindInt32:   "Int32",
	KindInt64:   "Int64",
	KindUint:    "UInt",
	KindUint8:   "UInt8",
	KindUint16:  "UInt16",
	KindUint32:  "UInt32",
	KindUint64:  "UInt64",
	KindFloat16: "Float16",
	KindFloat32: "Float32",
	KindFloat64: "Float64",
	KindFloat80: "Float80",
}

// Name returns the short type name used in conversion tables, e.g. "UInt8".
func (k KindEnum) Name() string {
	if !k.IsValid() {
		return k.String()
	}

	return kindNames[k]
}

var kindsByName map[string]KindEnum

func init() {
	goNames := map[KindEnum][]string{
		KindInt:     {"int", "intptr"},
		KindInt8:    {"int8", "i8"},
		KindInt16:   {"int16", "i16"},
		KindInt32:   {"int32", "i32"},
		KindInt64:   {"int64", "i64"},
		KindUint:    {"uint", "uintptr"},
		KindUint8:   {"uint8", "u8", "byte"},
		KindUint16:  {"uint16", "u16"},
		KindUint32:  {"uint32", "u32"},
		KindUint64:  {"uint64", "u64"},
		KindFloat16: {"float16", "f16"},
		KindFloat32: {"float32", "f32"},
		KindFloat64: {"float64", "f64"},
		KindFloat80: {"float80", "f80"},
	}

	kindsByName = make(map[string]KindEnum)
	for _, k := range Kinds() {
		kindsByName[strings.ToLower(k.Name())] = k
		kindsByName[strings.ToLower(k.String())] = k
		for _, name := range goNames[k] {
			kindsByName[name] = k
		}
	}
}

// ParseKind accepts table names (UInt8), enum names (KindUint8) and Go names (uint8, u8).
func ParseKind(name string) (KindEnum, error) {
	k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown numeric kind %q", name)
	}

	return k, nil
}

func (k KindEnum) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid kind %s", k)
	}

	return []byte(k.Name()), nil
}

func (k *KindEnum) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}

// FromReflectType maps a Go type onto its numeric kind, named types included.
// float16.Float16 is recognized before its uint16 underlying type.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if rtype == reflect.TypeOf(float16.Float16(0)) {
		return KindFloat16
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint, reflect.Uintptr:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	}
}
