package conversion_test

import (
	"conversion-oracle/conversion"
	"conversion-oracle/primitive"
	"fmt"
)

func Example() {
	fmt.Println(conversion.Checked(conversion.Int8(-1), primitive.KindUint8).IsRepresentable())
	fmt.Println(conversion.Checked(conversion.Float64(255), primitive.KindUint8))
	fmt.Println(conversion.Checked(conversion.Float64(0.5), primitive.KindUint8))
	fmt.Println(conversion.Truncating(conversion.Int16(-1), primitive.KindUint8))
	fmt.Println(conversion.Trapping(conversion.Float32(127.5), primitive.KindUint8))
	// Output:
	// false
	// Representable(+255)
	// NotRepresentable(value has a fractional part: +0.5)
	// +255
	// +127
}

func ExampleParse() {
	for _, literal := range []string{"16777217", "-0", "0.1", "1e39", "-.signalingNaN"} {
		v, err := conversion.Parse(primitive.KindFloat32, literal)
		fmt.Println(v, err)
	}

	_, err := conversion.Parse(primitive.KindUint8, "256")
	fmt.Println(err)
	// Output:
	// +16777216 <nil>
	// -0 <nil>
	// +0.1 <nil>
	// +.infinity <nil>
	// -.signalingNaN <nil>
	// value is out of range: 256 does not fit UInt8
}

func ExampleOracle_Truncating() {
	o := conversion.New(conversion.WithFaultHandler(func(f *conversion.Fault) {
		fmt.Println("fault:", f)
	}))

	fmt.Println(o.Truncating(conversion.Uint16(511), primitive.KindInt8))
	fmt.Println(o.Truncating(conversion.Float32(127.5), primitive.KindUint8))
	// Output:
	// -1
	// fault: truncating conversion of Float32(+127.5) to UInt8: value has a fractional part: +127.5
	// +0
}
