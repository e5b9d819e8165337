package conversion_test

import (
	"conversion-oracle/conversion"
	"conversion-oracle/primitive"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    primitive.KindEnum
		literal string
		want    string
	}{
		{primitive.KindFloat16, "2049", "+2048"},
		{primitive.KindFloat16, "2051", "+2052"},
		{primitive.KindFloat16, "65504", "+65504"},
		{primitive.KindFloat16, "65519", "+65504"},
		{primitive.KindFloat16, "65520", "+.infinity"},
		{primitive.KindFloat16, "-65520", "-.infinity"},
		{primitive.KindFloat32, "16777217", "+16777216"},
		{primitive.KindFloat32, "16777219", "+16777220"},
		{primitive.KindFloat32, "-127.5", "-127.5"},
		{primitive.KindFloat64, "9007199254740993", "+9007199254740992"},
		{primitive.KindFloat64, "2e-324", "+0"},
		{primitive.KindFloat64, "-2e-324", "-0"},
		{primitive.KindFloat64, "1e400", "+.infinity"},
		{primitive.KindFloat80, "18446744073709551615", "+18446744073709551615"},
		{primitive.KindFloat80, "18446744073709551617", "+18446744073709551616"},
		{primitive.KindFloat64, "-0", "-0"},
		{primitive.KindFloat64, "+0.0", "+0"},
		{primitive.KindFloat32, ".infinity", "+.infinity"},
		{primitive.KindFloat32, "-inf", "-.infinity"},
		{primitive.KindFloat32, "+.NaN", "+.nan"},
		{primitive.KindFloat32, "-.signalingNaN", "-.signalingNaN"},
		{primitive.KindFloat64, "snan", "+.signalingNaN"},
		{primitive.KindInt8, "+127", "+127"},
		{primitive.KindInt8, "-128", "-128"},
		{primitive.KindUint64, " 18446744073709551615 ", "+18446744073709551615"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.Name()+"/"+tt.literal, func(t *testing.T) {
			t.Parallel()

			v, err := conversion.Parse(tt.kind, tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    primitive.KindEnum
		literal string
		want    error
	}{
		{primitive.KindUint8, "256", conversion.ErrOutOfRange},
		{primitive.KindUint8, "-1", conversion.ErrOutOfRange},
		{primitive.KindUint8, "1.5", conversion.ErrInvalidLiteral},
		{primitive.KindUint8, "", conversion.ErrInvalidLiteral},
		{primitive.KindFloat32, "abc", conversion.ErrInvalidLiteral},
		{primitive.KindFloat32, "-", conversion.ErrInvalidLiteral},
		{primitive.KindFloat32, "   ", conversion.ErrInvalidLiteral},
		{primitive.KindFloat32, "1/3", conversion.ErrInvalidLiteral},
		{primitive.KindFloat64, "-1/3", conversion.ErrInvalidLiteral},
		{primitive.KindFloat32, "0x1p-2", conversion.ErrInvalidLiteral},
		{primitive.KindFloat64, "0b101", conversion.ErrInvalidLiteral},
		{primitive.KindFloat64, "0o17", conversion.ErrInvalidLiteral},
		{primitive.KindFloat64, "--1", conversion.ErrInvalidLiteral},
		{primitive.KindFloat64, "1e", conversion.ErrInvalidLiteral},
		{primitive.KindFloat64, ".", conversion.ErrInvalidLiteral},
		{primitive.KindInt32, "0x10", conversion.ErrInvalidLiteral},
		{primitive.KindEnum(0), "1", conversion.ErrUnsupportedKind},
	}

	for _, tt := range tests {
		_, err := conversion.Parse(tt.kind, tt.literal)
		assert.ErrorIs(t, err, tt.want, "%s %q", tt.kind, tt.literal)
	}

	assert.Panics(t, func() { conversion.MustParse(primitive.KindInt8, "128") })
}

func TestParseAgreesWithStrconv(t *testing.T) {
	t.Parallel()

	literals := []string{
		"0.1", "0.3", "1", "-1", "255.5", "1e23", "123456789012345678901234567890",
		"2.2250738585072011e-308", "4.9406564584124654e-324", "5e-324", "3e-324",
		"1.7976931348623157e308", "-2.5e-10", "1.00000000000000011102230246251565404236316680908203125",
		"16777217", "3.4028234663852886e38", "1.401298464324817e-45", "1.1754942e-38",
		"340282356779733661637539395458142568447", "6.103515625e-05", "65519.99",
	}

	for _, s := range literals {
		want64, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, s)

		v64, err := conversion.Parse(primitive.KindFloat64, s)
		require.NoError(t, err, s)

		got64, _ := v64.BigFloat().Float64()
		assert.Equal(t, math.Float64bits(want64), math.Float64bits(got64), "float64 %s", s)
		assert.True(t, v64.Equal(conversion.Float64(want64)), "float64 %s", s)

		want32, err := strconv.ParseFloat(s, 32)
		if err != nil {
			// out of float32 range
			continue
		}

		v32, err := conversion.Parse(primitive.KindFloat32, s)
		require.NoError(t, err, s)
		assert.True(t, v32.Equal(conversion.Float32(float32(want32))), "float32 %s: got %s", s, v32)
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	values := []conversion.Value{
		conversion.Float32(0.1),
		conversion.Float32(-128.5),
		conversion.Float64(math.Pi),
		conversion.Float64(negZero()),
		conversion.Float64(math.SmallestNonzeroFloat64),
		conversion.Float64(math.MaxFloat64),
		conversion.Float64(math.Inf(-1)),
		conversion.Float32(math.Float32frombits(0x7fa00000)),
		conversion.Int64(math.MinInt64),
		conversion.Uint(math.MaxUint),
	}

	for _, v := range values {
		back, err := conversion.Parse(v.Kind(), v.String())
		require.NoError(t, err, v.GoString())
		assert.True(t, v.Equal(back), "%s parsed back as %s", v.GoString(), back.GoString())
	}
}
