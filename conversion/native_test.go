package conversion_test

import (
	"conversion-oracle/conversion"
	"conversion-oracle/primitive"
	"math"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

type Level uint8

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value conversion.Value
		kind  primitive.KindEnum
		want  string
	}{
		{conversion.Of(uint8(255)), primitive.KindUint8, "+255"},
		{conversion.Of(Level(3)), primitive.KindUint8, "+3"},
		{conversion.Of(int64(math.MinInt64)), primitive.KindInt64, "-9223372036854775808"},
		{conversion.Of(uint64(math.MaxUint64)), primitive.KindUint64, "+18446744073709551615"},
		{conversion.Of(time.Duration(-5)), primitive.KindInt64, "-5"},
		{conversion.Of(uintptr(7)), primitive.KindUint, "+7"},
		{conversion.Of(-1), primitive.KindInt, "-1"},
		{conversion.Of(float16.Fromfloat32(-2.5)), primitive.KindFloat16, "-2.5"},
		{conversion.Of(float32(127.5)), primitive.KindFloat32, "+127.5"},
		{conversion.Of(math.Inf(1)), primitive.KindFloat64, "+.infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.value.Kind(), spew.Sdump(tt.value))
		assert.Equal(t, tt.want, tt.value.String())
	}
}

func TestExactly(t *testing.T) {
	t.Parallel()

	u, ok := conversion.Exactly[uint8](conversion.Float64(255))
	assert.True(t, ok)
	assert.Equal(t, uint8(255), u)

	_, ok = conversion.Exactly[uint8](conversion.Float64(255.5))
	assert.False(t, ok)

	_, ok = conversion.Exactly[uint8](conversion.Int8(-1))
	assert.False(t, ok)

	i, ok := conversion.Exactly[int8](conversion.Int64(math.MinInt8))
	assert.True(t, ok)
	assert.Equal(t, int8(math.MinInt8), i)

	l, ok := conversion.Exactly[Level](conversion.Uint16(9))
	assert.True(t, ok)
	assert.Equal(t, Level(9), l)

	big, ok := conversion.Exactly[uint64](conversion.Float32(18446742974197923840))
	assert.True(t, ok)
	assert.Equal(t, uint64(18446742974197923840), big)

	_, ok = conversion.Exactly[float16.Float16](conversion.Int8(1))
	assert.False(t, ok, "float16 is not an integer target")
}

func TestTruncatingAs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(255), conversion.TruncatingAs[uint8](nil, conversion.Int(-1)))
	assert.Equal(t, int8(-1), conversion.TruncatingAs[int8](nil, conversion.Uint64(math.MaxUint64)))
	assert.Equal(t, int16(-32768), conversion.TruncatingAs[int16](nil, conversion.Uint16(32768)))
	assert.Equal(t, uint32(255), conversion.TruncatingAs[uint32](nil, conversion.Float64(255)))
	assert.Panics(t, func() { conversion.TruncatingAs[uint8](nil, conversion.Float64(0.5)) })

	o, log := recordingOracle()
	assert.Zero(t, conversion.TruncatingAs[float16.Float16](o, conversion.Int8(1)))

	f := log.last()
	require.NotNil(t, f)
	assert.Equal(t, primitive.KindFloat16, f.Target)
	assert.ErrorIs(t, f, conversion.ErrUnsupportedKind)
}

func TestTrappingAs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(255), conversion.TrappingAs[uint8](nil, conversion.Float64(255.9)))
	assert.Equal(t, int8(-128), conversion.TrappingAs[int8](nil, conversion.Float32(-128.75)))
	assert.Equal(t, uint(0), conversion.TrappingAs[uint](nil, conversion.Float64(-0.5)))
	assert.Panics(t, func() { conversion.TrappingAs[uint8](nil, conversion.Float64(256)) })
	assert.Panics(t, func() { conversion.TrappingAs[uint8](nil, conversion.Int(-1)) })

	o, log := recordingOracle()
	assert.Zero(t, conversion.TrappingAs[int32](o, conversion.Float64(math.NaN())))
	require.NotNil(t, log.last())
	assert.ErrorIs(t, log.last(), conversion.ErrNotFinite)
}
