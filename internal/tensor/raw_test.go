package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		want  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Float16, 2},
		{BFloat16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		t.Run(tt.dtype.String(), func(t *testing.T) {
			if got := tt.dtype.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewRawAllocation(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, err)

	assert.True(t, raw.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, Float32, raw.DType())
	assert.Equal(t, CPU, raw.Device())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 24, raw.ByteSize())
	assert.Len(t, raw.Data(), 24)

	_, err = NewRaw(Shape{2, -1}, Float32, CPU)
	assert.Error(t, err)
}

func TestTypedViews(t *testing.T) {
	raw, err := FromSlice([]int64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	view := raw.AsInt64()
	assert.Equal(t, []int64{1, 2, 3, 4}, view)

	// The view aliases the buffer.
	view[0] = 42
	again, err := Item[int64](mustNarrowTo(t, raw))
	require.NoError(t, err)
	assert.Equal(t, int64(42), again)

	assert.Panics(t, func() { raw.AsFloat32() }, "wrong-dtype view must panic")
}

// mustNarrowTo slices out element [0, 0] as a one-element tensor.
func mustNarrowTo(t *testing.T, raw *RawTensor) *RawTensor {
	t.Helper()
	row, err := Narrow(raw, 0, 0, 1)
	require.NoError(t, err)
	cell, err := Narrow(row, 1, 0, 1)
	require.NoError(t, err)
	return cell
}

func TestCloneIsDeep(t *testing.T) {
	raw, err := FromSlice([]float32{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	clone := raw.Clone()
	clone.AsFloat32()[0] = 99

	assert.Equal(t, float32(1), raw.AsFloat32()[0])
	assert.True(t, raw.Shape().Equal(clone.Shape()))
}

func TestEqual(t *testing.T) {
	a, err := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	b, err := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	c, err := FromSlice([]float32{1, 2, 3, 4}, Shape{4})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same bytes, different shape")
	assert.False(t, a.Equal(nil))

	b.AsFloat32()[3] = 0
	assert.False(t, a.Equal(b))
}

func TestHalfPrecisionRoundTrip(t *testing.T) {
	values := []float32{0, 1, -2, 0.5, 100}

	for _, dtype := range []DataType{Float16, BFloat16} {
		t.Run(dtype.String(), func(t *testing.T) {
			raw, err := FromFloat32s(values, Shape{5}, dtype)
			require.NoError(t, err)

			assert.Equal(t, dtype, raw.DType())
			assert.Equal(t, 10, raw.ByteSize(), "5 elements * 2 bytes")

			got := raw.Float32s()
			require.Len(t, got, 5)
			for i, want := range values {
				// The chosen values are exactly representable in both
				// half-precision formats.
				assert.Equal(t, want, got[i], "index %d", i)
			}
		})
	}
}

func TestFloat32sIsViewForFloat32(t *testing.T) {
	raw, err := FromFloat32s([]float32{1, 2}, Shape{2}, Float32)
	require.NoError(t, err)

	raw.Float32s()[0] = 7
	assert.Equal(t, float32(7), raw.AsFloat32()[0])
}
