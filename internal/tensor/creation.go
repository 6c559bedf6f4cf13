package tensor

import (
	"fmt"

	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), CPU)
	if err != nil {
		return nil, err
	}

	copy(typedView[T](raw), data)
	return raw, nil
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) (*RawTensor, error) {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), CPU)
	if err != nil {
		return nil, err
	}

	out := typedView[T](raw)
	for i := range out {
		out[i] = value
	}
	return raw, nil
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar[T DType](value T) *RawTensor {
	raw, err := FromSlice([]T{value}, Shape{})
	if err != nil {
		panic(err) // unreachable: the empty shape always validates
	}
	return raw
}

// Item returns the single value of a 0-D (or one-element) tensor.
func Item[T DType](r *RawTensor) (T, error) {
	var zero T
	if r.NumElements() != 1 {
		return zero, fmt.Errorf("Item: tensor has %d elements, want 1 (shape %v)", r.NumElements(), r.Shape())
	}
	if got := inferDataType(zero); got != r.DType() {
		return zero, fmt.Errorf("Item: tensor dtype is %s, want %s", r.DType(), got)
	}
	return typedView[T](r)[0], nil
}

// FromFloat32s creates a tensor of the requested float dtype from float32
// values, narrowing to half precision when dtype is Float16 or BFloat16.
func FromFloat32s(data []float32, shape Shape, dtype DataType) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	switch dtype {
	case Float32:
		return FromSlice(data, shape)
	case Float16:
		raw, err := NewRaw(shape, Float16, CPU)
		if err != nil {
			return nil, err
		}
		out := raw.AsFloat16()
		for i, f := range data {
			out[i] = float16.Fromfloat32(f)
		}
		return raw, nil
	case BFloat16:
		raw, err := NewRaw(shape, BFloat16, CPU)
		if err != nil {
			return nil, err
		}
		copy(raw.data, bfloat16.EncodeFloat32(data))
		return raw, nil
	default:
		return nil, fmt.Errorf("FromFloat32s: unsupported dtype %s", dtype)
	}
}

// typedView returns the tensor's buffer as []T.
// The caller must ensure T matches the tensor's dtype.
func typedView[T DType](r *RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	case int32:
		return any(r.AsInt32()).([]T)
	case int64:
		return any(r.AsInt64()).([]T)
	case uint8:
		return any(r.AsUint8()).([]T)
	case bool:
		return any(r.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}
