// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/probe/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32  DataType = tensor.Float32
	Float64  DataType = tensor.Float64
	Float16  DataType = tensor.Float16
	BFloat16 DataType = tensor.BFloat16
	Int32    DataType = tensor.Int32
	Int64    DataType = tensor.Int64
	Uint8    DataType = tensor.Uint8
	Bool     DataType = tensor.Bool
)

// Device labels where tensor data came from.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is the dtype-erased tensor representation.
type RawTensor = tensor.RawTensor

// Creation functions

// NewRaw creates a new zeroed tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) (*RawTensor, error) {
	return tensor.Full(shape, value)
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar[T DType](value T) *RawTensor {
	return tensor.Scalar(value)
}

// Item returns the single value of a 0-D (or one-element) tensor.
func Item[T DType](r *RawTensor) (T, error) {
	return tensor.Item[T](r)
}

// FromFloat32s creates a float tensor from float32 values, narrowing to half
// precision when dtype is Float16 or BFloat16.
func FromFloat32s(data []float32, shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.FromFloat32s(data, shape, dtype)
}

// Manipulation functions

// Reshape returns a tensor with the same data and a new shape.
func Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	return tensor.Reshape(x, newShape)
}

// Narrow returns a copy of x restricted to [start, start+length) along axis.
// Supports negative axis indexing (-1 = last dimension).
func Narrow(x *RawTensor, axis, start, length int) (*RawTensor, error) {
	return tensor.Narrow(x, axis, start, length)
}

// Concat concatenates tensors along the specified axis.
//
// Example:
//
//	a, _ := tensor.Full(tensor.Shape{2, 3}, float32(1))
//	b, _ := tensor.Full(tensor.Shape{2, 5}, float32(0))
//	c, err := tensor.Concat([]*tensor.RawTensor{a, b}, 1) // Shape: [2, 8]
func Concat(tensors []*RawTensor, axis int) (*RawTensor, error) {
	return tensor.Concat(tensors, axis)
}

// PrependValue returns x with value prepended along its last dimension.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int64{2, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y, _ := tensor.PrependValue(x, int64(33)) // [[33 2 2 3] [33 4 5 6]]
func PrependValue[T DType](x *RawTensor, value T) (*RawTensor, error) {
	return tensor.PrependValue(x, value)
}

// Lift adapts a tensor-to-tensor function into a scalar-to-scalar one.
func Lift[T DType](fn func(*RawTensor) (*RawTensor, error)) func(T) (T, error) {
	return tensor.Lift[T](fn)
}
