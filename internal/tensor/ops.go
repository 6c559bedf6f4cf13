package tensor

import (
	"fmt"

	"github.com/born-ml/probe/internal/parallel"
)

// Reshape returns a tensor with the same data and a new shape.
// The element counts must match.
func Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Reshape: input tensor is nil")
	}
	if err := newShape.Validate(); err != nil {
		return nil, fmt.Errorf("Reshape: %w", err)
	}
	if newShape.NumElements() != x.NumElements() {
		return nil, fmt.Errorf("Reshape: cannot reshape %v (%d elements) into %v (%d elements)",
			x.Shape(), x.NumElements(), newShape, newShape.NumElements())
	}

	result, err := NewRaw(newShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Reshape: %w", err)
	}
	copy(result.data, x.data)
	return result, nil
}

// Narrow returns a copy of x restricted to [start, start+length) along axis.
// Supports negative axis indexing (-1 = last dimension).
func Narrow(x *RawTensor, axis, start, length int) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Narrow: input tensor is nil")
	}
	axis, err := resolveAxis(axis, len(x.shape))
	if err != nil {
		return nil, fmt.Errorf("Narrow: %w", err)
	}
	if start < 0 || length <= 0 || start+length > x.shape[axis] {
		return nil, fmt.Errorf("Narrow: range [%d, %d) out of bounds for axis %d of size %d",
			start, start+length, axis, x.shape[axis])
	}

	outShape := x.shape.Clone()
	outShape[axis] = length
	result, err := NewRaw(outShape, x.dtype, x.device)
	if err != nil {
		return nil, fmt.Errorf("Narrow: %w", err)
	}

	// Bytes per index step along the axis; rows before the axis copy as
	// independent contiguous blocks.
	inner := innerBytes(x.shape, axis, x.dtype)
	outer := outerRows(x.shape, axis)
	srcRow := x.shape[axis] * inner
	dstRow := length * inner

	parallel.For(outer, 8, func(o int) {
		src := x.data[o*srcRow+start*inner : o*srcRow+(start+length)*inner]
		copy(result.data[o*dstRow:(o+1)*dstRow], src)
	})
	return result, nil
}

// Concat concatenates tensors along the specified axis.
//
// All tensors must share dtype and shape except along the concatenation axis.
// Supports negative axis indexing (-1 = last dimension).
func Concat(tensors []*RawTensor, axis int) (*RawTensor, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("Concat: at least one tensor required")
	}
	if len(tensors) == 1 {
		return tensors[0].Clone(), nil
	}

	first := tensors[0]
	axis, err := resolveAxis(axis, len(first.shape))
	if err != nil {
		return nil, fmt.Errorf("Concat: %w", err)
	}

	axisTotal := 0
	for i, t := range tensors {
		if t.dtype != first.dtype {
			return nil, fmt.Errorf("Concat: tensor %d has dtype %s, want %s", i, t.dtype, first.dtype)
		}
		if len(t.shape) != len(first.shape) {
			return nil, fmt.Errorf("Concat: tensor %d has rank %d, want %d", i, len(t.shape), len(first.shape))
		}
		for d := range t.shape {
			if d != axis && t.shape[d] != first.shape[d] {
				return nil, fmt.Errorf("Concat: tensor %d has shape %v, incompatible with %v along axis %d",
					i, t.shape, first.shape, axis)
			}
		}
		axisTotal += t.shape[axis]
	}

	outShape := first.shape.Clone()
	outShape[axis] = axisTotal
	result, err := NewRaw(outShape, first.dtype, first.device)
	if err != nil {
		return nil, fmt.Errorf("Concat: %w", err)
	}

	inner := innerBytes(first.shape, axis, first.dtype)
	outer := outerRows(first.shape, axis)
	dstRow := axisTotal * inner

	parallel.For(outer, 8, func(o int) {
		offset := o * dstRow
		for _, t := range tensors {
			n := t.shape[axis] * inner
			copy(result.data[offset:offset+n], t.data[o*n:(o+1)*n])
			offset += n
		}
	})
	return result, nil
}

// PrependValue returns x with value prepended along its last dimension.
//
// Example: PrependValue of 33 over shape [2, 3] yields shape [2, 4] with 33
// in column 0 of every row.
func PrependValue[T DType](x *RawTensor, value T) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("PrependValue: input tensor is nil")
	}
	var dummy T
	if dt := inferDataType(dummy); dt != x.dtype {
		return nil, fmt.Errorf("PrependValue: value type %s does not match tensor dtype %s", dt, x.dtype)
	}
	if len(x.shape) == 0 {
		return nil, fmt.Errorf("PrependValue: scalar tensor has no dimension to prepend to")
	}

	fillShape := x.shape.Clone()
	fillShape[len(fillShape)-1] = 1
	filler, err := Full(fillShape, value)
	if err != nil {
		return nil, fmt.Errorf("PrependValue: %w", err)
	}
	return Concat([]*RawTensor{filler, x}, -1)
}

// resolveAxis normalizes a possibly negative axis against a rank.
func resolveAxis(axis, rank int) (int, error) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, fmt.Errorf("axis %d out of range for rank %d", axis, rank)
	}
	return axis, nil
}

// innerBytes returns the byte width of one index step along axis.
func innerBytes(shape Shape, axis int, dtype DataType) int {
	n := dtype.Size()
	for _, dim := range shape[axis+1:] {
		n *= dim
	}
	return n
}

// outerRows returns the number of contiguous blocks preceding the axis.
func outerRows(shape Shape, axis int) int {
	n := 1
	for _, dim := range shape[:axis] {
		n *= dim
	}
	return n
}
