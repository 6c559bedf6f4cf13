// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package inspect

import (
	"fmt"
	"reflect"

	"github.com/born-ml/probe/tensor"
)

// Capability interfaces probed on leaves, in dispatch order. *tensor.RawTensor
// satisfies all three; foreign array types can opt in by implementing them.

// Shaped is a leaf that knows its dimensions.
type Shaped interface {
	Shape() tensor.Shape
}

// TypedArray is a leaf that knows both its element type and its dimensions.
type TypedArray interface {
	Shaped
	DType() tensor.DataType
}

// Sized is a leaf whose memory footprint can be measured.
type Sized interface {
	ByteSize() int
}

// Options controls an Introspect call.
type Options struct {
	// ComputeSize appends a formatted megabyte string to every measurable
	// leaf descriptor and populates Result.TotalSizeMB.
	ComputeSize bool
	// TypeOnly replaces leaves without any array capability with their Go
	// type instead of echoing the value itself.
	TypeOnly bool
}

// Descriptor summarizes one array-like leaf.
type Descriptor struct {
	DType string       // element type tag; empty when only the shape is known
	Type  string       // Go type name; set when the leaf has a shape but no dtype
	Shape tensor.Shape // leaf dimensions
	Size  string       // formatted footprint, e.g. "1.50MB"; set by ComputeSize
}

// String renders the descriptor the way a debug log would show it.
func (d Descriptor) String() string {
	tag := d.DType
	if tag == "" {
		tag = d.Type
	}
	if d.Size != "" {
		return fmt.Sprintf("(%s, %v, %s)", tag, d.Shape, d.Size)
	}
	return fmt.Sprintf("(%s, %v)", tag, d.Shape)
}

// Result is the output of Introspect: a tree structurally isomorphic to the
// input, with every array-like leaf replaced by its Descriptor.
type Result struct {
	// TotalSizeMB is the summed footprint of all measurable leaves.
	// Populated only when Options.ComputeSize is set.
	TotalSizeMB float64
	Tree        Value
}

const bytesPerMB = 1 << 20

// Introspect walks a nested structure and reports shape, type, and optional
// memory metadata for every leaf without touching the underlying buffers.
//
// Leaves are classified in order: dtype+shape, shape only, then no capability
// at all. Unrecognized leaves are never an error; they pass through
// unchanged (or as their Go type under Options.TypeOnly). This is an
// inspection aid, not a validator.
//
// The input is never mutated; containers are rebuilt with the same lengths,
// keys, and order. The size accumulator is threaded through the walk, so
// concurrent Introspect calls are independent.
func Introspect(v Value, opts Options) Result {
	tree, total := walk(v, opts, 0)
	res := Result{Tree: tree}
	if opts.ComputeSize {
		res.TotalSizeMB = total
	}
	return res
}

// walk rebuilds the tree bottom-up, threading the megabyte accumulator
// through every step.
func walk(v Value, opts Options, acc float64) (Value, float64) {
	switch node := v.(type) {
	case Leaf:
		return describeLeaf(node.X, opts, acc)
	case Sequence:
		out := make(Sequence, len(node))
		for i, child := range node {
			out[i], acc = walk(child, opts, acc)
		}
		return out, acc
	case *Mapping:
		out := NewMapping()
		node.Range(func(key string, child Value) bool {
			var mapped Value
			mapped, acc = walk(child, opts, acc)
			out.Set(key, mapped)
			return true
		})
		return out, acc
	default:
		// Closed set; nil or foreign nodes degrade like opaque leaves.
		return describeLeaf(v, opts, acc)
	}
}

// describeLeaf classifies one leaf and, when requested, accounts its size.
func describeLeaf(x any, opts Options, acc float64) (Value, float64) {
	var desc Descriptor

	switch leaf := x.(type) {
	case TypedArray:
		desc.DType = leaf.DType().String()
		desc.Shape = leaf.Shape().Clone()
	case Shaped:
		desc.Type = fmt.Sprintf("%T", leaf)
		desc.Shape = leaf.Shape().Clone()
	default:
		// No array capability at all.
		if opts.TypeOnly {
			return Leaf{X: reflect.TypeOf(x)}, acc
		}
		return Leaf{X: x}, acc
	}

	if opts.ComputeSize {
		if sized, ok := x.(Sized); ok {
			mb := float64(sized.ByteSize()) / bytesPerMB
			desc.Size = fmt.Sprintf("%.2fMB", mb)
			acc += mb
		}
	}
	return Leaf{X: desc}, acc
}
