// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/probe/tensor"
)

// TestRawTensorAPI verifies the RawTensor alias exposes the expected surface.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}
	if len(raw.Data()) != 24 {
		t.Errorf("Data() length = %d, want 24", len(raw.Data()))
	}
	if len(raw.AsFloat32()) != 6 {
		t.Errorf("AsFloat32() length = %d, want 6", len(raw.AsFloat32()))
	}
}

// TestCreationFunctions verifies the high-level creation API.
func TestCreationFunctions(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if x.AsFloat32()[4] != 5 {
		t.Errorf("FromSlice data mismatch: got %v", x.AsFloat32())
	}

	f, err := tensor.Full(tensor.Shape{4}, int64(7))
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	for i, v := range f.AsInt64() {
		if v != 7 {
			t.Errorf("Full data[%d] = %d, want 7", i, v)
		}
	}

	s := tensor.Scalar(true)
	v, err := tensor.Item[bool](s)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}
	if !v {
		t.Error("Item() = false, want true")
	}

	h, err := tensor.FromFloat32s([]float32{1, 2}, tensor.Shape{2}, tensor.BFloat16)
	if err != nil {
		t.Fatalf("FromFloat32s failed: %v", err)
	}
	if h.DType() != tensor.BFloat16 {
		t.Errorf("DType() = %v, want BFloat16", h.DType())
	}
}

// TestManipulationFunctions verifies the re-exported ops.
func TestManipulationFunctions(t *testing.T) {
	x, err := tensor.FromSlice([]int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	r, err := tensor.Reshape(x, tensor.Shape{6})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if !r.Shape().Equal(tensor.Shape{6}) {
		t.Errorf("Reshape shape = %v, want [6]", r.Shape())
	}

	n, err := tensor.Narrow(x, 1, 0, 2)
	if err != nil {
		t.Fatalf("Narrow failed: %v", err)
	}
	if !n.Shape().Equal(tensor.Shape{2, 2}) {
		t.Errorf("Narrow shape = %v, want [2 2]", n.Shape())
	}

	c, err := tensor.Concat([]*tensor.RawTensor{x, x}, 0)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if !c.Shape().Equal(tensor.Shape{4, 3}) {
		t.Errorf("Concat shape = %v, want [4 3]", c.Shape())
	}

	p, err := tensor.PrependValue(x, int32(0))
	if err != nil {
		t.Fatalf("PrependValue failed: %v", err)
	}
	if !p.Shape().Equal(tensor.Shape{2, 4}) {
		t.Errorf("PrependValue shape = %v, want [2 4]", p.Shape())
	}
}
