// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the array types consumed by the probe toolkit.
//
// # Overview
//
// RawTensor is a dtype-erased multi-dimensional buffer: flat row-major bytes
// plus shape, stride, and type metadata. The probe toolkit inspects and
// rearranges buffers; it does not differentiate through them, so there is no
// backend or gradient machinery here, only the capability surface the
// inspection and compaction packages need:
//   - shape, dtype, device, and byte-size queries
//   - typed zero-copy views (AsFloat32, AsInt64, ...)
//   - Reshape, Narrow, and Concat
//
// # Basic Usage
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x.Shape(), x.DType(), x.ByteSize())
//
// # Supported Data Types
//
//   - float32, float64 (floating-point)
//   - float16, bfloat16 (half precision; decoded on access via Float32s)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
//
// Half-precision buffers have no native Go element type; create them with
// FromFloat32s and read them back with Float32s.
//
// # Ownership
//
// Tensors are caller-owned values. Operations never mutate their inputs and
// always allocate fresh outputs, so concurrent calls over shared inputs are
// safe as long as nobody writes to a buffer while a call is in flight.
package tensor
