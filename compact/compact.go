// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package compact removes masked positions from batched sequences while
// preserving a fixed prefix and a batch-aligned output shape.
package compact

import (
	"errors"
	"fmt"

	"github.com/born-ml/probe/internal/parallel"
	"github.com/born-ml/probe/tensor"
)

// ErrRaggedMask reports a mask whose rows keep differing numbers of
// positions. The output shape [batch, prefix+keep, ...] is only well-defined
// when every row keeps the same count, so such masks are rejected before any
// gathering happens.
var ErrRaggedMask = errors.New("mask rows keep differing numbers of positions")

// ShapeMismatchError reports that the mask does not cover the non-prefix
// region of the token tensor.
type ShapeMismatchError struct {
	Tokens tensor.Shape // full token shape, [batch, positions, ...]
	Mask   tensor.Shape // mask shape, [batch, positions-prefix]
	Prefix int          // number of prefix positions exempt from masking
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("mask shape %v does not match tokens %v with %d prefix positions (want [%d %d])",
		e.Mask, e.Tokens, e.Prefix, e.Tokens[0], e.Tokens[1]-e.Prefix)
}

// options holds resolved DropTokens settings.
type options struct {
	prefix  int
	ordered bool
}

// Option configures DropTokens.
type Option func(*options)

// WithPrefixTokens sets how many leading positions are exempt from masking
// and always retained. The default is 1 (a classifier token).
func WithPrefixTokens(n int) Option {
	return func(o *options) { o.prefix = n }
}

// WithUnordered marks position order as irrelevant to the caller. Selection
// is row-major and therefore order-preserving either way; the flag is
// accepted for API compatibility and changes nothing.
func WithUnordered() Option {
	return func(o *options) { o.ordered = false }
}

// DropTokens removes masked positions from a batched sequence.
//
// tokens has shape [batch, positions, ...feature dims]; mask has shape
// [batch, positions-prefix] and covers everything after the prefix. A mask
// entry is truthy when it is a true bool or a nonzero integer. Positions with
// falsy entries are dropped; the prefix and all truthy positions survive in
// their original order, giving an output of shape [batch, prefix+keep, ...].
//
// Every mask row must keep the same number of positions. Rows that disagree
// return an error wrapping ErrRaggedMask; a mask that does not cover the
// non-prefix region returns a *ShapeMismatchError.
//
// Inputs are never mutated. Compaction is lossy: dropped positions cannot be
// recovered, and only an all-true mask with no prefix returns a tensor equal
// to the input.
//
// Example:
//
//	tokens: [2, 5, 10], mask: [[1 0 0 1] [0 1 1 0]], prefix 1
//	output: [2, 3, 10]: position 0 plus the two kept positions per row.
func DropTokens(tokens, mask *tensor.RawTensor, opts ...Option) (*tensor.RawTensor, error) {
	o := options{prefix: 1, ordered: true}
	for _, opt := range opts {
		opt(&o)
	}

	if tokens == nil || mask == nil {
		return nil, fmt.Errorf("drop tokens: input tensors cannot be nil")
	}
	if len(tokens.Shape()) < 2 {
		return nil, fmt.Errorf("drop tokens: tokens must have rank >= 2, got shape %v", tokens.Shape())
	}
	if len(mask.Shape()) != 2 {
		return nil, fmt.Errorf("drop tokens: mask must have rank 2, got shape %v", mask.Shape())
	}
	if o.prefix < 0 || o.prefix >= tokens.Shape()[1] {
		return nil, fmt.Errorf("drop tokens: %d prefix positions out of range for %d positions",
			o.prefix, tokens.Shape()[1])
	}

	batch := tokens.Shape()[0]
	positions := tokens.Shape()[1]
	body := tokens
	var prefix *tensor.RawTensor

	if o.prefix > 0 {
		var err error
		prefix, err = tensor.Narrow(tokens, 1, 0, o.prefix)
		if err != nil {
			return nil, fmt.Errorf("drop tokens: %w", err)
		}
		body, err = tensor.Narrow(tokens, 1, o.prefix, positions-o.prefix)
		if err != nil {
			return nil, fmt.Errorf("drop tokens: %w", err)
		}
	}

	if mask.Shape()[0] != batch || mask.Shape()[1] != positions-o.prefix {
		return nil, &ShapeMismatchError{
			Tokens: tokens.Shape().Clone(),
			Mask:   mask.Shape().Clone(),
			Prefix: o.prefix,
		}
	}

	truthy, err := truthyMask(mask)
	if err != nil {
		return nil, fmt.Errorf("drop tokens: %w", err)
	}

	keep, err := uniformKeepCount(truthy)
	if err != nil {
		return nil, fmt.Errorf("drop tokens: %w", err)
	}
	if keep == 0 {
		// Everything outside the prefix is dropped. Zero-size tensors are
		// not representable, so a bare all-false mask is an error.
		if prefix == nil {
			return nil, fmt.Errorf("drop tokens: mask keeps no positions and there is no prefix")
		}
		return prefix, nil
	}

	kept, err := gatherRows(body, truthy, keep)
	if err != nil {
		return nil, fmt.Errorf("drop tokens: %w", err)
	}

	if prefix == nil {
		return kept, nil
	}
	out, err := tensor.Concat([]*tensor.RawTensor{prefix, kept}, 1)
	if err != nil {
		return nil, fmt.Errorf("drop tokens: %w", err)
	}
	return out, nil
}

// truthyMask flattens the mask into per-row truth values.
// Bool masks use the value directly; integer masks treat nonzero as true.
func truthyMask(mask *tensor.RawTensor) ([][]bool, error) {
	batch := mask.Shape()[0]
	width := mask.Shape()[1]
	rows := make([][]bool, batch)
	for b := range rows {
		rows[b] = make([]bool, width)
	}

	switch mask.DType() {
	case tensor.Bool:
		flat := mask.AsBool()
		for b := 0; b < batch; b++ {
			copy(rows[b], flat[b*width:(b+1)*width])
		}
	case tensor.Int32:
		flat := mask.AsInt32()
		for b := 0; b < batch; b++ {
			for p := 0; p < width; p++ {
				rows[b][p] = flat[b*width+p] != 0
			}
		}
	case tensor.Int64:
		flat := mask.AsInt64()
		for b := 0; b < batch; b++ {
			for p := 0; p < width; p++ {
				rows[b][p] = flat[b*width+p] != 0
			}
		}
	case tensor.Uint8:
		flat := mask.AsUint8()
		for b := 0; b < batch; b++ {
			for p := 0; p < width; p++ {
				rows[b][p] = flat[b*width+p] != 0
			}
		}
	default:
		return nil, fmt.Errorf("unsupported mask dtype %s (want bool or integer)", mask.DType())
	}
	return rows, nil
}

// uniformKeepCount returns the shared per-row count of kept positions.
func uniformKeepCount(truthy [][]bool) (int, error) {
	keep := -1
	for b, row := range truthy {
		n := 0
		for _, t := range row {
			if t {
				n++
			}
		}
		if keep == -1 {
			keep = n
			continue
		}
		if n != keep {
			return 0, fmt.Errorf("row %d keeps %d positions, row 0 keeps %d: %w", b, n, keep, ErrRaggedMask)
		}
	}
	return keep, nil
}

// gatherRows copies the kept positions of every batch row, batch-major then
// position-major, into a fresh [batch, keep, ...feature] tensor.
func gatherRows(body *tensor.RawTensor, truthy [][]bool, keep int) (*tensor.RawTensor, error) {
	batch := body.Shape()[0]
	width := body.Shape()[1]

	outShape := body.Shape().Clone()
	outShape[1] = keep
	out, err := tensor.NewRaw(outShape, body.DType(), body.Device())
	if err != nil {
		return nil, err
	}

	// Bytes per position: the flattened feature dims times element size.
	posBytes := body.DType().Size()
	for _, dim := range body.Shape()[2:] {
		posBytes *= dim
	}

	src := body.Data()
	dst := out.Data()
	parallel.For(batch, 4, func(b int) {
		w := b * keep * posBytes
		for p := 0; p < width; p++ {
			if !truthy[b][p] {
				continue
			}
			r := (b*width + p) * posBytes
			copy(dst[w:w+posBytes], src[r:r+posBytes])
			w += posBytes
		}
	})
	return out, nil
}
