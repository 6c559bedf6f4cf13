// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package inspect reports shape, type, and memory metadata for arbitrarily
// nested compositions of sequences, ordered mappings, and array leaves.
//
// The input is an explicit tagged tree (Leaf | Sequence | *Mapping) rather
// than reflection over unknown containers, and the output mirrors its exact
// structure with every array-like leaf replaced by a Descriptor:
//
//	x, _ := tensor.FromSlice(make([]float32, 6), tensor.Shape{2, 3})
//	v := inspect.NewMapping().
//	    Set("weights", inspect.Of(x)).
//	    Set("step", inspect.Of(42))
//
//	res := inspect.Introspect(v, inspect.Options{ComputeSize: true})
//	// res.Tree: {"weights": (float32, [2 3], 0.00MB), "step": 42}
//	// res.TotalSizeMB: 2.288818359375e-05
//
// Leaves with no array capability pass through untouched; nothing in this
// package ever fails. Use Render to pretty-print a result as a table.
package inspect
