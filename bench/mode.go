// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package bench

import "fmt"

// Mode is a model execution mode.
type Mode int

// Execution modes.
const (
	Train Mode = iota
	Eval
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Train:
		return "train"
	case Eval:
		return "eval"
	default:
		return "unknown"
	}
}

// Switchable is anything with a train/eval toggle. Benchmarking code uses it
// to pin a model into a known mode for the duration of a measurement without
// owning the model type.
type Switchable interface {
	Training() bool
	SetTraining(bool)
}

// WithMode runs fn with m pinned to the given mode and restores the previous
// mode afterwards, even when fn fails.
func WithMode(m Switchable, mode Mode, fn func() error) error {
	switch mode {
	case Train, Eval:
	default:
		return fmt.Errorf("invalid mode %d, must be train or eval", mode)
	}

	previous := m.Training()
	m.SetTraining(mode == Train)
	defer m.SetTraining(previous)

	return fn()
}
