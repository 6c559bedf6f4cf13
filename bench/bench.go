// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bench measures wall time and heap growth over a scoped block of
// tensor work and reports the result as structured fields.
package bench

import (
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Report holds the measurements of one benchmarked scope.
type Report struct {
	RunID          string        // unique id for correlating log lines
	Label          string        // caller-supplied scope name
	Start          time.Time     // when the scope was entered
	Elapsed        time.Duration // wall time between Start and Stop
	HeapDeltaBytes int64         // live-heap growth across the scope
	AllocBytes     uint64        // total bytes allocated inside the scope
	AllocHuman     string        // AllocBytes humanized, e.g. "1.5 MiB"
}

// Benchmarker measures a scope between Start and Stop.
// It is single-use; start a new one for every scope.
type Benchmarker struct {
	report    Report
	logger    *zap.Logger
	heapStart uint64
	allocated uint64
}

// Option configures a Benchmarker.
type Option func(*Benchmarker)

// WithLogger makes Stop emit the report through the given logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Benchmarker) { b.logger = logger }
}

// Start begins measuring a scope.
//
// Example:
//
//	b := bench.Start("introspect checkpoint")
//	res := inspect.Introspect(v, inspect.Options{ComputeSize: true})
//	report := b.Stop()
func Start(label string, opts ...Option) *Benchmarker {
	b := &Benchmarker{
		report: Report{
			RunID: uuid.NewString(),
			Label: label,
		},
	}
	for _, opt := range opts {
		opt(b)
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	b.heapStart = ms.HeapAlloc
	b.allocated = ms.TotalAlloc

	// Timestamp last so setup cost stays outside the measurement.
	b.report.Start = time.Now()
	return b
}

// Stop ends the measurement and returns the report.
// When a logger was configured the report is also logged.
func (b *Benchmarker) Stop() Report {
	b.report.Elapsed = time.Since(b.report.Start)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	b.report.HeapDeltaBytes = int64(ms.HeapAlloc) - int64(b.heapStart)
	b.report.AllocBytes = ms.TotalAlloc - b.allocated
	b.report.AllocHuman = humanize.IBytes(b.report.AllocBytes)

	if b.logger != nil {
		b.logger.Info("benchmark finished",
			zap.String("run_id", b.report.RunID),
			zap.String("label", b.report.Label),
			zap.Duration("elapsed", b.report.Elapsed),
			zap.Int64("heap_delta_bytes", b.report.HeapDeltaBytes),
			zap.String("allocated", b.report.AllocHuman),
		)
	}
	return b.report
}

// Measure runs fn and returns its report, for callers that do not need the
// scope to span multiple statements.
func Measure(label string, fn func(), opts ...Option) Report {
	b := Start(label, opts...)
	fn()
	return b.Stop()
}
