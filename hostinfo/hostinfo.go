// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hostinfo collects machine metadata for benchmark reports.
package hostinfo

import (
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/mem"
)

// Info describes the host a measurement ran on.
type Info struct {
	Hostname      string
	OS            string
	Arch          string
	NumCPU        int
	GoVersion     string
	TotalRAMBytes uint64
	TotalRAMHuman string // TotalRAMBytes humanized, e.g. "31.2 GiB"
}

// Collect gathers host metadata. Collection is best-effort: fields that
// cannot be read stay zero and err reports the first failure, but the
// returned Info is always usable. Callers embedding the info in a benchmark
// report typically log the error and continue.
func Collect() (Info, error) {
	info := Info{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	var firstErr error

	hostname, err := os.Hostname()
	if err != nil {
		firstErr = err
	} else {
		info.Hostname = hostname
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else {
		info.TotalRAMBytes = vm.Total
		info.TotalRAMHuman = humanize.IBytes(vm.Total)
	}

	return info, firstErr
}
