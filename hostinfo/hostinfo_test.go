package hostinfo

import (
	"runtime"
	"testing"
)

func TestCollect(t *testing.T) {
	info, err := Collect()
	if err != nil {
		// Best-effort contract: partial info plus an error is acceptable,
		// but the static fields must still be filled.
		t.Logf("Collect reported: %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
	if info.NumCPU < 1 {
		t.Errorf("NumCPU = %d, want >= 1", info.NumCPU)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}

	if err == nil {
		if info.Hostname == "" {
			t.Error("Hostname is empty with no error reported")
		}
		if info.TotalRAMBytes == 0 {
			t.Error("TotalRAMBytes is zero with no error reported")
		}
		if info.TotalRAMHuman == "" {
			t.Error("TotalRAMHuman is empty with no error reported")
		}
	}
}
