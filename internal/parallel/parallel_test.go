package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForVisitsEveryIndexOnce(t *testing.T) {
	const n = 1000
	counts := make([]int32, n)

	For(n, 1, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestForSequentialFallback(t *testing.T) {
	// Below minChunk the loop runs inline; order must be ascending.
	var order []int
	For(5, 100, func(i int) {
		order = append(order, i)
	})

	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d, want %d", i, got, i)
		}
	}
	if len(order) != 5 {
		t.Fatalf("visited %d indices, want 5", len(order))
	}
}

func TestForZeroIterations(t *testing.T) {
	called := false
	For(0, 1, func(int) { called = true })
	if called {
		t.Fatal("f called for n = 0")
	}
}
