// Package parallel provides worker-split loops for batch-axis iteration.
package parallel

import (
	"runtime"
	"sync"
)

// For executes f(i) for i in [0, n) across worker goroutines.
// Runs sequentially when n < minChunk or only one CPU is available, so small
// batches avoid goroutine overhead. f must be safe to call concurrently for
// distinct i.
func For(n, minChunk int, f func(i int)) {
	workers := runtime.NumCPU()
	if workers <= 1 || n < minChunk {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+workers-1)/workers, minChunk)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
