// Package parallel provides chunked parallel iteration for batch
// evaluation of operations over sample sets.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is split across goroutines.
type Config struct {
	Workers      int // Number of worker goroutines.
	MinPerWorker int // Minimum iterations per goroutine before fanning out.
}

// Default returns a configuration sized to the machine.
func Default() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		MinPerWorker: 32,
	}
}

// For executes f(i) for i in [0, n). Small batches run sequentially;
// larger ones are split into contiguous chunks, one goroutine each.
// f must be safe to call concurrently for distinct i.
func For(n int, cfg Config, f func(i int)) {
	if cfg.Workers <= 1 || n < 2*cfg.MinPerWorker {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinPerWorker)

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
