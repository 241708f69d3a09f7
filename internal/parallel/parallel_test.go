package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor_CoversAllIndices(t *testing.T) {
	cfg := Default()

	var counter int64
	n := 1000
	For(n, cfg, func(_ int) {
		atomic.AddInt64(&counter, 1)
	})

	if counter != int64(n) {
		t.Errorf("executed %d iterations, want %d", counter, n)
	}
}

func TestFor_EachIndexOnce(t *testing.T) {
	n := 500
	seen := make([]int32, n)
	For(n, Default(), func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d executed %d times", i, c)
		}
	}
}

func TestFor_SmallBatchRunsSequentially(t *testing.T) {
	// Below the fan-out threshold the order must be 0..n-1.
	var order []int
	For(8, Default(), func(i int) {
		order = append(order, i)
	})

	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d", i, got)
		}
	}
}

func TestFor_ZeroIterations(t *testing.T) {
	called := false
	For(0, Default(), func(int) { called = true })
	if called {
		t.Error("f called for n = 0")
	}
}
