package canny

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestParallelForCoversRange(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 7} {
		for _, n := range []int{1, 3, 4, 10, 101} {
			p := newPool(workers)
			hits := make([]int32, n)
			var calls atomic.Int32

			err := p.parallelFor(bg, n, func(start, end int) {
				calls.Add(1)
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})
			if err != nil {
				t.Fatalf("parallelFor(%d) with %d workers error = %v", n, workers, err)
			}
			for i, h := range hits {
				if h != 1 {
					t.Errorf("parallelFor(%d) with %d workers index %d visited %d times", n, workers, i, h)
				}
			}
			if c := int(calls.Load()); c > workers {
				t.Errorf("parallelFor(%d) with %d workers used %d chunks", n, workers, c)
			}
		}
	}
}

func TestParallelForEmpty(t *testing.T) {
	called := false
	if err := newPool(4).parallelFor(bg, 0, func(int, int) { called = true }); err != nil {
		t.Errorf("parallelFor(0) error = %v", err)
	}
	if called {
		t.Error("parallelFor(0) called the loop body")
	}
}

func TestParallelForCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		var calls atomic.Int32
		err := newPool(workers).parallelFor(ctx, 100, func(int, int) { calls.Add(1) })
		if !errors.Is(err, context.Canceled) {
			t.Errorf("parallelFor() with %d workers error = %v, want %v", workers, err, context.Canceled)
		}
		if calls.Load() != 0 {
			t.Errorf("parallelFor() with %d workers ran %d chunks after cancellation", workers, calls.Load())
		}
	}
}

func TestNewPoolDefault(t *testing.T) {
	if got := newPool(0).workers; got != DefaultWorkers {
		t.Errorf("newPool(0).workers = %d, want %d", got, DefaultWorkers)
	}
}
