package hap

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkFunc decodes the chunk at index i. It is safe to call concurrently for
// distinct indices.
type WorkFunc func(i int)

// Dispatcher runs chunk decode work for a complex frame. Dispatch must call
// work exactly once for every index in [0, count) before returning, in any
// order and on any goroutines. Results for indices it skips are undefined.
type Dispatcher interface {
	Dispatch(work WorkFunc, count int)
}

// DispatchFunc adapts a function to the Dispatcher interface.
type DispatchFunc func(work WorkFunc, count int)

// Dispatch calls f(work, count).
func (f DispatchFunc) Dispatch(work WorkFunc, count int) {
	f(work, count)
}

// Sequential runs every chunk in index order on the calling goroutine.
var Sequential Dispatcher = DispatchFunc(func(work WorkFunc, count int) {
	for i := range count {
		work(i)
	}
})

// Parallel returns a Dispatcher that decodes chunks on up to workers
// goroutines. workers <= 0 uses GOMAXPROCS.
func Parallel(workers int) Dispatcher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return DispatchFunc(func(work WorkFunc, count int) {
		if count <= 1 || workers == 1 {
			Sequential.Dispatch(work, count)
			return
		}

		var eg errgroup.Group
		eg.SetLimit(workers)
		for i := range count {
			eg.Go(func() error {
				work(i)
				return nil
			})
		}
		_ = eg.Wait()
	})
}
