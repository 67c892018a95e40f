// Package workers splits index ranges across goroutines.
//
// Tessellation samples are independent of each other; every sample writes
// only to its own, precomputed slots of pre-sized output buffers, so no
// synchronization beyond waiting for completion is needed.
package workers

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinChunk is the smallest number of samples handed to one goroutine.
// Below that, scheduling overhead dominates sample evaluation.
const MinChunk = 256

// Grain returns the minimum chunk size for a range whose indices stand for
// perIndex samples each, e.g. the rows of a sample grid.
func Grain(perIndex int) int {
	return max(MinChunk/max(perIndex, 1), 1)
}

// Range calls fn(lo, hi) for consecutive, disjoint sub-ranges covering
// [0, n) and returns when all calls have finished. No sub-range is smaller
// than grain, except for the last one. Small ranges run on the calling
// goroutine.
func Range(n, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	chunk := max((n+workers-1)/workers, grain, 1)
	if chunk >= n {
		fn(0, n)
		return
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo := lo // per-iteration copy; go directive is 1.21 (pre-1.22 loopvar semantics)
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
