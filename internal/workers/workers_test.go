package workers

import (
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRangeCoversEveryIndexOnce(t *testing.T) {
	for _, n := range []int{0, 1, MinChunk - 1, MinChunk, 10*MinChunk + 7} {
		hits := make([]int32, n)
		var calls int32
		Range(n, MinChunk, func(lo, hi int) {
			atomic.AddInt32(&calls, 1)
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
		if n == 0 && calls != 0 {
			t.Errorf("expected no calls for empty range, got %d", calls)
		}
	}
}

func TestRangeHonorsGrain(t *testing.T) {
	var calls int32
	Range(100, 1, func(lo, hi int) {
		atomic.AddInt32(&calls, 1)
	})
	if calls < 1 || calls > 100 {
		t.Errorf("unexpected number of chunks: %d", calls)
	}
	calls = 0
	Range(100, 100, func(lo, hi int) {
		if lo != 0 || hi != 100 {
			t.Errorf("expected a single chunk [0,100), got [%d,%d)", lo, hi)
		}
		atomic.AddInt32(&calls, 1)
	})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestGrain(t *testing.T) {
	for _, tc := range []struct{ per, grain int }{
		{0, MinChunk}, {1, MinChunk}, {16, MinChunk / 16}, {10 * MinChunk, 1},
	} {
		if g := Grain(tc.per); g != tc.grain {
			t.Errorf("Grain(%d) = %d, expected %d", tc.per, g, tc.grain)
		}
	}
}
