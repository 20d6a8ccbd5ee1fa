package parallel

import (
	"sync/atomic"
	"testing"
)

func TestRun_VisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 257
	var counts [n]int32
	Run(n, 8, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestRun_Sequential(t *testing.T) {
	var seen []int
	Run(5, 1, func(i int) { seen = append(seen, i) })
	for i, v := range seen {
		if v != i {
			t.Fatalf("sequential order broken at %d: got %d", i, v)
		}
	}
}

func TestRun_ZeroTasks(t *testing.T) {
	Run(0, 4, func(i int) { t.Fatal("should not be called") })
}
