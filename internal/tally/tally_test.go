package tally

import (
	"math"
	"sync"
	"testing"
)

func TestCountersObserveAndMerge(t *testing.T) {
	var a, b Counters
	a.Observe(true)
	a.Observe(false)
	a.Observe(false)
	b.Observe(true)
	a.Merge(b)
	if a.Invocations != 4 || a.Survivals != 2 || a.Kills != 2 {
		t.Fatalf("merged counters = %+v, want 4/2/2", a)
	}
}

func TestCountersInvariant(t *testing.T) {
	var c Counters
	for i := 0; i < 1000; i++ {
		c.Observe(i%3 == 0)
	}
	if c.Survivals+c.Kills != c.Invocations {
		t.Fatalf("survivals %d + kills %d != invocations %d", c.Survivals, c.Kills, c.Invocations)
	}
}

func TestAtomicCountersConcurrent(t *testing.T) {
	var ledger AtomicCounters
	var wg sync.WaitGroup
	const workers, perWorker = 8, 1000
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ledger.Observe(i%2 == 0)
			}
		}()
	}
	wg.Wait()
	got := ledger.Snapshot()
	want := Counters{Invocations: workers * perWorker, Survivals: workers * perWorker / 2, Kills: workers * perWorker / 2}
	if got != want {
		t.Fatalf("snapshot = %+v, want %+v", got, want)
	}
}

func TestAtomicCountersAdd(t *testing.T) {
	var ledger AtomicCounters
	ledger.Add(Counters{Invocations: 10, Survivals: 4, Kills: 6})
	ledger.Add(Counters{Invocations: 5, Survivals: 5})
	got := ledger.Snapshot()
	if got.Invocations != 15 || got.Survivals != 9 || got.Kills != 6 {
		t.Fatalf("snapshot = %+v, want 15/9/6", got)
	}
}

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAccumulatorStats(t *testing.T) {
	var acc Accumulator
	for _, v := range []float64{1, 2, 3, 4} {
		acc.Add(v)
	}
	if acc.N() != 4 {
		t.Fatalf("N = %d, want 4", acc.N())
	}
	if got := acc.Mean(); !almost(got, 2.5) {
		t.Fatalf("Mean = %v, want 2.5", got)
	}
	wantStdErr := math.Sqrt(5.0/3.0) / 2
	if got := acc.StdErr(); !almost(got, wantStdErr) {
		t.Fatalf("StdErr = %v, want %v", got, wantStdErr)
	}
	if got := acc.RelErr(); !almost(got, wantStdErr/2.5) {
		t.Fatalf("RelErr = %v, want %v", got, wantStdErr/2.5)
	}
}

func TestAccumulatorUndefinedSpread(t *testing.T) {
	var acc Accumulator
	if !math.IsNaN(acc.Mean()) {
		t.Fatal("empty accumulator mean is not NaN")
	}
	acc.Add(1.5)
	if !math.IsNaN(acc.StdErr()) {
		t.Fatal("single-batch stderr is not NaN")
	}
	if got := acc.Mean(); !almost(got, 1.5) {
		t.Fatalf("Mean = %v, want 1.5", got)
	}
}

func TestFigureOfMerit(t *testing.T) {
	if got := FigureOfMerit(0.05, 4); !almost(got, 100) {
		t.Fatalf("FigureOfMerit(0.05, 4) = %v, want 100", got)
	}
	for _, bad := range [][2]float64{{0, 1}, {0.1, 0}, {math.NaN(), 1}, {0.1, math.Inf(1)}} {
		if got := FigureOfMerit(bad[0], bad[1]); got != 0 {
			t.Fatalf("FigureOfMerit(%v, %v) = %v, want 0", bad[0], bad[1], got)
		}
	}
}

func TestRequiredHistories(t *testing.T) {
	if got := RequiredHistories(0.01, 0.05, 1000); got != 25000 {
		t.Fatalf("RequiredHistories = %d, want 25000", got)
	}
	if got := RequiredHistories(0, 0.05, 1000); got != 0 {
		t.Fatalf("RequiredHistories with zero target = %d, want 0", got)
	}
}
