package track

import (
	"context"
	"math"
	"testing"

	"github.com/xtding233/transport-backend/internal/settings"
	"github.com/xtding233/transport-backend/internal/tally"
)

func testParams() settings.RunParams {
	return settings.RunParams{
		WeightCutoff:  0.25,
		WeightSurvive: 1.0,
		Histories:     20000,
		Batches:       10,
		Seed:          42,
		HasSeed:       true,
		Thickness:     3.0,
		SigmaTotal:    1.0,
		SigmaScatter:  0.8,
		Workers:       2,
	}
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	base := testParams()
	base.Histories = 2000
	base.Batches = 4

	results := make([]Result, 0, 3)
	for _, workers := range []int{1, 2, 4} {
		p := base
		p.Workers = workers
		r := Runner{Params: p}
		res, err := r.Run(context.Background())
		if err != nil {
			t.Fatalf("Run() with %d workers: %v", workers, err)
		}
		results = append(results, res)
	}
	for i := 1; i < len(results); i++ {
		a, b := results[0], results[i]
		if a.Transmission != b.Transmission || a.Reflection != b.Reflection || a.Absorption != b.Absorption {
			t.Fatalf("estimates differ across worker counts: %+v vs %+v", a, b)
		}
		if a.Counters != b.Counters {
			t.Fatalf("counters differ across worker counts: %+v vs %+v", a.Counters, b.Counters)
		}
	}
}

func TestRunSameSeedSameResult(t *testing.T) {
	r := Runner{Params: testParams()}
	first, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	second, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if first.Transmission != second.Transmission || first.Counters != second.Counters {
		t.Fatalf("repeat run diverged: %+v vs %+v", first, second)
	}
}

func TestRunConservesExpectedWeight(t *testing.T) {
	// Every source particle carries weight 1; capture deposits, leakage
	// deposits, and the roulette game preserve weight in expectation, so
	// the three estimates must sum back to 1 within noise.
	r := Runner{Params: testParams()}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	total := res.Transmission + res.Reflection + res.Absorption
	if math.Abs(total-1) > 0.05 {
		t.Fatalf("T+R+A = %v, want within 0.05 of 1", total)
	}
}

func TestRunPureAbsorberMatchesAttenuation(t *testing.T) {
	// With no scattering the first collision removes the particle, so the
	// transmission of a normally incident beam is exp(-sigma_t * L).
	p := testParams()
	p.Histories = 50000
	p.Batches = 10
	p.SigmaScatter = 0
	p.Thickness = 2.0
	r := Runner{Params: p}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	want := math.Exp(-p.SigmaTotal * p.Thickness)
	if math.Abs(res.Transmission-want) > 0.01 {
		t.Fatalf("Transmission = %v, want within 0.01 of %v", res.Transmission, want)
	}
	if res.Reflection != 0 {
		t.Fatalf("Reflection = %v, want 0 for a pure absorber", res.Reflection)
	}
	if res.Counters.Invocations != 0 {
		t.Fatalf("roulette played %d times, want 0 when weights never decay", res.Counters.Invocations)
	}
}

func TestRunCountersConsistent(t *testing.T) {
	r := Runner{Params: testParams()}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	c := res.Counters
	if c.Invocations == 0 {
		t.Fatal("roulette never played in a scattering run with cutoff 0.25")
	}
	if c.Survivals+c.Kills != c.Invocations {
		t.Fatalf("survivals %d + kills %d != invocations %d", c.Survivals, c.Kills, c.Invocations)
	}
	if c.Survivals == 0 || c.Kills == 0 {
		t.Fatalf("degenerate outcomes: %+v", c)
	}
}

func TestRunFillsLedger(t *testing.T) {
	var ledger tally.AtomicCounters
	r := Runner{Params: testParams(), Ledger: &ledger}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := ledger.Snapshot(); got != res.Counters {
		t.Fatalf("ledger = %+v, want run counters %+v", got, res.Counters)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := Runner{Params: testParams()}
	if _, err := r.Run(ctx); err == nil {
		t.Fatal("Run() with cancelled context returned nil error")
	}
}

func TestRunFreshSeedWhenUnset(t *testing.T) {
	p := testParams()
	p.HasSeed = false
	p.Seed = 0
	p.Histories = 1000
	p.Batches = 2
	r := Runner{Params: p}
	a, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	b, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if a.Seed == b.Seed {
		t.Fatalf("two unseeded runs drew the same seed %d", a.Seed)
	}
}

func TestBatchSpanCoversAllHistories(t *testing.T) {
	const histories, batches = 10, 3
	next := int64(0)
	for b := 0; b < batches; b++ {
		first, n := batchSpan(histories, batches, b)
		if first != next {
			t.Fatalf("batch %d starts at %d, want %d", b, first, next)
		}
		if n < histories/batches || n > histories/batches+1 {
			t.Fatalf("batch %d has %d histories, want near-even split", b, n)
		}
		next = first + n
	}
	if next != histories {
		t.Fatalf("batches cover %d histories, want %d", next, histories)
	}
}
