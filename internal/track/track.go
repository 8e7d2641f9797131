// Package track runs particle histories through a one-dimensional slab and
// reduces them to tallied estimates. Histories use survival biasing: capture
// only reduces the weight, and the roulette game in internal/physics ends
// histories whose weight has decayed below the run's cutoff.
package track

import (
	"context"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/xtding233/transport-backend/internal/particle"
	"github.com/xtding233/transport-backend/internal/physics"
	"github.com/xtding233/transport-backend/internal/rng"
	"github.com/xtding233/transport-backend/internal/settings"
	"github.com/xtding233/transport-backend/internal/tally"
)

// Result summarizes one simulation run. The three leakage/absorption
// estimates are per source particle, with standard errors from batch
// statistics.
type Result struct {
	Histories int64
	Batches   int
	Workers   int
	Seed      uint64

	Transmission       float64
	TransmissionStdErr float64
	Reflection         float64
	ReflectionStdErr   float64
	Absorption         float64
	AbsorptionStdErr   float64

	Counters      tally.Counters
	Elapsed       time.Duration
	FigureOfMerit float64
	Version       string
}

// Runner executes transport runs for one set of params. Params must satisfy
// the constraints settings.Resolve enforces (positive cross sections and
// thickness, at least one history per batch); Run does not re-validate them.
// Ledger, when set, receives the run's roulette counters on completion.
type Runner struct {
	Params settings.RunParams
	Ledger *tally.AtomicCounters
}

// batchOut carries the sums of one finished batch.
type batchOut struct {
	transmit float64
	reflect  float64
	absorb   float64
	n        int64
	counters tally.Counters
}

// Run transports all histories and reduces the batches. The outcome is a
// pure function of the seed: history id fixes the random stream, batches are
// fixed spans of ids, and each batch is reduced by one worker, so the result
// does not depend on how many workers run or how batches interleave.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	params := r.Params

	seed := params.Seed
	if !params.HasSeed {
		s, err := rng.RandomSeed()
		if err != nil {
			return Result{}, err
		}
		seed = s
	}

	workers := params.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > params.Batches {
		workers = params.Batches
	}

	start := time.Now()
	outs := make([]batchOut, params.Batches)
	batchCh := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range batchCh {
				first, n := batchSpan(params.Histories, params.Batches, b)
				outs[b] = r.runBatch(ctx, seed, first, n)
			}
		}()
	}

feed:
	for b := 0; b < params.Batches; b++ {
		select {
		case batchCh <- b:
		case <-ctx.Done():
			break feed
		}
	}
	close(batchCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var transmit, reflect, absorb tally.Accumulator
	var counters tally.Counters
	for _, out := range outs {
		transmit.Add(out.transmit / float64(out.n))
		reflect.Add(out.reflect / float64(out.n))
		absorb.Add(out.absorb / float64(out.n))
		counters.Merge(out.counters)
	}
	if r.Ledger != nil {
		r.Ledger.Add(counters)
	}

	elapsed := time.Since(start)
	res := Result{
		Histories:          params.Histories,
		Batches:            params.Batches,
		Workers:            workers,
		Seed:               seed,
		Transmission:       transmit.Mean(),
		TransmissionStdErr: transmit.StdErr(),
		Reflection:         reflect.Mean(),
		ReflectionStdErr:   reflect.StdErr(),
		Absorption:         absorb.Mean(),
		AbsorptionStdErr:   absorb.StdErr(),
		Counters:           counters,
		Elapsed:            elapsed,
		Version:            params.Version,
	}
	res.FigureOfMerit = tally.FigureOfMerit(transmit.RelErr(), elapsed.Seconds())
	return res, nil
}

// batchSpan returns the first history id and the length of batch b when
// histories are split as evenly as possible across batches.
func batchSpan(histories int64, batches, b int) (int64, int64) {
	base := histories / int64(batches)
	extra := histories % int64(batches)
	first := int64(b)*base + min64(int64(b), extra)
	n := base
	if int64(b) < extra {
		n++
	}
	return first, n
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// runBatch transports histories [first, first+n) on the calling goroutine.
func (r *Runner) runBatch(ctx context.Context, seed uint64, first, n int64) batchOut {
	out := batchOut{n: n}
	for i := int64(0); i < n; i++ {
		if i&1023 == 0 && ctx.Err() != nil {
			return out
		}
		p := particle.New(first+i, seed)
		t, fl, a := r.trackOne(p, &out.counters)
		out.transmit += t
		out.reflect += fl
		out.absorb += a
	}
	return out
}

// trackOne follows one history from the left slab face until it leaks or
// the roulette game ends it. Collisions deposit the expected absorbed weight
// and scale the remaining weight by the scattering ratio, so every history
// contributes to all three tallies.
func (r *Runner) trackOne(p *particle.Particle, c *tally.Counters) (transmit, reflect, absorb float64) {
	params := r.Params
	flight := distuv.Exponential{Rate: params.SigmaTotal}
	scatter := distuv.Uniform{Min: -1, Max: 1}
	scatterRatio := params.SigmaScatter / params.SigmaTotal

	for p.Alive() {
		p.X += p.Mu * flight.Quantile(p.Stream.Uniform())
		if p.X >= params.Thickness {
			transmit += p.Weight
			p.Weight = 0
			break
		}
		if p.X < 0 {
			reflect += p.Weight
			p.Weight = 0
			break
		}

		absorb += p.Weight * (1 - scatterRatio)
		p.Weight *= scatterRatio
		if !p.Alive() {
			break
		}
		if p.Weight < params.WeightCutoff {
			survived := physics.RussianRoulette(p, params.WeightSurvive)
			c.Observe(survived)
			if !survived {
				break
			}
		}
		p.Mu = scatter.Quantile(p.Stream.Uniform())
	}
	return transmit, reflect, absorb
}
