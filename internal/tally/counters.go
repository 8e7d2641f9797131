// Package tally accumulates transport results: weight-control counters and
// batch statistics for the scored quantities.
package tally

import "sync/atomic"

// Counters records how often the roulette game was played and how it ended.
// A Counters value is private to one worker; workers merge into a shared
// total only at batch boundaries, so the hot path never contends.
type Counters struct {
	Invocations uint64
	Survivals   uint64
	Kills       uint64
}

// Observe records one game outcome.
func (c *Counters) Observe(survived bool) {
	c.Invocations++
	if survived {
		c.Survivals++
	} else {
		c.Kills++
	}
}

// Merge folds other into c.
func (c *Counters) Merge(other Counters) {
	c.Invocations += other.Invocations
	c.Survivals += other.Survivals
	c.Kills += other.Kills
}

// AtomicCounters is the process-wide roulette ledger. Safe for concurrent
// use from any number of simulations.
type AtomicCounters struct {
	invocations atomic.Uint64
	survivals   atomic.Uint64
	kills       atomic.Uint64
}

// Observe records one game outcome.
func (a *AtomicCounters) Observe(survived bool) {
	a.invocations.Add(1)
	if survived {
		a.survivals.Add(1)
	} else {
		a.kills.Add(1)
	}
}

// Add folds a finished worker's counters into the ledger.
func (a *AtomicCounters) Add(c Counters) {
	a.invocations.Add(c.Invocations)
	a.survivals.Add(c.Survivals)
	a.kills.Add(c.Kills)
}

// Snapshot returns a point-in-time copy of the ledger.
func (a *AtomicCounters) Snapshot() Counters {
	return Counters{
		Invocations: a.invocations.Load(),
		Survivals:   a.survivals.Load(),
		Kills:       a.kills.Load(),
	}
}
