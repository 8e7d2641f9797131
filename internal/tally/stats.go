package tally

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Accumulator collects per-batch means of one scored quantity and reduces
// them to a point estimate with an uncertainty. Batches are treated as
// independent samples.
type Accumulator struct {
	samples []float64
}

// Add records one batch mean.
func (a *Accumulator) Add(v float64) {
	a.samples = append(a.samples, v)
}

// N reports the number of batches recorded.
func (a *Accumulator) N() int {
	return len(a.samples)
}

// Mean returns the estimate over all batches, NaN when empty.
func (a *Accumulator) Mean() float64 {
	if len(a.samples) == 0 {
		return math.NaN()
	}
	return stat.Mean(a.samples, nil)
}

// StdErr returns the standard error of the batch mean. With fewer than two
// batches the spread is undefined and NaN is returned.
func (a *Accumulator) StdErr() float64 {
	if len(a.samples) < 2 {
		return math.NaN()
	}
	return stat.StdErr(stat.StdDev(a.samples, nil), float64(len(a.samples)))
}

// RelErr returns the relative error StdErr/|Mean|, NaN when undefined.
func (a *Accumulator) RelErr() float64 {
	m := a.Mean()
	if m == 0 || math.IsNaN(m) {
		return math.NaN()
	}
	return a.StdErr() / math.Abs(m)
}

// FigureOfMerit rates an estimate by 1/(R^2 T) for relative error R and
// elapsed seconds T. Higher is better; the value is invariant under running
// longer, which is what makes weight control schemes comparable. Returns 0
// when either input is non-positive or not finite.
func FigureOfMerit(relErr, seconds float64) float64 {
	if !(relErr > 0) || !(seconds > 0) || math.IsInf(relErr, 0) || math.IsInf(seconds, 0) {
		return 0
	}
	return 1 / (relErr * relErr * seconds)
}

// RequiredHistories extrapolates how many histories reach the target
// relative error, assuming 1/sqrt(n) convergence from the observed point.
// Returns 0 when the extrapolation is undefined.
func RequiredHistories(targetRelErr, relErr float64, histories int64) int64 {
	if !(targetRelErr > 0) || !(relErr > 0) || histories <= 0 ||
		math.IsInf(relErr, 0) || math.IsNaN(relErr) {
		return 0
	}
	ratio := relErr / targetRelErr
	return int64(math.Ceil(float64(histories) * ratio * ratio))
}
