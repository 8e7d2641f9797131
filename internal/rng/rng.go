// Package rng implements the per-particle pseudo-random streams used by the
// transport engine. Each particle history owns exactly one Stream; streams for
// distinct histories are spaced far apart in the generator's sequence, so runs
// are reproducible for a fixed master seed and independent of how histories
// are scheduled across workers.
package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// Source abstracts a private draw sequence. One call, one value in [0, 1),
// one deterministic advance of the underlying state.
type Source interface {
	Uniform() float64
}

// 63-bit linear congruential generator, the same family the reference
// transport codes use: state' = (g*state + c) mod 2^63.
const (
	prnMult   uint64 = 2806196910506780709 // multiplier g (L'Ecuyer)
	prnAdd    uint64 = 1                   // increment c
	prnMask   uint64 = 1<<63 - 1           // modulus 2^63
	prnStride uint64 = 152917              // stream spacing between history ids
	prnNorm           = 0x1p-63            // maps state to [0, 1)
)

// Stream is a deterministic random stream exclusively owned by one particle.
// Ownership is the synchronization: a Stream must never be shared between
// goroutines.
type Stream struct {
	state uint64
	draws uint64
}

// New returns a stream positioned at the given seed state.
func New(seed uint64) *Stream {
	return &Stream{state: seed & prnMask}
}

// ForParticle returns the private stream for history id under a master seed.
// The stream starts id*stride steps into the master sequence, giving every
// history its own non-overlapping window.
func ForParticle(master uint64, id int64) *Stream {
	s := New(master)
	s.Skip(uint64(id) * prnStride)
	return s
}

// Uniform advances the stream by exactly one step and returns a value in
// [0, 1). No draws are wasted or repeated.
func (s *Stream) Uniform() float64 {
	s.state = (prnMult*s.state + prnAdd) & prnMask
	s.draws++
	return float64(s.state) * prnNorm
}

// Draws reports how many values have been consumed from the stream.
func (s *Stream) Draws() uint64 {
	return s.draws
}

// State exposes the current seed state, for reproducibility checks.
func (s *Stream) State() uint64 {
	return s.state
}

// Skip advances the stream n steps in O(log n) without consuming draws.
// Standard LCG jump-ahead: the n-step composition is itself an LCG with
// G = g^n and C = c*(g^n-1)/(g-1) mod 2^63, built by repeated squaring.
func (s *Stream) Skip(n uint64) {
	g, c := prnMult, prnAdd
	gTot, cTot := uint64(1), uint64(0)
	for n &= prnMask; n > 0; n >>= 1 {
		if n&1 == 1 {
			gTot = (gTot * g) & prnMask
			cTot = (cTot*g + c) & prnMask
		}
		c = ((g + 1) * c) & prnMask
		g = (g * g) & prnMask
	}
	s.state = (gTot*s.state + cTot) & prnMask
}

// RandomSeed draws a master seed from the OS entropy source, for runs that do
// not need to be replayed.
func RandomSeed() (uint64, error) {
	var b [8]byte
	if _, err := cryptoRand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read entropy: %w", err)
	}
	return binary.BigEndian.Uint64(b[:]) & prnMask, nil
}
