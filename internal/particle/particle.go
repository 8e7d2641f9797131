// Package particle defines the transport state carried through one history.
package particle

import "github.com/xtding233/transport-backend/internal/rng"

// Particle is the state of one history in flight. Weight is the statistical
// weight the history contributes to tallies; it only changes at collisions
// and at weight control, never during streaming. Stream is the history's
// private random source and must not be shared with any other particle.
type Particle struct {
	ID     int64
	Weight float64
	X      float64
	Mu     float64
	Stream rng.Source
}

// New returns a source particle for history id with its own random stream
// under the given master seed. The caller sets position and direction before
// transport; weight starts at the canonical source weight 1.
func New(id int64, master uint64) *Particle {
	return &Particle{
		ID:     id,
		Weight: 1,
		Mu:     1,
		Stream: rng.ForParticle(master, id),
	}
}

// Alive reports whether the history still carries weight. A particle killed
// by weight control or absorbed at a boundary has zero weight and must not
// be transported further.
func (p *Particle) Alive() bool {
	return p.Weight > 0
}
