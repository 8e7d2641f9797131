// Package physics holds the weight-control games played on particles during
// transport.
package physics

import "github.com/xtding233/transport-backend/internal/particle"

// RussianRoulette plays the weight-control game on p and reports whether the
// particle survived. Exactly one value is consumed from the particle's
// stream on every call, so replaying a history gives the same outcome no
// matter where the call happens.
//
// A survivor's weight is raised to weightSurvive, a loser's weight is set to
// zero. The survival chance is weight/weightSurvive, so the expected weight
// after the game equals the weight before it and tallies stay unbiased.
//
// weightSurvive must be positive; configuration validates that before any
// transport starts. With a dead particle (zero weight) the game is a
// guaranteed loss and the weight stays zero.
func RussianRoulette(p *particle.Particle, weightSurvive float64) bool {
	u := p.Stream.Uniform()
	if weightSurvive*u < p.Weight {
		p.Weight = weightSurvive
		return true
	}
	p.Weight = 0
	return false
}
