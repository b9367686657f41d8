// Package sarw generates self-avoiding random walk conformations of a
// linear chain of spheres with heterogeneous radii. Consecutive spheres
// are bonded at contact distance; no two spheres overlap sterically.
package sarw

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// placement attempts per bead before giving up on the chain so far
	defaultMaxAttempts = 100

	// whole-chain restarts before reporting failure
	defaultMaxRestarts = 1000

	// slack on the overlap test so that exact contact between bonded
	// neighbors never counts as a collision
	overlapTolerance = 1e-9
)

// Generator grows chains bead by bead: each new bead is placed in a
// uniformly random direction at contact distance from its predecessor
// and rejected if it overlaps any earlier bead. A chain that walks
// itself into a dead end is restarted from scratch, which keeps the
// sampled conformations unbiased.
type Generator struct {
	// MaxAttempts is the number of rejected placements tolerated for a
	// single bead before the whole chain restarts
	MaxAttempts int

	// MaxRestarts bounds the number of whole-chain restarts
	MaxRestarts int
}

// New returns a Generator with the default attempt and restart bounds.
func New() *Generator {
	return &Generator{
		MaxAttempts: defaultMaxAttempts,
		MaxRestarts: defaultMaxRestarts,
	}
}

// GenerateChain returns one bead center per radius. The walk is
// deterministic for a fixed rng. An error is returned only if every
// restart dead-ends, which for physical radii means the chain is
// sterically impossible or pathologically dense.
func (g *Generator) GenerateChain(radii []float64, rng *rand.Rand) ([]r3.Vec, error) {
	if len(radii) == 0 {
		return nil, fmt.Errorf("empty radius list")
	}
	for i, r := range radii {
		if r <= 0 {
			return nil, fmt.Errorf("bead %d has non-positive radius %g", i, r)
		}
	}

	for restart := 0; restart <= g.MaxRestarts; restart++ {
		points, ok := g.grow(radii, rng)
		if ok {
			return points, nil
		}
	}

	return nil, fmt.Errorf("no self-avoiding conformation found for %d beads after %d restarts",
		len(radii), g.MaxRestarts)
}

// grow attempts one full chain, bead by bead. ok is false when some
// bead exhausted its placement attempts.
func (g *Generator) grow(radii []float64, rng *rand.Rand) (points []r3.Vec, ok bool) {
	points = make([]r3.Vec, 1, len(radii))
	points[0] = r3.Vec{}

	for i := 1; i < len(radii); i++ {
		bond := radii[i-1] + radii[i]

		placed := false
		for attempt := 0; attempt < g.MaxAttempts; attempt++ {
			candidate := r3.Add(points[i-1], r3.Scale(bond, randomUnit(rng)))
			if !collides(points, radii, candidate, i) {
				points = append(points, candidate)
				placed = true
				break
			}
		}
		if !placed {
			return nil, false
		}
	}

	return points, true
}

// collides reports whether a candidate center for bead i sterically
// overlaps any bead before its bonded neighbor i-1. The neighbor sits
// at exact contact by construction and is skipped.
func collides(points []r3.Vec, radii []float64, candidate r3.Vec, i int) bool {
	for j := 0; j < i-1; j++ {
		minDist := radii[j] + radii[i]
		d := r3.Sub(points[j], candidate)
		if r3.Dot(d, d) < minDist*minDist*(1-overlapTolerance) {
			return true
		}
	}
	return false
}

// randomUnit draws a direction uniformly on the unit sphere by
// normalizing an isotropic Gaussian triple.
func randomUnit(rng *rand.Rand) r3.Vec {
	for {
		v := r3.Vec{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		if r3.Norm(v) > 1e-12 {
			return r3.Unit(v)
		}
	}
}
