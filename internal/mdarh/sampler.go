package mdarh

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// ChainGenerator produces one self-avoiding conformation of a linear
// bead chain. Given the per-bead steric radii in chain order it returns
// one bead center per radius, with consecutive beads bonded at contact
// distance and no two beads sterically overlapping. Implementations
// must be deterministic for a fixed rng.
type ChainGenerator interface {
	GenerateChain(radii []float64, rng *rand.Rand) ([]r3.Vec, error)
}

// sampleConformation draws one conformation for the bead chain from
// gen. The only validation done here is that the generator returned
// exactly one center per bead; geometry is the generator's contract.
// Each call is an independent draw, there is no retry logic.
func sampleConformation(gen ChainGenerator, radii []float64, rng *rand.Rand) ([]r3.Vec, error) {
	points, err := gen.GenerateChain(radii, rng)
	if err != nil {
		return nil, &ConformationGenerationError{Reason: err.Error()}
	}
	if len(points) != len(radii) {
		return nil, &ConformationGenerationError{
			Reason: fmt.Sprintf("generator returned %d bead centers for %d beads", len(points), len(radii)),
		}
	}
	return points, nil
}
