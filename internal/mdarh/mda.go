package mdarh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// mdaRadius evaluates the minimum dissipation approximation on one
// rigid conformation and returns its effective hydrodynamic radius in
// Angstroms.
//
// The 3Nx3N grand mobility tensor is never assembled or inverted: each
// 3x3 pair block collapses to its trace over the three spatial
// directions, leaving the symmetric NxN coupling matrix B with
// B_ii = 1/a_i (self mobility) and B_ij the trace-reduced pair
// coupling. Minimizing the dissipation functional over the per-bead
// force distribution dragging the rigid snapshot gives
//
//	Rh = 1^T B^-1 1
//
// the sum of the entries of B's inverse, computed as a single NxN
// solve B f = 1. Assembling B dominates the cost at O(N^2) in the
// bead count. The uniform-force shortcut N^2 / sum_ij B_ij is only a
// lower bound on this value and systematically underestimates Rh for
// compact chains.
//
// A conformation with a single bead is its own rigid sphere and returns
// that bead's hydrodynamic radius exactly.
func mdaRadius(points []r3.Vec, radii []float64) (float64, error) {
	n := len(points)
	if n == 0 {
		return 0, nil
	}
	if n == 1 {
		return radii[0], nil
	}

	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetSym(i, i, 1/radii[i])
		for j := i + 1; j < n; j++ {
			r := r3.Norm(r3.Sub(points[i], points[j]))
			b.SetSym(i, j, traceCoupling(r, radii[i], radii[j]))
		}
	}

	ones := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ones.SetVec(i, 1)
	}

	var forces mat.VecDense
	if err := forces.SolveVec(b, ones); err != nil {
		return 0, fmt.Errorf("singular bead coupling matrix: %v", err)
	}

	return mat.Sum(&forces), nil
}

// traceCoupling is the trace of the pair mobility block for two beads
// with hydrodynamic radii ai and aj at center distance r, normalized so
// that a bead's self term is 1/a.
//
// Separated beads reduce to the Oseen-type point coupling 1/r (the
// radius-dependent RPY terms cancel in the trace). Overlapping beads
// use the generalized Rotne-Prager-Yamakawa closed form for unequal
// spheres (Zuk, Wajnryb, Mizerski & Szymczak, J. Fluid Mech. 2014),
// which is finite everywhere and matches 1/r continuously at contact.
// A bead fully inside a larger one moves with the larger bead's self
// mobility.
func traceCoupling(r, ai, aj float64) float64 {
	if r >= ai+aj {
		return 1 / r
	}
	if r <= math.Abs(ai-aj) {
		return 1 / math.Max(ai, aj)
	}

	d2 := (ai - aj) * (ai - aj)
	r2 := r * r
	iso := 16*r2*r*(ai+aj) - (d2+3*r2)*(d2+3*r2)
	dyad := (d2 - r2) * (d2 - r2)

	return (iso + dyad) / (32 * ai * aj * r2 * r)
}
