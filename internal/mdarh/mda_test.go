package mdarh

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func Test_mdaRadius_singleBead(t *testing.T) {
	// a single bead is a rigid sphere: its hydrodynamic radius is exact
	got, err := mdaRadius([]r3.Vec{{X: 1, Y: 2, Z: 3}}, []float64{4.2})
	if err != nil {
		t.Fatalf("mdaRadius() error = %v", err)
	}
	if got != 4.2 {
		t.Errorf("mdaRadius() = %f, want 4.2", got)
	}
}

func Test_mdaRadius_twoSeparatedBeads(t *testing.T) {
	// for two beads the coupling matrix inverts in closed form:
	// B = [[1/a1, 1/r], [1/r, 1/a2]] and
	// Rh = sum(B^-1) = (1/a1 + 1/a2 - 2/r) / (1/(a1*a2) - 1/r^2)
	a1, a2, r := 2.0, 3.0, 20.0
	points := []r3.Vec{{}, {X: r}}

	got, err := mdaRadius(points, []float64{a1, a2})
	if err != nil {
		t.Fatalf("mdaRadius() error = %v", err)
	}
	want := (1/a1 + 1/a2 - 2/r) / (1/(a1*a2) - 1/(r*r))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("mdaRadius() = %f, want %f", got, want)
	}
}

func Test_mdaRadius_exceedsUniformForceBound(t *testing.T) {
	// the dissipation-minimizing force distribution is not uniform:
	// for any non-degenerate conformation the estimate must sit
	// strictly above the uniform-force shortcut N^2 / sum_ij B_ij,
	// which is known to underestimate Rh for compact chains
	radii := []float64{4.2, 4.2, 10.2, 4.2}
	points := []r3.Vec{{}, {X: 3.8}, {X: 3.8, Y: 9.1}, {X: 3.8, Y: 9.1, Z: 12.1}}

	got, err := mdaRadius(points, radii)
	if err != nil {
		t.Fatalf("mdaRadius() error = %v", err)
	}

	n := len(radii)
	uniform := 0.0
	for i := 0; i < n; i++ {
		uniform += 1 / radii[i]
		for j := i + 1; j < n; j++ {
			r := r3.Norm(r3.Sub(points[i], points[j]))
			uniform += 2 * traceCoupling(r, radii[i], radii[j])
		}
	}
	bound := float64(n*n) / uniform

	if got <= bound {
		t.Errorf("mdaRadius() = %f, want strictly above the uniform-force bound %f", got, bound)
	}
}

func Test_mdaRadius_translationInvariant(t *testing.T) {
	radii := []float64{1.5, 2.5, 4.0}
	points := []r3.Vec{{}, {X: 4}, {X: 4, Y: 6.5}}

	shift := r3.Vec{X: 100, Y: -40, Z: 7}
	shifted := make([]r3.Vec, len(points))
	for i, p := range points {
		shifted[i] = r3.Add(p, shift)
	}

	got, err := mdaRadius(shifted, radii)
	if err != nil {
		t.Fatalf("mdaRadius() error = %v", err)
	}
	want, err := mdaRadius(points, radii)
	if err != nil {
		t.Fatalf("mdaRadius() error = %v", err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("mdaRadius() after translation = %f, want %f", got, want)
	}
}

func Test_traceCoupling_continuity(t *testing.T) {
	tests := []struct {
		name   string
		ai, aj float64
		r      float64 // branch boundary
	}{
		{"equal spheres at contact", 2.0, 2.0, 4.0},
		{"unequal spheres at contact", 1.5, 3.5, 5.0},
		{"immersion boundary", 1.0, 4.0, 3.0},
	}

	const eps = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			below := traceCoupling(tt.r*(1-eps), tt.ai, tt.aj)
			above := traceCoupling(tt.r*(1+eps), tt.ai, tt.aj)
			if math.Abs(below-above) > 1e-6*above {
				t.Errorf("discontinuity at r=%f: below=%.12f above=%.12f", tt.r, below, above)
			}
		})
	}
}

func Test_traceCoupling_boundedAndMonotone(t *testing.T) {
	ai, aj := 1.5, 3.0
	selfMax := 1 / math.Max(ai, aj)

	prev := math.Inf(1)
	for r := 0.0; r <= 2*(ai+aj); r += 0.01 {
		c := traceCoupling(r, ai, aj)

		// finite for any separation, including full overlap
		if math.IsInf(c, 0) || math.IsNaN(c) {
			t.Fatalf("coupling not finite at r=%f: %f", r, c)
		}
		// never exceeds the larger bead's self mobility
		if c > selfMax*(1+1e-9) {
			t.Fatalf("coupling %f at r=%f exceeds self mobility %f", c, r, selfMax)
		}
		// weaker as beads separate
		if c > prev*(1+1e-9) {
			t.Fatalf("coupling not monotone at r=%f: %f > %f", r, c, prev)
		}
		prev = c
	}
}

func Test_traceCoupling_symmetric(t *testing.T) {
	for _, r := range []float64{0.5, 2.0, 4.4, 10.0} {
		if a, b := traceCoupling(r, 1.5, 3.0), traceCoupling(r, 3.0, 1.5); math.Abs(a-b) > 1e-15 {
			t.Errorf("coupling not symmetric at r=%f: %f != %f", r, a, b)
		}
	}
}
