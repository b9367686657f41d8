package mdarh

import (
	"fmt"
	"math"

	"github.com/RadostW/glm-mda-diffusion/config"
)

// BeadKind says whether a bead stands for one linker residue or the
// collapsed core of a whole folded domain.
type BeadKind int

const (
	LinkerBead BeadKind = iota
	DomainBead
)

// Bead is one sphere of the coarse-grained chain. The steric radius is
// used for excluded volume during conformation sampling, the
// hydrodynamic radius in the MDA coupling. Bead i is bonded to bead i+1.
type Bead struct {
	StericRadius       float64 // Angstrom
	HydrodynamicRadius float64 // Angstrom
	Kind               BeadKind
}

// buildBeads turns the segment list into the ordered bead chain. Each
// linker residue becomes one bead with the configured constant radii,
// independent of its mass. Each domain segment becomes exactly one
// bead: its steric radius is that of a sphere of the segment's total
// mass at the configured effective density, and its hydrodynamic
// radius adds the hydration shell on top.
func buildBeads(segments []segment, conf *config.Config) ([]Bead, error) {
	if err := checkParams(conf); err != nil {
		return nil, err
	}

	var beads []Bead
	for _, seg := range segments {
		switch seg.kind {
		case linkerSegment:
			for range seg.residues {
				beads = append(beads, Bead{
					StericRadius:       conf.StericRadius,
					HydrodynamicRadius: conf.HydrodynamicRadius,
					Kind:               LinkerBead,
				})
			}
		case domainSegment:
			mass := 0.0
			for i := 0; i < len(seg.residues); i++ {
				mass += residueMass(seg.residues[i], conf.AminoacidMasses)
			}
			if mass <= 0 {
				return nil, &InvalidPhysicalParameterError{
					Reason: fmt.Sprintf("domain %q has total mass %g Da, cannot form a sphere", seg.residues, mass),
				}
			}

			// equivalent compact sphere: m = 4/3 pi rho r^3
			steric := math.Cbrt(3 * mass / (4 * math.Pi * conf.EffectiveDensity))
			beads = append(beads, Bead{
				StericRadius:       steric,
				HydrodynamicRadius: steric + conf.HydrationThickness,
				Kind:               DomainBead,
			})
		}
	}

	return beads, nil
}

func checkParams(conf *config.Config) error {
	checks := []struct {
		name  string
		value float64
	}{
		{"steric-radius", conf.StericRadius},
		{"hydrodynamic-radius", conf.HydrodynamicRadius},
		{"effective-density", conf.EffectiveDensity},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return &InvalidPhysicalParameterError{Reason: fmt.Sprintf("%s must be positive, got %g", c.name, c.value)}
		}
	}
	if conf.HydrationThickness < 0 {
		return &InvalidPhysicalParameterError{Reason: fmt.Sprintf("hydration-thickness must be non-negative, got %g", conf.HydrationThickness)}
	}
	return nil
}

// stericRadii returns the per-bead steric radii in chain order, the
// shape the chain generator consumes.
func stericRadii(beads []Bead) []float64 {
	radii := make([]float64, len(beads))
	for i, b := range beads {
		radii[i] = b.StericRadius
	}
	return radii
}

// hydrodynamicRadii returns the per-bead hydrodynamic radii in chain order.
func hydrodynamicRadii(beads []Bead) []float64 {
	radii := make([]float64, len(beads))
	for i, b := range beads {
		radii[i] = b.HydrodynamicRadius
	}
	return radii
}
