package mdarh

import (
	"errors"
	"math"
	"testing"

	"github.com/RadostW/glm-mda-diffusion/config"
)

func Test_buildBeads_linkers(t *testing.T) {
	conf := config.Default()

	beads, err := BuildModel("MGSSGLVPR", conf)
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}

	// one bead per residue, all with the configured constant radii
	if len(beads) != 9 {
		t.Fatalf("BuildModel() produced %d beads, want 9", len(beads))
	}
	for i, b := range beads {
		if b.Kind != LinkerBead {
			t.Errorf("bead %d kind = %v, want LinkerBead", i, b.Kind)
		}
		if b.StericRadius != conf.StericRadius {
			t.Errorf("bead %d steric radius = %f, want %f", i, b.StericRadius, conf.StericRadius)
		}
		if b.HydrodynamicRadius != conf.HydrodynamicRadius {
			t.Errorf("bead %d hydrodynamic radius = %f, want %f", i, b.HydrodynamicRadius, conf.HydrodynamicRadius)
		}
	}
}

func Test_buildBeads_domain(t *testing.T) {
	conf := config.Default()

	beads, err := BuildModel("[HHHHHH]", conf)
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}

	if len(beads) != 1 {
		t.Fatalf("BuildModel() produced %d beads, want 1", len(beads))
	}
	b := beads[0]
	if b.Kind != DomainBead {
		t.Errorf("bead kind = %v, want DomainBead", b.Kind)
	}

	// the hydration shell sits on top of the dry core
	if got, want := b.HydrodynamicRadius, b.StericRadius+conf.HydrationThickness; math.Abs(got-want) > 1e-12 {
		t.Errorf("hydrodynamic radius = %f, want steric + hydration = %f", got, want)
	}

	// six histidines at 137.15 Da each, compacted at the default density
	mass := 6 * 137.15
	want := math.Cbrt(3 * mass / (4 * math.Pi * conf.EffectiveDensity))
	if math.Abs(b.StericRadius-want) > 1e-12 {
		t.Errorf("steric radius = %f, want %f", b.StericRadius, want)
	}
}

func Test_buildBeads_domainMonotonicity(t *testing.T) {
	domainRadius := func(seq string, density float64) float64 {
		conf := config.Default()
		conf.EffectiveDensity = density
		beads, err := BuildModel(seq, conf)
		if err != nil {
			t.Fatalf("BuildModel(%q) error = %v", seq, err)
		}
		return beads[0].StericRadius
	}

	// heavier domains are bigger
	if small, big := domainRadius("[HH]", 0.52), domainRadius("[HHHH]", 0.52); small >= big {
		t.Errorf("radius not increasing in mass: %f >= %f", small, big)
	}

	// denser domains are smaller
	if loose, dense := domainRadius("[HHHH]", 0.3), domainRadius("[HHHH]", 0.9); loose <= dense {
		t.Errorf("radius not decreasing in density: %f <= %f", loose, dense)
	}
}

func Test_buildBeads_errors(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		edit func(*config.Config)
	}{
		{
			"zero mass domain",
			"[XXX]", // placeholder codes weigh nothing
			func(c *config.Config) {},
		},
		{
			"negative steric radius",
			"MGSS",
			func(c *config.Config) { c.StericRadius = -1 },
		},
		{
			"zero effective density",
			"[HH]",
			func(c *config.Config) { c.EffectiveDensity = 0 },
		},
		{
			"negative hydration thickness",
			"[HH]",
			func(c *config.Config) { c.HydrationThickness = -0.5 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := config.Default()
			tt.edit(conf)

			_, err := BuildModel(tt.seq, conf)

			var invalid *InvalidPhysicalParameterError
			if !errors.As(err, &invalid) {
				t.Errorf("BuildModel() error = %v, want *InvalidPhysicalParameterError", err)
			}
		})
	}
}

func Test_buildBeads_massOverride(t *testing.T) {
	conf := config.Default()
	conf.AminoacidMasses = map[string]float64{"X": 100.0}

	// overridden placeholder code now carries mass, so the domain is valid
	beads, err := BuildModel("[XX]", conf)
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}

	want := math.Cbrt(3 * 200.0 / (4 * math.Pi * conf.EffectiveDensity))
	if math.Abs(beads[0].StericRadius-want) > 1e-12 {
		t.Errorf("steric radius = %f, want %f", beads[0].StericRadius, want)
	}
}
