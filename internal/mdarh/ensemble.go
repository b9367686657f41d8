package mdarh

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/RadostW/glm-mda-diffusion/config"
)

// Result holds the two reported quantities of a prediction, both in
// Angstroms.
type Result struct {
	// ProteinRH is the MDA hydrodynamic radius averaged over the
	// sampled ensemble
	ProteinRH float64

	// ProteinRHSigma is the bootstrap standard error of ProteinRH.
	// Zero when bootstrapping is disabled or the ensemble has one member
	ProteinRHSigma float64
}

// BuildModel coarse-grains an annotated sequence into its bead chain:
// one bead per linker residue, one bead per bracketed domain.
func BuildModel(sequence string, conf *config.Config) ([]Bead, error) {
	segments, err := parseAnnotated(sequence)
	if err != nil {
		return nil, err
	}
	return buildBeads(segments, conf)
}

// Sample draws one self-avoiding conformation of the bead chain from
// gen and validates it against the model.
func Sample(gen ChainGenerator, beads []Bead, rng *rand.Rand) ([]r3.Vec, error) {
	return sampleConformation(gen, stericRadii(beads), rng)
}

// PredictRH predicts the hydrodynamic radius of the protein described
// by the annotated sequence. It builds the bead model, samples
// conf.EnsembleSize independent conformations from gen, evaluates the
// MDA on each, and reports the ensemble mean with a bootstrap error
// bar. The diffusion coefficient of a flexible chain is an average over
// its accessible conformations, so the mean over the ensemble is the
// physically meaningful estimate, not any single snapshot.
//
// Ensemble members are computed concurrently (conf.Threads workers,
// one per CPU when zero). Each member gets its own random source
// derived from conf.Seed, so a fixed non-zero seed reproduces the same
// result regardless of scheduling.
func PredictRH(sequence string, conf *config.Config, gen ChainGenerator) (Result, error) {
	if conf.EnsembleSize < 1 {
		return Result{}, &InvalidPhysicalParameterError{
			Reason: fmt.Sprintf("ensemble-size must be at least 1, got %d", conf.EnsembleSize),
		}
	}
	if conf.BootstrapRounds < 0 {
		return Result{}, &InvalidPhysicalParameterError{
			Reason: fmt.Sprintf("bootstrap-rounds must be non-negative, got %d", conf.BootstrapRounds),
		}
	}

	beads, err := BuildModel(sequence, conf)
	if err != nil {
		return Result{}, err
	}

	steric := stericRadii(beads)
	hydro := hydrodynamicRadii(beads)

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	estimates := make([]float64, conf.EnsembleSize)

	threads := conf.Threads
	if threads < 1 {
		threads = runtime.GOMAXPROCS(0)
	}

	var group errgroup.Group
	group.SetLimit(threads)
	for i := range estimates {
		i := i
		group.Go(func() error {
			rng := rand.New(rand.NewSource(memberSeed(seed, i)))
			points, err := sampleConformation(gen, steric, rng)
			if err != nil {
				return err
			}
			rh, err := mdaRadius(points, hydro)
			if err != nil {
				// coincident beads make the coupling matrix singular,
				// which is a defect of the sampled conformation
				return &ConformationGenerationError{Reason: err.Error()}
			}
			estimates[i] = rh
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	boot := rand.New(rand.NewSource(memberSeed(seed, len(estimates))))
	return Result{
		ProteinRH:      stat.Mean(estimates, nil),
		ProteinRHSigma: bootstrapSigma(estimates, conf.BootstrapRounds, boot),
	}, nil
}

// memberSeed derives an independent stream seed for ensemble member i.
// A splitmix-style mix keeps neighboring member seeds uncorrelated.
func memberSeed(seed int64, i int) int64 {
	z := uint64(seed) + uint64(i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// bootstrapSigma estimates the standard error of the ensemble mean by
// resampling: each round draws len(estimates) values with replacement
// and takes their mean; the spread of those means is the error bar. A
// singleton ensemble always resamples to itself, so its sigma is
// exactly zero.
func bootstrapSigma(estimates []float64, rounds int, rng *rand.Rand) float64 {
	if rounds == 0 || len(estimates) < 2 {
		return 0
	}

	means := make([]float64, rounds)
	resample := make([]float64, len(estimates))
	for round := range means {
		for j := range resample {
			resample[j] = estimates[rng.Intn(len(estimates))]
		}
		means[round] = stat.Mean(resample, nil)
	}

	return stat.PopStdDev(means, nil)
}
