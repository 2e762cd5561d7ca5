package sim

import (
	"fmt"

	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/gonum/mat"
)

// DefaultMinP floors the probability surface away from 0 and 1 so that the
// Bayesian inversion stays defined. Stands in for a signal-to-noise-ratio
// parameter that is not wired in yet.
const DefaultMinP = 0.01

func checkPenTableShape(pen *mat.Dense) error {
	if pen == nil {
		return fmt.Errorf("penetrance table is required")
	}
	r, c := pen.Dims()
	if r != 3 || c != 3 {
		return fmt.Errorf("incorrect shape for penetrance table, must be 3x3, got %dx%d", r, c)
	}
	return nil
}

// penTableFromModel expands a two-locus linear model with interaction term
// into a 3x3 penetrance table:
//
//	table[r][c] = baseline + main1*eff1[c] + main2*eff2[r] + interaction*eff2[r]*eff1[c]
//
// eff1 varies across columns, eff2 across rows. Effects are rescaled onto
// [0,1] first so the coefficients are comparable across models.
func penTableFromModel(eff1, eff2 EffectEncoding, baseline, main1, main2, interaction float64) (*mat.Dense, error) {
	eff1, scaled1, err := eff1.Rescale()
	if err != nil {
		return nil, fmt.Errorf("eff1: %v", err)
	}
	if scaled1 {
		log.LLvl1("Scaling eff1 to [0,1]:", eff1)
	}
	eff2, scaled2, err := eff2.Rescale()
	if err != nil {
		return nil, fmt.Errorf("eff2: %v", err)
	}
	if scaled2 {
		log.LLvl1("Scaling eff2 to [0,1]:", eff2)
	}

	v1 := mat.NewVecDense(3, []float64{eff1[0], eff1[1], eff1[2]})
	v2 := mat.NewVecDense(3, []float64{eff2[0], eff2[1], eff2[2]})

	pen := mat.NewDense(3, 3, nil)
	pen.Outer(interaction, v2, v1)
	pen.Apply(func(r, c int, v float64) float64 {
		return baseline + main1*v1.AtVec(c) + main2*v2.AtVec(r) + v
	}, pen)
	return pen, nil
}

// rescaleToProbability maps the raw table's [min,max] onto [0,1] and then
// compresses it into [minP, 1-minP]. The original min and max land exactly on
// minP and 1-minP.
func rescaleToProbability(pen *mat.Dense, minP float64) (*mat.Dense, error) {
	if minP <= 0 || minP >= 0.5 {
		return nil, fmt.Errorf("minP must lie in (0, 0.5), got %g", minP)
	}
	min := mat.Min(pen)
	rng := mat.Max(pen) - min
	if rng == 0 {
		return nil, fmt.Errorf("penetrance table is constant (all cells %g) and cannot be scaled to a probability surface", min)
	}
	pDiff := 1 - 2*minP
	out := mat.NewDense(3, 3, nil)
	out.Apply(func(r, c int, v float64) float64 {
		return minP + (v-min)/rng*pDiff
	}, pen)
	return out, nil
}
