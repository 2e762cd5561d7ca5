package sim

import (
	"fmt"

	"github.com/hhcho/frand"
	"github.com/hhcho/snpsim/genotype"
	"github.com/hhcho/snpsim/scalars"
	"gonum.org/v1/gonum/mat"
)

// hweGenotypeProbs returns the genotype-state probabilities at one locus
// under Hardy-Weinberg equilibrium: hom-ref, het, hom-alt.
func hweGenotypeProbs(maf float64) *mat.VecDense {
	p := 1 - maf
	return mat.NewVecDense(3, []float64{p * p, 2 * maf * p, maf * maf})
}

// GenerateCaseControl simulates genotypes at both loci for nCases "Case" and
// nControls "Control" individuals.
//
// The penetrance table is rescaled to a probability surface in
// [MinP, 1-MinP], genotype priors follow HWE at the given minor allele
// frequencies, and the per-group genotype distributions come from inverting
// the penetrance model with Bayes' rule:
//
//	P(GT|Case) = P(Case|GT) * P(GT) / P(Case)
//
// Rows are assembled cases first, then controls, and a single random
// permutation derived from the configuration seed reorders all three columns
// together.
func (s *BiallelicSimulation) GenerateCaseControl(nCases, nControls int, maf1, maf2 float64) (*Dataset, error) {
	return s.generateCaseControl(NewPRG(s.RandomSeed), nCases, nControls, maf1, maf2)
}

// GenerateCaseControlWithPRG is GenerateCaseControl with a caller-supplied
// generator, for callers that run several simulations in parallel and manage
// their own seeding.
func (s *BiallelicSimulation) GenerateCaseControlWithPRG(prg *frand.RNG, nCases, nControls int, maf1, maf2 float64) (*Dataset, error) {
	return s.generateCaseControl(prg, nCases, nControls, maf1, maf2)
}

func (s *BiallelicSimulation) generateCaseControl(prg *frand.RNG, nCases, nControls int, maf1, maf2 float64) (*Dataset, error) {
	if nCases < 1 || nControls < 0 {
		return nil, fmt.Errorf("simulation requires at least one case and zero or more controls, got %d cases, %d controls", nCases, nControls)
	}
	if maf1 <= 0 || maf1 >= 1 {
		return nil, fmt.Errorf("maf1 must lie in (0,1), got %g", maf1)
	}
	if maf2 <= 0 || maf2 >= 1 {
		return nil, fmt.Errorf("maf2 must lie in (0,1), got %g", maf2)
	}

	pen, err := rescaleToProbability(s.PenTable, s.MinP)
	if err != nil {
		return nil, err
	}

	// Joint genotype prior under HWE: SNP2 varies by row, SNP1 by column.
	prior := mat.NewDense(3, 3, nil)
	prior.Outer(1, hweGenotypeProbs(maf2), hweGenotypeProbs(maf1))

	gtGivenCase, gtGivenControl, err := bayesPosteriors(pen, prior)
	if err != nil {
		return nil, err
	}

	// Row-major flatten: index i maps to SNP2 state i/3 and SNP1 state i%3.
	caseIdxs, err := sampleWeighted(prg, gtGivenCase.RawMatrix().Data, nCases)
	if err != nil {
		return nil, err
	}
	controlIdxs, err := sampleWeighted(prg, gtGivenControl.RawMatrix().Data, nControls)
	if err != nil {
		return nil, err
	}

	snp1Col, err := s.materializeLocus(s.SNP1, caseIdxs, controlIdxs, func(idx int) int { return idx % 3 })
	if err != nil {
		return nil, err
	}
	snp2Col, err := s.materializeLocus(s.SNP2, caseIdxs, controlIdxs, func(idx int) int { return idx / 3 })
	if err != nil {
		return nil, err
	}

	n := nCases + nControls
	outcome := make([]string, 0, n)
	for i := 0; i < nCases; i++ {
		outcome = append(outcome, OutcomeCase)
	}
	for i := 0; i < nControls; i++ {
		outcome = append(outcome, OutcomeControl)
	}

	// One permutation shuffles outcome and both genotype columns together,
	// keeping every row's alignment intact.
	perm := prg.Perm(n)
	shuffledOutcome := make([]string, n)
	for i, j := range perm {
		shuffledOutcome[i] = outcome[j]
	}
	snp1Col, err = snp1Col.Take(perm)
	if err != nil {
		return nil, err
	}
	snp2Col, err = snp2Col.Take(perm)
	if err != nil {
		return nil, err
	}

	return &Dataset{Outcome: shuffledOutcome, SNP1: snp1Col, SNP2: snp2Col}, nil
}

// bayesPosteriors inverts the penetrance model: given P(Case|GT) as a
// probability surface and the joint genotype prior P(GT), it returns
// P(GT|Case) and P(GT|Control), each a 3x3 table summing to 1. A zero
// aggregate case or control probability is reported as an error rather than
// propagated as NaN.
func bayesPosteriors(pen, prior *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	jointCase := mat.NewDense(3, 3, nil)
	jointCase.MulElem(pen, prior)
	probCase := mat.Sum(jointCase)

	jointControl := mat.NewDense(3, 3, nil)
	jointControl.Apply(func(r, c int, v float64) float64 {
		return (1 - v) * prior.At(r, c)
	}, pen)
	probControl := mat.Sum(jointControl)

	if probCase <= 0 {
		return nil, nil, fmt.Errorf("aggregate case probability is %g; penetrance table and MAFs admit no cases", probCase)
	}
	if probControl <= 0 {
		return nil, nil, fmt.Errorf("aggregate control probability is %g; penetrance table and MAFs admit no controls", probControl)
	}

	jointCase.Scale(1/probCase, jointCase)
	jointControl.Scale(1/probControl, jointControl)
	return jointCase, jointControl, nil
}

// materializeLocus turns the drawn flat table indices for both groups into a
// single genotype column for one variant, cases first.
func (s *BiallelicSimulation) materializeLocus(v *scalars.Variant, caseIdxs, controlIdxs []int, state func(int) int) (*genotype.Array, error) {
	dtype, err := genotype.NewDtype(v)
	if err != nil {
		return nil, err
	}
	states := make([]int, 0, len(caseIdxs)+len(controlIdxs))
	for _, idx := range caseIdxs {
		states = append(states, state(idx))
	}
	for _, idx := range controlIdxs {
		states = append(states, state(idx))
	}
	return genotype.FromStates(states, dtype)
}
