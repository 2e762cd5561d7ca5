package genotype

import (
	"fmt"
	"math"
)

// Genotype is one diploid call at one locus: an unordered pair of allele
// indices (0 = ref, 1 = first alt) plus a per-call score. The score is a
// placeholder for call quality and is NaN for simulated data.
type Genotype struct {
	Allele1 uint8
	Allele2 uint8
	Score   float64
}

// HomRef, Het and HomAlt are the three states of a biallelic locus.
var (
	HomRef = Genotype{Allele1: 0, Allele2: 0, Score: math.NaN()}
	Het    = Genotype{Allele1: 0, Allele2: 1, Score: math.NaN()}
	HomAlt = Genotype{Allele1: 1, Allele2: 1, Score: math.NaN()}
)

// FromState maps a genotype-state index (0 hom-ref, 1 het, 2 hom-alt) to the
// corresponding call.
func FromState(state int) (Genotype, error) {
	switch state {
	case 0:
		return HomRef, nil
	case 1:
		return Het, nil
	case 2:
		return HomAlt, nil
	}
	return Genotype{}, fmt.Errorf("genotype state must be 0, 1 or 2, got %d", state)
}

// State returns the genotype-state index, i.e. the alt-allele count.
func (g Genotype) State() int {
	return int(g.Allele1) + int(g.Allele2)
}
