package scalars

import (
	"fmt"
	"strings"
)

// Variant identifies one genetic locus by id and its observed alleles.
// Alt is ordered; a biallelic variant carries exactly one alt allele.
// Variants are value objects and must not be mutated after construction.
type Variant struct {
	ID  string
	Ref string
	Alt []string
}

func NewVariant(id, ref string, alt []string) (*Variant, error) {
	if id == "" {
		return nil, fmt.Errorf("variant id must not be empty")
	}
	if ref == "" {
		return nil, fmt.Errorf("variant %s: ref allele must not be empty", id)
	}
	if len(alt) == 0 {
		return nil, fmt.Errorf("variant %s: at least one alt allele is required", id)
	}
	for i, a := range alt {
		if a == "" {
			return nil, fmt.Errorf("variant %s: alt allele %d is empty", id, i)
		}
	}
	v := &Variant{ID: id, Ref: ref, Alt: make([]string, len(alt))}
	copy(v.Alt, alt)
	return v, nil
}

// IsBiallelic reports whether the variant has exactly one alt allele.
func (v *Variant) IsBiallelic() bool {
	return len(v.Alt) == 1
}

// GenotypeStrings returns the three diploid genotype labels for a biallelic
// variant: hom-ref, het, hom-alt (e.g. "AA", "Aa", "aa").
func (v *Variant) GenotypeStrings() [3]string {
	return [3]string{
		v.Ref + v.Ref,
		v.Ref + v.Alt[0],
		v.Alt[0] + v.Alt[0],
	}
}

func (v *Variant) String() string {
	return fmt.Sprintf("%s[%s/%s]", v.ID, v.Ref, strings.Join(v.Alt, ","))
}
