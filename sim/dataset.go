package sim

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/hhcho/snpsim/genotype"
)

// Outcome labels for the phenotype column.
const (
	OutcomeCase    = "Case"
	OutcomeControl = "Control"
)

// Dataset is one simulated case/control table: one row per individual,
// columns Outcome, SNP1 genotype, SNP2 genotype. The three columns are
// row-aligned; row order is already shuffled.
type Dataset struct {
	Outcome []string
	SNP1    *genotype.Array
	SNP2    *genotype.Array
}

func (d *Dataset) NumRows() int {
	return len(d.Outcome)
}

func (d *Dataset) CaseCount() int {
	n := 0
	for _, o := range d.Outcome {
		if o == OutcomeCase {
			n++
		}
	}
	return n
}

func (d *Dataset) ControlCount() int {
	return len(d.Outcome) - d.CaseCount()
}

// WriteCSV writes the dataset with a header row, genotypes rendered with the
// variants' allele letters.
func (d *Dataset) WriteCSV(w io.Writer) error {
	if d.SNP1.Len() != len(d.Outcome) || d.SNP2.Len() != len(d.Outcome) {
		return fmt.Errorf("misaligned dataset: %d outcomes, %d SNP1 calls, %d SNP2 calls",
			len(d.Outcome), d.SNP1.Len(), d.SNP2.Len())
	}
	cw := csv.NewWriter(w)
	header := []string{"Outcome", d.SNP1.Dtype().Variant.ID, d.SNP2.Dtype().Variant.ID}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range d.Outcome {
		row := []string{d.Outcome[i], d.SNP1.GenotypeString(i), d.SNP2.GenotypeString(i)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
