package genotype

import (
	"fmt"

	"github.com/hhcho/snpsim/scalars"
)

// Dtype ties a genotype column to the variant whose alleles it indexes.
type Dtype struct {
	Variant *scalars.Variant
}

func NewDtype(v *scalars.Variant) (Dtype, error) {
	if v == nil {
		return Dtype{}, fmt.Errorf("dtype requires a variant")
	}
	return Dtype{Variant: v}, nil
}

func (d Dtype) Equal(other Dtype) bool {
	if d.Variant == other.Variant {
		return true
	}
	if d.Variant == nil || other.Variant == nil {
		return false
	}
	if d.Variant.ID != other.Variant.ID || d.Variant.Ref != other.Variant.Ref {
		return false
	}
	if len(d.Variant.Alt) != len(other.Variant.Alt) {
		return false
	}
	for i := range d.Variant.Alt {
		if d.Variant.Alt[i] != other.Variant.Alt[i] {
			return false
		}
	}
	return true
}

// Array is a columnar sequence of genotype calls for a single variant.
type Array struct {
	dtype Dtype
	calls []Genotype
}

// NewArray builds an Array from raw calls. The calls slice is copied.
func NewArray(calls []Genotype, dtype Dtype) (*Array, error) {
	if dtype.Variant == nil {
		return nil, fmt.Errorf("genotype array requires a variant-backed dtype")
	}
	a := &Array{dtype: dtype, calls: make([]Genotype, len(calls))}
	copy(a.calls, calls)
	return a, nil
}

// FromStates builds an Array by mapping each state index (0/1/2) to its call.
func FromStates(states []int, dtype Dtype) (*Array, error) {
	calls := make([]Genotype, len(states))
	for i, s := range states {
		g, err := FromState(s)
		if err != nil {
			return nil, err
		}
		calls[i] = g
	}
	return NewArray(calls, dtype)
}

func (a *Array) Len() int {
	return len(a.calls)
}

func (a *Array) Dtype() Dtype {
	return a.dtype
}

func (a *Array) At(i int) Genotype {
	return a.calls[i]
}

// Concat appends another Array of the same dtype, returning a new Array.
func (a *Array) Concat(other *Array) (*Array, error) {
	if !a.dtype.Equal(other.dtype) {
		return nil, fmt.Errorf("cannot concat genotype arrays for different variants: %s vs %s",
			a.dtype.Variant, other.dtype.Variant)
	}
	merged := make([]Genotype, 0, len(a.calls)+len(other.calls))
	merged = append(merged, a.calls...)
	merged = append(merged, other.calls...)
	return &Array{dtype: a.dtype, calls: merged}, nil
}

// Take reorders the Array by the given permutation of row indices.
func (a *Array) Take(perm []int) (*Array, error) {
	if len(perm) != len(a.calls) {
		return nil, fmt.Errorf("permutation length %d does not match array length %d", len(perm), len(a.calls))
	}
	taken := make([]Genotype, len(perm))
	for i, j := range perm {
		if j < 0 || j >= len(a.calls) {
			return nil, fmt.Errorf("permutation index %d out of range [0,%d)", j, len(a.calls))
		}
		taken[i] = a.calls[j]
	}
	return &Array{dtype: a.dtype, calls: taken}, nil
}

// GenotypeString renders call i with the variant's allele letters.
func (a *Array) GenotypeString(i int) string {
	return a.dtype.Variant.GenotypeStrings()[a.calls[i].State()]
}
