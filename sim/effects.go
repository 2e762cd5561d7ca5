package sim

import (
	"fmt"
)

// EffectEncoding is the normalized phenotypic effect of the three genotype
// states of one locus: hom-ref, het, hom-alt.
type EffectEncoding [3]float64

// Named encodings for the standard inheritance models.
var (
	Dominant      = EffectEncoding{0, 1, 1}
	SuperAdditive = EffectEncoding{0, 0.75, 1}
	Additive      = EffectEncoding{0, 0.5, 1}
	SubAdditive   = EffectEncoding{0, 0.25, 1}
	Recessive     = EffectEncoding{0, 0, 1}
	Het           = EffectEncoding{0, 1, 0}
)

var encodingsByName = map[string]EffectEncoding{
	"DOMINANT":       Dominant,
	"SUPER_ADDITIVE": SuperAdditive,
	"ADDITIVE":       Additive,
	"SUB_ADDITIVE":   SubAdditive,
	"RECESSIVE":      Recessive,
	"HET":            Het,
}

// EncodingByName looks up one of the named encodings.
func EncodingByName(name string) (EffectEncoding, error) {
	enc, ok := encodingsByName[name]
	if !ok {
		return EffectEncoding{}, fmt.Errorf("unknown effect encoding %q", name)
	}
	return enc, nil
}

func (e EffectEncoding) minMax() (float64, float64) {
	min, max := e[0], e[0]
	for _, v := range e[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Rescale maps the encoding linearly onto [0,1]. The returned flag reports
// whether any rescaling was applied. An all-equal encoding has zero range and
// cannot be normalized.
func (e EffectEncoding) Rescale() (EffectEncoding, bool, error) {
	min, max := e.minMax()
	if min == 0 && max == 1 {
		return e, false, nil
	}
	if min == max {
		return EffectEncoding{}, false, fmt.Errorf("effect encoding %v is constant and cannot be rescaled", e)
	}
	var out EffectEncoding
	for i, v := range e {
		out[i] = (v - min) / (max - min)
	}
	return out, true, nil
}
