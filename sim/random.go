package sim

import (
	"encoding/binary"
	"fmt"

	"github.com/aead/chacha20/chacha"
	"github.com/hhcho/frand"
)

const prgBufferSize int = 1024

// NewPRG builds a deterministic generator keyed by the given seed. Every
// sampling run constructs its own PRG, so independent runs with the same seed
// are bit-identical and parallel runs never share state.
func NewPRG(seed int64) *frand.RNG {
	key := make([]byte, chacha.KeySize)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	return frand.NewCustom(key, prgBufferSize, 20)
}

// sampleWeighted draws n indices in [0, len(weights)) with replacement,
// proportionally to weights. Weights must be non-negative and sum to a
// positive total (they come from a normalized posterior table).
func sampleWeighted(prg *frand.RNG, weights []float64, n int) ([]int, error) {
	total := 0.0
	cum := make([]float64, len(weights))
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("negative sampling weight %g at index %d", w, i)
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("sampling weights sum to %g, nothing to draw from", total)
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		u := prg.Float64() * total
		idx := len(cum) - 1
		for j, c := range cum {
			if u < c {
				idx = j
				break
			}
		}
		out[i] = idx
	}
	return out, nil
}
