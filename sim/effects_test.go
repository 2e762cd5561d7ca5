package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedEncodingsAlreadyNormalized(t *testing.T) {
	for name, enc := range encodingsByName {
		out, scaled, err := enc.Rescale()
		require.NoError(t, err, name)
		assert.False(t, scaled, name)
		assert.Equal(t, enc, out, name)
	}
}

func TestRescaleCustomEncoding(t *testing.T) {
	out, scaled, err := EffectEncoding{1, 2, 3}.Rescale()
	require.NoError(t, err)
	assert.True(t, scaled)
	assert.Equal(t, EffectEncoding{0, 0.5, 1}, out)

	out, scaled, err = EffectEncoding{0, 1, 4}.Rescale()
	require.NoError(t, err)
	assert.True(t, scaled)
	assert.Equal(t, EffectEncoding{0, 0.25, 1}, out)

	// min and max already at 0/1: untouched even with an odd midpoint
	out, scaled, err = EffectEncoding{0, 0.9, 1}.Rescale()
	require.NoError(t, err)
	assert.False(t, scaled)
	assert.Equal(t, EffectEncoding{0, 0.9, 1}, out)
}

func TestRescaleConstantEncodingFails(t *testing.T) {
	_, _, err := EffectEncoding{0.5, 0.5, 0.5}.Rescale()
	assert.Error(t, err)
	_, _, err = EffectEncoding{0, 0, 0}.Rescale()
	assert.Error(t, err)
}

func TestRescalePropertyMinZeroMaxOne(t *testing.T) {
	cases := []EffectEncoding{
		{-3, 0, 3},
		{10, 20, 15},
		{0.2, 0.4, 0.8},
		{1, 0, 0.5},
	}
	for _, enc := range cases {
		out, _, err := enc.Rescale()
		require.NoError(t, err)
		min, max := out.minMax()
		assert.Equal(t, 0.0, min, "%v", enc)
		assert.Equal(t, 1.0, max, "%v", enc)
	}
}

func TestEncodingByName(t *testing.T) {
	enc, err := EncodingByName("ADDITIVE")
	require.NoError(t, err)
	assert.Equal(t, Additive, enc)

	_, err = EncodingByName("CODOMINANT")
	assert.Error(t, err)
}
