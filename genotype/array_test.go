package genotype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhcho/snpsim/scalars"
)

func testDtype(t *testing.T, id, ref, alt string) Dtype {
	t.Helper()
	v, err := scalars.NewVariant(id, ref, []string{alt})
	require.NoError(t, err)
	d, err := NewDtype(v)
	require.NoError(t, err)
	return d
}

func TestFromState(t *testing.T) {
	for state, want := range map[int]Genotype{0: HomRef, 1: Het, 2: HomAlt} {
		g, err := FromState(state)
		require.NoError(t, err)
		assert.Equal(t, want.Allele1, g.Allele1)
		assert.Equal(t, want.Allele2, g.Allele2)
		assert.Equal(t, state, g.State())
	}
	_, err := FromState(3)
	assert.Error(t, err)
	_, err = FromState(-1)
	assert.Error(t, err)
}

func TestFromStates(t *testing.T) {
	d := testDtype(t, "rs1", "A", "a")
	a, err := FromStates([]int{0, 1, 2, 1}, d)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, "AA", a.GenotypeString(0))
	assert.Equal(t, "Aa", a.GenotypeString(1))
	assert.Equal(t, "aa", a.GenotypeString(2))

	_, err = FromStates([]int{0, 7}, d)
	assert.Error(t, err)
}

func TestConcat(t *testing.T) {
	d := testDtype(t, "rs1", "A", "a")
	left, err := FromStates([]int{0, 1}, d)
	require.NoError(t, err)
	right, err := FromStates([]int{2}, d)
	require.NoError(t, err)

	merged, err := left.Concat(right)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Len())
	assert.Equal(t, 2, merged.At(2).State())

	other, err := FromStates([]int{0}, testDtype(t, "rs2", "B", "b"))
	require.NoError(t, err)
	_, err = left.Concat(other)
	assert.Error(t, err)
}

func TestTake(t *testing.T) {
	d := testDtype(t, "rs1", "A", "a")
	a, err := FromStates([]int{0, 1, 2}, d)
	require.NoError(t, err)

	taken, err := a.Take([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, []int{taken.At(0).State(), taken.At(1).State(), taken.At(2).State()})

	_, err = a.Take([]int{0, 1})
	assert.Error(t, err)
	_, err = a.Take([]int{0, 1, 5})
	assert.Error(t, err)
}
