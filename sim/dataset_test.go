package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	dataset, err := Default().GenerateCaseControl(5, 3, 0.3, 0.3)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, dataset.WriteCSV(&b))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 9) // header + 8 rows
	assert.Equal(t, "Outcome,rs1,rs2", lines[0])

	cases, controls := 0, 0
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 3)
		switch fields[0] {
		case OutcomeCase:
			cases++
		case OutcomeControl:
			controls++
		default:
			t.Fatalf("unexpected outcome %q", fields[0])
		}
		assert.Contains(t, []string{"AA", "Aa", "aa"}, fields[1])
		assert.Contains(t, []string{"BB", "Bb", "bb"}, fields[2])
	}
	assert.Equal(t, 5, cases)
	assert.Equal(t, 3, controls)
}
