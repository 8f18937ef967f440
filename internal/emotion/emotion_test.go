package emotion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSummarize picks the highest raw score without renormalizing.
func TestSummarize(t *testing.T) {
	t.Parallel()

	result := Summarize(map[string]float64{
		"angry":   0.05,
		"happy":   0.72,
		"neutral": 0.2,
	})
	require.Equal(t, "happy", result.Label)
	require.Equal(t, 0.72, result.Confidence)
}

// TestSummarize_TieBreaksByLabelName resolves equal scores deterministically.
func TestSummarize_TieBreaksByLabelName(t *testing.T) {
	t.Parallel()

	scores := map[string]float64{
		"surprise": 0.4,
		"frown":    0.4,
		"neutral":  0.1,
	}

	// Run repeatedly: map iteration order must not leak into the result.
	for i := 0; i < 50; i++ {
		result := Summarize(scores)
		require.Equal(t, "frown", result.Label)
		require.Equal(t, 0.4, result.Confidence)
	}
}

// TestSummarize_Empty reports neutral with zero confidence.
func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	result := Summarize(nil)
	require.Equal(t, LabelNeutral, result.Label)
	require.Zero(t, result.Confidence)
}
