package emotion

import (
	"sort"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// LabelNeutral is reported when no signal is available for a frame.
const LabelNeutral = "neutral"

// FERLabels is the 7-way label set of the full expression model used with
// the 68-point backend.
//
//nolint:gochecknoglobals // Fixed backend capability table.
var FERLabels = []string{"angry", "disgust", "fear", "happy", "neutral", "sad", "surprise"}

// BlendshapeLabels is the reduced expressivity set derived from mesh
// blendshape scores.
//
//nolint:gochecknoglobals // Fixed backend capability table.
var BlendshapeLabels = []string{"frown", "happy", "neutral", "surprise"}

// Summarize maps raw per-label scores to the dominant emotion. The label
// set is fixed per backend; scores for labels outside the set are ignored
// by the caller, not here. Confidence is the winning raw score, not
// renormalized. Equal scores break deterministically by ascending label
// name so repeated frames with identical input summarize identically.
func Summarize(scores map[string]float64) domain.Emotion {
	if len(scores) == 0 {
		return domain.Emotion{Label: LabelNeutral, Confidence: 0}
	}

	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}

	// Stable ordering first; a plain map walk would make ties nondeterministic.
	sort.Strings(labels)

	best := labels[0]
	for _, label := range labels[1:] {
		if scores[label] > scores[best] {
			best = label
		}
	}

	return domain.Emotion{Label: best, Confidence: scores[best]}
}
