package detection

import "time"

// Frame is one observation from the capture sidecar: the landmarks of
// the tracked face plus optional auxiliary signals.
//
// FaceDetected=false is a regular observation, not an error. It means
// the subject looked away or left the frame, and it clears any
// accumulated detection state.
type Frame struct {
	// FaceDetected reports whether a face was present this frame.
	FaceDetected bool
	// Landmarks are the facial keypoints; empty when no face.
	Landmarks LandmarkSet
	// CapturedAt is the capture-side timestamp of the frame.
	CapturedAt time.Time
	// Blendshapes are optional corroborating signals (blink, jaw open),
	// keyed by the backend's blendshape name.
	Blendshapes map[string]float64
	// EmotionScores are the backend's raw per-label expression scores.
	EmotionScores map[string]float64
	// Face is the bounding box of the tracked face, when known.
	Face *FaceBox
}
