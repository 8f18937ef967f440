package detection

// Emotion is the dominant-expression summary for a frame.
type Emotion struct {
	// Label is the winning label from the backend's fixed label set.
	Label string
	// Confidence is the winning label's raw score, not renormalized.
	Confidence float64
}

// FrameMetrics carries the per-frame signals derived from one landmark set.
// Instances are ephemeral: recomputed every frame, owned by the pipeline,
// never persisted.
type FrameMetrics struct {
	// EAR is the averaged eye aspect ratio; low values mean closed eyes.
	EAR float64
	// MAR is the mouth aspect ratio; high values mean an open mouth.
	MAR float64
	// AuxBlink is an optional blendshape blink score, negative when absent.
	AuxBlink float64
	// AuxJawOpen is an optional blendshape jaw-open score, negative when absent.
	AuxJawOpen float64
	// Emotion is the dominant-expression summary.
	Emotion Emotion
	// Landmarks is the source point set the ratios were derived from.
	Landmarks LandmarkSet
	// Face is the face bounding box, if the backend provided one.
	Face FaceBox
}
