package geometry

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned for a backend name no index map covers.
var ErrUnknownBackend = errors.New("unknown landmark backend")

// IndexMap resolves the semantically fixed landmark positions of one
// detector backend. The two observed backends use incompatible index
// schemes; selecting a map at session start keeps a single geometry
// implementation for both.
type IndexMap struct {
	// Name identifies the backend the map belongs to.
	Name string
	// LeftEye and RightEye list the 6 eye contour points in EAR order.
	LeftEye  [eyePointCount]int
	RightEye [eyePointCount]int
	// Mouth lists the 12 outer lip ring points with corners at 0 and 6.
	Mouth [mouthPointCount]int
}

// Backend names accepted at session start.
const (
	BackendDlib68 = "dlib68"
	BackendMesh   = "mediapipe-mesh"
)

// Dlib68 maps the 68-point predictor scheme: eyes at 36-47, outer lip
// ring at 48-59.
func Dlib68() IndexMap {
	return IndexMap{
		Name:     BackendDlib68,
		LeftEye:  [eyePointCount]int{36, 37, 38, 39, 40, 41},
		RightEye: [eyePointCount]int{42, 43, 44, 45, 46, 47},
		Mouth:    [mouthPointCount]int{48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59},
	}
}

// MediaPipeMesh maps the face mesh scheme onto the same contour layout:
// the canonical 6-point EAR eye loops and a 12-point outer lip ring with
// corners 61 and 291.
func MediaPipeMesh() IndexMap {
	return IndexMap{
		Name:     BackendMesh,
		LeftEye:  [eyePointCount]int{33, 160, 158, 133, 153, 144},
		RightEye: [eyePointCount]int{362, 385, 387, 263, 373, 380},
		Mouth:    [mouthPointCount]int{61, 185, 39, 0, 269, 409, 291, 375, 405, 17, 181, 146},
	}
}

// MapForBackend returns the index map for a backend name.
func MapForBackend(name string) (IndexMap, error) {
	switch name {
	case BackendDlib68, "":
		// The 68-point scheme is the default backend.
		return Dlib68(), nil
	case BackendMesh:
		return MediaPipeMesh(), nil
	default:
		return IndexMap{}, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
