package geometry

import (
	"errors"
	"fmt"
	"math"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// ErrInvalidLandmarkSet is returned when a landmark set is too short for
// the active index map. Callers treat it the same as "no face detected"
// for the frame and log at debug level only.
var ErrInvalidLandmarkSet = errors.New("invalid landmark set")

const (
	// eyePointCount is the number of points on one eye contour.
	eyePointCount = 6
	// mouthPointCount is the number of points on the outer lip ring.
	mouthPointCount = 12
	// mouthVerticalSamples is how many vertical lip gaps the MAR averages.
	mouthVerticalSamples = 3
)

// Euclidean returns the standard 2-D distance between two points.
func Euclidean(p1, p2 domain.Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// EyeAspectRatio computes the EAR for a 6-point eye contour ordered
// outer corner, upper outer, upper inner, inner corner, lower inner,
// lower outer:
//
//	EAR = (|p1-p5| + |p2-p4|) / (2 * |p0-p3|)
//
// Open eyes typically measure 0.25-0.35; the value degenerates toward 0
// as the eyelids close. A degenerate zero-width contour yields 0.
func EyeAspectRatio(eye []domain.Point) float64 {
	if len(eye) != eyePointCount {
		return 0
	}

	vertical := Euclidean(eye[1], eye[5]) + Euclidean(eye[2], eye[4])

	horizontal := Euclidean(eye[0], eye[3])
	if horizontal == 0 {
		return 0
	}

	return vertical / (2 * horizontal)
}

// MouthAspectRatio computes the MAR for a 12-point outer lip ring with
// corners at positions 0 and 6, averaging three vertical lip gaps over
// the corner-to-corner width:
//
//	MAR = (A + B + C) / (3 * D)
//
// A zero mouth width is a degenerate detection and yields exactly 0
// rather than dividing by zero.
func MouthAspectRatio(mouth []domain.Point) float64 {
	if len(mouth) != mouthPointCount {
		return 0
	}

	vertical := Euclidean(mouth[2], mouth[10]) +
		Euclidean(mouth[3], mouth[9]) +
		Euclidean(mouth[4], mouth[8])

	width := Euclidean(mouth[0], mouth[6])
	if width == 0 {
		return 0
	}

	return vertical / (mouthVerticalSamples * width)
}

// Ratios derives the averaged EAR and the MAR from a full landmark set
// using the backend's index map. A set too short for the map yields
// ErrInvalidLandmarkSet and zero ratios.
func Ratios(landmarks domain.LandmarkSet, indexMap IndexMap) (ear, mar float64, err error) {
	leftEye, err := extract(landmarks, indexMap.LeftEye[:])
	if err != nil {
		return 0, 0, err
	}

	rightEye, err := extract(landmarks, indexMap.RightEye[:])
	if err != nil {
		return 0, 0, err
	}

	mouth, err := extract(landmarks, indexMap.Mouth[:])
	if err != nil {
		return 0, 0, err
	}

	ear = (EyeAspectRatio(leftEye) + EyeAspectRatio(rightEye)) / 2
	mar = MouthAspectRatio(mouth)

	return ear, mar, nil
}

// extract resolves the listed indices against the landmark set.
func extract(landmarks domain.LandmarkSet, indices []int) ([]domain.Point, error) {
	points := make([]domain.Point, len(indices))

	for i, index := range indices {
		if index < 0 || index >= len(landmarks) {
			return nil, fmt.Errorf("%w: index %d outside %d landmarks",
				ErrInvalidLandmarkSet, index, len(landmarks))
		}

		points[i] = landmarks[index]
	}

	return points, nil
}
