package detection

// Point is a 2-D landmark coordinate in pixel or normalized space.
// Points are immutable for the lifetime of a frame.
type Point struct {
	// X is the horizontal coordinate.
	X float64
	// Y is the vertical coordinate.
	Y float64
}

// LandmarkSet is the ordered point set produced by the detector backend
// for one face in one frame. Index meaning is backend-specific but stable
// within a session; geometry code resolves indices through an index map,
// never through hard-coded positions.
type LandmarkSet []Point

// FaceBox is the bounding box of the tracked face in frame coordinates.
type FaceBox struct {
	// X and Y locate the top-left corner.
	X float64
	Y float64
	// Width and Height span the detected face.
	Width  float64
	Height float64
}
