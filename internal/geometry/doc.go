// Package geometry converts landmark point sets into the scalar ratios
// the temporal state machine consumes: the eye aspect ratio (EAR) and the
// mouth aspect ratio (MAR). The functions are pure; backend-specific
// landmark numbering is isolated in IndexMap tables so the 68-point and
// mesh schemes share one implementation.
package geometry
