package paramgeom

import "gonum.org/v1/gonum/spatial/r3"

// FrenetFrame is a snapshot of a curve's local orientation at one
// parameter value.
//
// Normal is the normalized acceleration direction. It is orthogonal to
// Tangent only where the curve moves at constant speed.
type FrenetFrame struct {
	Position r3.Vec
	Tangent  r3.Vec
	Normal   r3.Vec
	Binormal r3.Vec
}

// NewFrenetFrame bundles a position and three direction vectors.
func NewFrenetFrame(p, t, n, b r3.Vec) FrenetFrame {
	return FrenetFrame{Position: p, Tangent: t, Normal: n, Binormal: b}
}

// SurfaceCurvature is a snapshot of a surface's local bending at one
// parameter pair (U,V).
type SurfaceCurvature struct {
	Point    r3.Vec
	U, V     float64
	Normal   r3.Vec
	Gaussian float64
	Mean     float64
}
