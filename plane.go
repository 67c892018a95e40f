package paramgeom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is an oriented local basis used to embed 2-D parametrizations
// into 3-D space. Orthonormality of the axes is a convention only.
type Plane struct {
	Origin r3.Vec
	XAxis  r3.Vec
	YAxis  r3.Vec
	Normal r3.Vec
}

// NewPlane creates a plane from an origin and three basis vectors.
func NewPlane(origin, x, y, normal r3.Vec) Plane {
	return Plane{Origin: origin, XAxis: x, YAxis: y, Normal: normal}
}

// DefaultPlane is the canonical plane at the origin. Its normal points to
// -z, not +z; the default shapes are formulated against that orientation.
func DefaultPlane() Plane {
	return Plane{
		Origin: Origin,
		XAxis:  Vec(1, 0, 0),
		YAxis:  Vec(0, 1, 0),
		Normal: Vec(0, 0, -1),
	}
}

// At returns the point Origin + x⋅XAxis + y⋅YAxis + z⋅Normal.
func (pl Plane) At(x, y, z float64) r3.Vec {
	return r3.Add(pl.Origin, pl.Along(x, y, z))
}

// Along returns the vector x⋅XAxis + y⋅YAxis + z⋅Normal, i.e. a direction
// expressed in plane coordinates. Derivatives of embedded shapes use it.
func (pl Plane) Along(x, y, z float64) r3.Vec {
	v := r3.Scale(x, pl.XAxis)
	v = r3.Add(v, r3.Scale(y, pl.YAxis))
	return r3.Add(v, r3.Scale(z, pl.Normal))
}

// Local returns the coordinates of p, projected onto the plane, with
// respect to XAxis and YAxis. The axes need not be orthogonal; the 2×2 Gram
// system is solved directly. Degenerate axes yield NaN/Inf.
func (pl Plane) Local(p r3.Vec) (float64, float64) {
	d := r3.Sub(p, pl.Origin)
	g11 := r3.Dot(pl.XAxis, pl.XAxis)
	g12 := r3.Dot(pl.XAxis, pl.YAxis)
	g22 := r3.Dot(pl.YAxis, pl.YAxis)
	b1 := r3.Dot(pl.XAxis, d)
	b2 := r3.Dot(pl.YAxis, d)
	det := g11*g22 - g12*g12
	if Is0(det) {
		tracer().Errorf("plane axes are linearly dependent: %v", pl)
	}
	return (b1*g22 - b2*g12) / det, (g11*b2 - g12*b1) / det
}

func (pl Plane) String() string {
	return fmt.Sprintf("plane{o=%v x=%v y=%v n=%v}", pl.Origin, pl.XAxis, pl.YAxis, pl.Normal)
}
