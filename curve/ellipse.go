package curve

import (
	"math"

	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/spatial/r3"
)

// EllipseArc is an arc of an axis-aligned ellipse with semi-axes A (along
// the plane's x-axis) and B (along its y-axis), sweeping Angle radians of
// the eccentric anomaly.
//
// There is no closed form for its length.
type EllipseArc struct {
	Plane paramgeom.Plane
	A, B  float64
	Angle float64
}

// NewEllipseArc creates an elliptical arc in plane.
func NewEllipseArc(plane paramgeom.Plane, a, b, angle float64) *EllipseArc {
	return &EllipseArc{Plane: plane, A: a, B: b, Angle: angle}
}

// DefaultEllipseArc is half an ellipse with semi-axes 1 and 2.
func DefaultEllipseArc() *EllipseArc {
	return NewEllipseArc(paramgeom.DefaultPlane(), 1, 2, math.Pi)
}

// Domain is [0, Angle].
func (e *EllipseArc) Domain() paramgeom.Domain {
	return paramgeom.NewDomain(0, e.Angle)
}

// PointAt maps s linearly onto the arc's angular range.
func (e *EllipseArc) PointAt(s float64) r3.Vec {
	sin, cos := math.Sincos(s * e.Angle)
	return e.Plane.At(e.A*cos, e.B*sin, 0)
}

func (e *EllipseArc) VelocityAt(s float64) r3.Vec {
	sin, cos := math.Sincos(s * e.Angle)
	return e.Plane.Along(-e.Angle*e.A*sin, e.Angle*e.B*cos, 0)
}

func (e *EllipseArc) AccelerationAt(s float64) r3.Vec {
	sin, cos := math.Sincos(s * e.Angle)
	k := e.Angle * e.Angle
	return e.Plane.Along(-k*e.A*cos, -k*e.B*sin, 0)
}
