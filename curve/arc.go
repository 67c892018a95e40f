package curve

import (
	"math"

	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Arc is a circular arc of a given radius, starting on the plane's x-axis
// and sweeping angle (radians) towards its y-axis.
type Arc struct {
	Plane  paramgeom.Plane
	Radius float64
	Angle  float64
}

// NewArc creates an arc in plane.
func NewArc(plane paramgeom.Plane, radius, angle float64) *Arc {
	return &Arc{Plane: plane, Radius: radius, Angle: angle}
}

// DefaultArc is a half circle of radius 2 in the default plane.
func DefaultArc() *Arc {
	return NewArc(paramgeom.DefaultPlane(), 2, math.Pi)
}

// Domain is [0, Angle].
func (arc *Arc) Domain() paramgeom.Domain {
	return paramgeom.NewDomain(0, arc.Angle)
}

// Length is Radius⋅Angle.
func (arc *Arc) Length() float64 {
	return arc.Radius * arc.Angle
}

// PointAt sweeps the arc counter-clockwise in its plane.
func (arc *Arc) PointAt(s float64) r3.Vec {
	sin, cos := math.Sincos(s * arc.Angle)
	return arc.Plane.At(arc.Radius*cos, arc.Radius*sin, 0)
}

func (arc *Arc) VelocityAt(s float64) r3.Vec {
	sin, cos := math.Sincos(s * arc.Angle)
	k := arc.Radius * arc.Angle
	return arc.Plane.Along(-k*sin, k*cos, 0)
}

func (arc *Arc) AccelerationAt(s float64) r3.Vec {
	sin, cos := math.Sincos(s * arc.Angle)
	k := arc.Radius * arc.Angle * arc.Angle
	return arc.Plane.Along(-k*cos, -k*sin, 0)
}
