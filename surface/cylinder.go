package surface

import (
	"math"

	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder is an open circular cylinder whose axis is the plane normal.
// u runs around the axis, v along it.
type Cylinder struct {
	Plane  paramgeom.Plane
	Radius float64
	Height float64
}

// NewCylinder creates a cylinder with its base circle in plane.
func NewCylinder(plane paramgeom.Plane, radius, height float64) *Cylinder {
	return &Cylinder{Plane: plane, Radius: radius, Height: height}
}

// DefaultCylinder has radius 2 and height 3. Its base sits at z=1.5 and,
// with the plane normal pointing down, it extends to z=-1.5.
func DefaultCylinder() *Cylinder {
	plane := paramgeom.DefaultPlane()
	plane.Origin = paramgeom.Vec(0, 0, 1.5)
	return NewCylinder(plane, 2, 3)
}

// Area is 2πrh, without caps.
func (cyl *Cylinder) Area() float64 {
	return 2 * math.Pi * cyl.Radius * cyl.Height
}

const cylinderTheta = 2 * math.Pi * (1 - seamDelta)

// PointAt takes u around the axis and v along it.
func (cyl *Cylinder) PointAt(u, v float64) r3.Vec {
	st, ct := math.Sincos(u * cylinderTheta)
	return cyl.Plane.At(cyl.Radius*st, cyl.Radius*ct, cyl.Height*v)
}

func (cyl *Cylinder) DuAt(u, v float64) r3.Vec {
	st, ct := math.Sincos(u * cylinderTheta)
	r := cyl.Radius * cylinderTheta
	return cyl.Plane.Along(r*ct, -r*st, 0)
}

func (cyl *Cylinder) DvAt(u, v float64) r3.Vec {
	return cyl.Plane.Along(0, 0, cyl.Height)
}

func (cyl *Cylinder) DuDuAt(u, v float64) r3.Vec {
	st, ct := math.Sincos(u * cylinderTheta)
	r := cyl.Radius * cylinderTheta * cylinderTheta
	return cyl.Plane.Along(-r*st, -r*ct, 0)
}

func (cyl *Cylinder) DuDvAt(u, v float64) r3.Vec {
	return r3.Vec{}
}

func (cyl *Cylinder) DvDvAt(u, v float64) r3.Vec {
	return r3.Vec{}
}
