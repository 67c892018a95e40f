package surface

import (
	"math"

	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere is a sphere around the plane's origin. u runs from pole to pole
// along the plane normal, v once around it.
type Sphere struct {
	Plane  paramgeom.Plane
	Radius float64
}

// NewSphere creates a sphere centered at plane's origin.
func NewSphere(plane paramgeom.Plane, radius float64) *Sphere {
	return &Sphere{Plane: plane, Radius: radius}
}

// DefaultSphere has radius 2 and sits in the default plane.
func DefaultSphere() *Sphere {
	return NewSphere(paramgeom.DefaultPlane(), 2)
}

// Area is 4πr².
func (sph *Sphere) Area() float64 {
	return 4 * math.Pi * sph.Radius * sph.Radius
}

// Polar angle θ ∈ (0,π) and azimuth φ ∈ [0,2π), both kept off the seam.
const (
	sphereTheta = math.Pi * (1 - 2*seamDelta)
	spherePhi   = 2 * math.Pi * (1 - seamDelta)
)

func (sph *Sphere) angles(u, v float64) (st, ct, sp, cp float64) {
	st, ct = math.Sincos(u*sphereTheta + seamDelta)
	sp, cp = math.Sincos(v * spherePhi)
	return
}

// PointAt takes u as polar angle and v as azimuth.
func (sph *Sphere) PointAt(u, v float64) r3.Vec {
	st, ct, sphi, cphi := sph.angles(u, v)
	r := sph.Radius
	return sph.Plane.At(r*st*cphi, r*st*sphi, r*ct)
}

func (sph *Sphere) DuAt(u, v float64) r3.Vec {
	st, ct, sphi, cphi := sph.angles(u, v)
	r := sph.Radius * sphereTheta
	return sph.Plane.Along(r*ct*cphi, r*ct*sphi, -r*st)
}

func (sph *Sphere) DvAt(u, v float64) r3.Vec {
	st, _, sphi, cphi := sph.angles(u, v)
	r := sph.Radius * spherePhi
	return sph.Plane.Along(-r*st*sphi, r*st*cphi, 0)
}

func (sph *Sphere) DuDuAt(u, v float64) r3.Vec {
	st, ct, sphi, cphi := sph.angles(u, v)
	r := sph.Radius * sphereTheta * sphereTheta
	return sph.Plane.Along(-r*st*cphi, -r*st*sphi, -r*ct)
}

func (sph *Sphere) DuDvAt(u, v float64) r3.Vec {
	_, ct, sphi, cphi := sph.angles(u, v)
	r := sph.Radius * sphereTheta * spherePhi
	return sph.Plane.Along(-r*ct*sphi, r*ct*cphi, 0)
}

func (sph *Sphere) DvDvAt(u, v float64) r3.Vec {
	st, _, sphi, cphi := sph.angles(u, v)
	r := sph.Radius * spherePhi * spherePhi
	return sph.Plane.Along(-r*st*cphi, -r*st*sphi, 0)
}
