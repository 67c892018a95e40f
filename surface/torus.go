package surface

import (
	"math"

	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Torus is a ring torus with tube radius A and ring radius B, centered at
// the plane's origin. u runs around the tube, v around the ring.
type Torus struct {
	Plane paramgeom.Plane
	A, B  float64
}

// NewTorus creates a torus in plane.
func NewTorus(plane paramgeom.Plane, a, b float64) *Torus {
	return &Torus{Plane: plane, A: a, B: b}
}

// DefaultTorus has tube radius 1 and ring radius 3.
func DefaultTorus() *Torus {
	return NewTorus(paramgeom.DefaultPlane(), 1, 3)
}

// Area is 4π²ab.
func (tor *Torus) Area() float64 {
	return 4 * math.Pi * math.Pi * tor.A * tor.B
}

func (tor *Torus) angles(u, v float64) (st, ct, sp, cp float64) {
	st, ct = math.Sincos(2 * math.Pi * u)
	sp, cp = math.Sincos(2 * math.Pi * v)
	return
}

// PointAt takes u around the tube and v around the central axis.
func (tor *Torus) PointAt(u, v float64) r3.Vec {
	st, ct, sp, cp := tor.angles(u, v)
	w := tor.A*ct + tor.B
	return tor.Plane.At(w*cp, w*sp, tor.A*st)
}

func (tor *Torus) DuAt(u, v float64) r3.Vec {
	st, ct, sp, cp := tor.angles(u, v)
	a := 2 * math.Pi * tor.A
	return tor.Plane.Along(-a*st*cp, -a*st*sp, a*ct)
}

func (tor *Torus) DvAt(u, v float64) r3.Vec {
	_, ct, sp, cp := tor.angles(u, v)
	w := 2 * math.Pi * (tor.A*ct + tor.B)
	return tor.Plane.Along(-w*sp, w*cp, 0)
}

func (tor *Torus) DuDuAt(u, v float64) r3.Vec {
	st, ct, sp, cp := tor.angles(u, v)
	a := 4 * math.Pi * math.Pi * tor.A
	return tor.Plane.Along(-a*ct*cp, -a*ct*sp, -a*st)
}

func (tor *Torus) DuDvAt(u, v float64) r3.Vec {
	st, _, sp, cp := tor.angles(u, v)
	a := 4 * math.Pi * math.Pi * tor.A
	return tor.Plane.Along(a*st*sp, -a*st*cp, 0)
}

func (tor *Torus) DvDvAt(u, v float64) r3.Vec {
	_, ct, sp, cp := tor.angles(u, v)
	w := 4 * math.Pi * math.Pi * (tor.A*ct + tor.B)
	return tor.Plane.Along(-w*cp, -w*sp, 0)
}
