package surface

import (
	"math"

	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Hyperboloid is a hyperboloid of one sheet,
// (A cosh U cos V, B cosh U sin V, C sinh U), with U mapped from the domain
// and V = 2πv.
type Hyperboloid struct {
	Plane   paramgeom.Plane
	A, B, C float64
	Domain  paramgeom.Domain
}

// NewHyperboloid creates a single-leaf hyperboloid around plane's normal.
func NewHyperboloid(plane paramgeom.Plane, a, b, c float64, domain paramgeom.Domain) *Hyperboloid {
	return &Hyperboloid{Plane: plane, A: a, B: b, C: c, Domain: domain}
}

// DefaultHyperboloid has a=b=1, c=2 and U ∈ [-2,2].
func DefaultHyperboloid() *Hyperboloid {
	return NewHyperboloid(paramgeom.DefaultPlane(), 1, 1, 2, paramgeom.NewDomain(-2, 2))
}

func (hyp *Hyperboloid) terms(u, v float64) (sh, ch, sv, cv float64) {
	uu := hyp.Domain.Map(u)
	sh, ch = math.Sinh(uu), math.Cosh(uu)
	sv, cv = math.Sincos(2 * math.Pi * v)
	return
}

// PointAt sweeps v around the axis; u is the hyperbolic parameter.
func (hyp *Hyperboloid) PointAt(u, v float64) r3.Vec {
	sh, ch, sv, cv := hyp.terms(u, v)
	return hyp.Plane.At(hyp.A*ch*cv, hyp.B*ch*sv, hyp.C*sh)
}

func (hyp *Hyperboloid) DuAt(u, v float64) r3.Vec {
	sh, ch, sv, cv := hyp.terms(u, v)
	k := hyp.Domain.Extent()
	return hyp.Plane.Along(k*hyp.A*sh*cv, k*hyp.B*sh*sv, k*hyp.C*ch)
}

func (hyp *Hyperboloid) DvAt(u, v float64) r3.Vec {
	_, ch, sv, cv := hyp.terms(u, v)
	k := 2 * math.Pi
	return hyp.Plane.Along(-k*hyp.A*ch*sv, k*hyp.B*ch*cv, 0)
}

func (hyp *Hyperboloid) DuDuAt(u, v float64) r3.Vec {
	sh, ch, sv, cv := hyp.terms(u, v)
	k := hyp.Domain.Extent()
	k *= k
	return hyp.Plane.Along(k*hyp.A*ch*cv, k*hyp.B*ch*sv, k*hyp.C*sh)
}

func (hyp *Hyperboloid) DuDvAt(u, v float64) r3.Vec {
	sh, _, sv, cv := hyp.terms(u, v)
	k := 2 * math.Pi * hyp.Domain.Extent()
	return hyp.Plane.Along(-k*hyp.A*sh*sv, k*hyp.B*sh*cv, 0)
}

func (hyp *Hyperboloid) DvDvAt(u, v float64) r3.Vec {
	_, ch, sv, cv := hyp.terms(u, v)
	k := 4 * math.Pi * math.Pi
	return hyp.Plane.Along(-k*hyp.A*ch*cv, -k*hyp.B*ch*sv, 0)
}
