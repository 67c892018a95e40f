package surface

import (
	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Paraboloid is the graph (A⋅U, B⋅V, U² + Sign⋅V²) over the domain squared.
// Sign +1 gives an elliptic paraboloid, -1 a hyperbolic one (saddle).
type Paraboloid struct {
	Plane  paramgeom.Plane
	A, B   float64
	Sign   float64
	Domain paramgeom.Domain
}

// NewEllipticParaboloid creates the bowl (aU, bV, U²+V²).
func NewEllipticParaboloid(plane paramgeom.Plane, a, b float64, domain paramgeom.Domain) *Paraboloid {
	return &Paraboloid{Plane: plane, A: a, B: b, Sign: 1, Domain: domain}
}

// NewHyperbolicParaboloid creates the saddle (aU, bV, U²-V²).
func NewHyperbolicParaboloid(plane paramgeom.Plane, a, b float64, domain paramgeom.Domain) *Paraboloid {
	return &Paraboloid{Plane: plane, A: a, B: b, Sign: -1, Domain: domain}
}

// DefaultEllipticParaboloid has a=b=2 over [-2,2]² and its vertex at z=1,
// opening downwards along the default plane's normal.
func DefaultEllipticParaboloid() *Paraboloid {
	plane := paramgeom.DefaultPlane()
	plane.Origin = paramgeom.Vec(0, 0, 1)
	return NewEllipticParaboloid(plane, 2, 2, paramgeom.NewDomain(-2, 2))
}

// DefaultHyperbolicParaboloid has a=b=2 over [-2,2]².
func DefaultHyperbolicParaboloid() *Paraboloid {
	return NewHyperbolicParaboloid(paramgeom.DefaultPlane(), 2, 2, paramgeom.NewDomain(-2, 2))
}

// PointAt lifts the domain point by the quadric form.
func (par *Paraboloid) PointAt(u, v float64) r3.Vec {
	uu, vv := par.Domain.Map(u), par.Domain.Map(v)
	return par.Plane.At(par.A*uu, par.B*vv, uu*uu+par.Sign*vv*vv)
}

func (par *Paraboloid) DuAt(u, v float64) r3.Vec {
	k := par.Domain.Extent()
	return par.Plane.Along(k*par.A, 0, 2*k*par.Domain.Map(u))
}

func (par *Paraboloid) DvAt(u, v float64) r3.Vec {
	k := par.Domain.Extent()
	return par.Plane.Along(0, k*par.B, 2*k*par.Sign*par.Domain.Map(v))
}

func (par *Paraboloid) DuDuAt(u, v float64) r3.Vec {
	k := par.Domain.Extent()
	return par.Plane.Along(0, 0, 2*k*k)
}

func (par *Paraboloid) DuDvAt(u, v float64) r3.Vec {
	return r3.Vec{}
}

func (par *Paraboloid) DvDvAt(u, v float64) r3.Vec {
	k := par.Domain.Extent()
	return par.Plane.Along(0, 0, 2*k*k*par.Sign)
}
