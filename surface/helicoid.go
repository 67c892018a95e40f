package surface

import (
	"math"

	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Helicoid is the ruled surface (U cos V, U sin V, C⋅V) with both U and V
// mapped from the domain.
type Helicoid struct {
	Plane  paramgeom.Plane
	C      float64
	Domain paramgeom.Domain
}

// NewHelicoid creates a helicoid with pitch c.
func NewHelicoid(plane paramgeom.Plane, c float64, domain paramgeom.Domain) *Helicoid {
	return &Helicoid{Plane: plane, C: c, Domain: domain}
}

// DefaultHelicoid has c=2 over [-2,2]².
func DefaultHelicoid() *Helicoid {
	return NewHelicoid(paramgeom.DefaultPlane(), 2, paramgeom.NewDomain(-2, 2))
}

// PointAt maps u and v linearly onto the domain.
func (hel *Helicoid) PointAt(u, v float64) r3.Vec {
	uu, vv := hel.Domain.Map(u), hel.Domain.Map(v)
	sin, cos := math.Sincos(vv)
	return hel.Plane.At(uu*cos, uu*sin, hel.C*vv)
}

func (hel *Helicoid) DuAt(u, v float64) r3.Vec {
	k := hel.Domain.Extent()
	sin, cos := math.Sincos(hel.Domain.Map(v))
	return hel.Plane.Along(k*cos, k*sin, 0)
}

func (hel *Helicoid) DvAt(u, v float64) r3.Vec {
	k := hel.Domain.Extent()
	uu := hel.Domain.Map(u)
	sin, cos := math.Sincos(hel.Domain.Map(v))
	return hel.Plane.Along(-k*uu*sin, k*uu*cos, k*hel.C)
}

func (hel *Helicoid) DuDuAt(u, v float64) r3.Vec {
	return r3.Vec{}
}

func (hel *Helicoid) DuDvAt(u, v float64) r3.Vec {
	k := hel.Domain.Extent()
	sin, cos := math.Sincos(hel.Domain.Map(v))
	return hel.Plane.Along(-k*k*sin, k*k*cos, 0)
}

func (hel *Helicoid) DvDvAt(u, v float64) r3.Vec {
	k := hel.Domain.Extent()
	uu := hel.Domain.Map(u)
	sin, cos := math.Sincos(hel.Domain.Map(v))
	return hel.Plane.Along(-k*k*uu*cos, -k*k*uu*sin, 0)
}
