package curve

import (
	"math"

	"github.com/npillmayer/paramgeom"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

// Clothoid is an Euler spiral
//
//	c(t) = ∫₀ᵗ ( cos(A⋅τ²/2), sin(A⋅τ²/2) ) dτ
//
// for t ∈ [Start, End], embedded in a plane. Its curvature grows linearly
// with t. In t the spiral moves at unit speed.
type Clothoid struct {
	Plane      paramgeom.Plane
	A          float64
	Start, End float64
}

// NewClothoid creates an Euler spiral in plane.
func NewClothoid(plane paramgeom.Plane, a, start, end float64) *Clothoid {
	return &Clothoid{Plane: plane, A: a, Start: start, End: end}
}

// DefaultClothoid is the double spiral for t ∈ [-2π, 2π] with A = 1.
func DefaultClothoid() *Clothoid {
	return NewClothoid(paramgeom.DefaultPlane(), 1, -2*math.Pi, 2*math.Pi)
}

// Domain is [Start, End].
func (cl *Clothoid) Domain() paramgeom.Domain {
	return paramgeom.NewDomain(cl.Start, cl.End)
}

// Length is |End-Start|, as the spiral is parametrized by arc length.
func (cl *Clothoid) Length() float64 {
	return math.Abs(cl.End - cl.Start)
}

// PointAt integrates from 0 to t = Start + s⋅(End-Start).
func (cl *Clothoid) PointAt(s float64) r3.Vec {
	x, y := fresnel(cl.A, cl.Domain().Map(s))
	return cl.Plane.At(x, y, 0)
}

func (cl *Clothoid) VelocityAt(s float64) r3.Vec {
	d := cl.Domain()
	t, k := d.Map(s), d.Extent()
	sin, cos := math.Sincos(cl.A * t * t / 2)
	return cl.Plane.Along(k*cos, k*sin, 0)
}

func (cl *Clothoid) AccelerationAt(s float64) r3.Vec {
	d := cl.Domain()
	t, k := d.Map(s), d.Extent()
	sin, cos := math.Sincos(cl.A * t * t / 2)
	w := k * k * cl.A * t
	return cl.Plane.Along(-w*sin, w*cos, 0)
}

// === Fresnel integrals =====================================================

// Nodes per panel of the composite Gauss-Legendre rule.
const fresnelNodes = 32

// Gauss-Legendre nodes and weights on [0,1].
var fresnelX, fresnelW = func() ([]float64, []float64) {
	x := make([]float64, fresnelNodes)
	w := make([]float64, fresnelNodes)
	quad.Legendre{}.FixedLocations(x, w, 0, 1)
	return x, w
}()

// fresnel returns ∫₀ᵗ (cos(aτ²/2), sin(aτ²/2)) dτ. The integrands are even,
// so the integrals are odd in t. The interval is split into panels of
// roughly half an oscillation each.
func fresnel(a, t float64) (float64, float64) {
	sign := 1.0
	if t < 0 {
		sign, t = -1, -t
	}
	panels := 1 + int(math.Abs(a)*t*t/(2*math.Pi))
	h := t / float64(panels)
	var x, y float64
	for p := 0; p < panels; p++ {
		t0 := float64(p) * h
		for i, xi := range fresnelX {
			tau := t0 + h*xi
			sin, cos := math.Sincos(a * tau * tau / 2)
			x += fresnelW[i] * h * cos
			y += fresnelW[i] * h * sin
		}
	}
	return sign * x, sign * y
}
