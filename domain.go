package paramgeom

import "fmt"

// Domain is a scalar parameter interval. Shapes use it to translate a
// normalized sampling parameter in [0,1] into their natural range (an
// angle, a hyperbolic extent, …).
//
// No ordering is enforced: Start may be greater than End.
type Domain struct {
	start, end float64
}

// NewDomain creates the interval [start, end].
func NewDomain(start, end float64) Domain {
	return Domain{start: start, end: end}
}

// Start returns the image of 0.
func (d Domain) Start() float64 {
	return d.start
}

// End returns the image of 1.
func (d Domain) End() float64 {
	return d.end
}

// Extent is End-Start. It is the derivative of Map and therefore the
// chain-rule factor for anything parametrized over the domain.
func (d Domain) Extent() float64 {
	return d.end - d.start
}

// Map maps t01 ∈ [0,1] linearly onto the domain.
func (d Domain) Map(t01 float64) float64 {
	return (d.end-d.start)*t01 + d.start
}

func (d Domain) String() string {
	return fmt.Sprintf("[%g,%g]", d.start, d.end)
}
