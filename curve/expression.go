package curve

import (
	"fmt"

	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/paramgeom/deriv"
	"github.com/npillmayer/paramgeom/expr"
	"gonum.org/v1/gonum/spatial/r3"
)

// Variable is the name of the formula variable of expression curves.
const Variable = "t"

// Expression is a curve given by three coordinate formulas over the
// variable t ∈ Domain. Velocity and acceleration are approximated by
// symmetric differences with step Step (in t).
type Expression struct {
	X, Y, Z string // formula texts
	Step    float64
	domain  paramgeom.Domain
	fx      expr.Func
	fy      expr.Func
	fz      expr.Func
}

// NewExpression compiles the coordinate formulas x, y, z over t ∈ domain.
func NewExpression(x, y, z string, domain paramgeom.Domain) (*Expression, error) {
	e := &Expression{X: x, Y: y, Z: z, Step: deriv.DefaultStep, domain: domain}
	var err error
	if e.fx, err = expr.Compile(x, Variable); err != nil {
		return nil, fmt.Errorf("x-coordinate: %w", err)
	}
	if e.fy, err = expr.Compile(y, Variable); err != nil {
		return nil, fmt.Errorf("y-coordinate: %w", err)
	}
	if e.fz, err = expr.Compile(z, Variable); err != nil {
		return nil, fmt.Errorf("z-coordinate: %w", err)
	}
	tracer().Debugf("expression curve (%s, %s, %s) over %v", x, y, z, domain)
	return e, nil
}

// DefaultExpression is the helix (cos t, sin t, t), t ∈ [0, 10].
func DefaultExpression() *Expression {
	e, err := NewExpression("math.Cos(t)", "math.Sin(t)", "t", paramgeom.NewDomain(0, 10))
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Expression) Domain() paramgeom.Domain {
	return e.domain
}

// PointAt evaluates the compiled formulas.
func (e *Expression) PointAt(s float64) r3.Vec {
	t := e.domain.Map(s)
	return r3.Vec{X: e.fx(t), Y: e.fy(t), Z: e.fz(t)}
}

func (e *Expression) VelocityAt(s float64) r3.Vec {
	return r3.Scale(e.domain.Extent(), e.derivative(1, s))
}

func (e *Expression) AccelerationAt(s float64) r3.Vec {
	k := e.domain.Extent()
	return r3.Scale(k*k, e.derivative(2, s))
}

// n-th derivative with respect to t.
func (e *Expression) derivative(n int, s float64) r3.Vec {
	t := e.domain.Map(s)
	return r3.Vec{
		X: deriv.Derivative(e.fx, n, t, e.Step),
		Y: deriv.Derivative(e.fy, n, t, e.Step),
		Z: deriv.Derivative(e.fz, n, t, e.Step),
	}
}

func (e *Expression) String() string {
	return fmt.Sprintf("(%s, %s, %s) for %s ∈ %v", e.X, e.Y, e.Z, Variable, e.domain)
}
