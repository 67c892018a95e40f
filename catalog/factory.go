package catalog

import (
	"errors"
	"fmt"

	"github.com/npillmayer/paramgeom/curve"
	"github.com/npillmayer/paramgeom/surface"
)

var (
	// ErrNotACurve is returned by NewCurve for surface kinds.
	ErrNotACurve = errors.New("shape kind is not a curve")
	// ErrNotASurface is returned by NewSurface for curve kinds.
	ErrNotASurface = errors.New("shape kind is not a surface")
)

// parameter names per kind
var paramNames = map[Kind][]string{
	Arc:                  {"radius", "angle"},
	EllipseArc:           {"a", "b", "angle"},
	Clothoid:             {"a", "start", "end"},
	Expression:           {"step"},
	Sphere:               {"radius"},
	Cylinder:             {"radius", "height"},
	Torus:                {"a", "b"},
	Mobius:               {},
	Helicoid:             {"c"},
	EllipticParaboloid:   {"a", "b"},
	HyperbolicParaboloid: {"a", "b"},
	Hyperboloid:          {"a", "b", "c"},
}

// Params lists the parameter names a kind accepts.
func Params(kind Kind) []string {
	return append([]string(nil), paramNames[kind]...)
}

func hasDomain(kind Kind) bool {
	switch kind {
	case Expression, Helicoid, EllipticParaboloid, HyperbolicParaboloid, Hyperboloid:
		return true
	}
	return false
}

// NewCurve builds the curve a request asks for.
func NewCurve(req *Request) (curve.Curve, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.Kind.IsCurve() {
		return nil, fmt.Errorf("%w: %v", ErrNotACurve, req.Kind)
	}
	tracer().Debugf("building %v", req.Kind)
	switch req.Kind {
	case Arc:
		d := curve.DefaultArc()
		return curve.NewArc(req.plane(d.Plane), req.param("radius", d.Radius),
			req.param("angle", d.Angle)), nil
	case EllipseArc:
		d := curve.DefaultEllipseArc()
		return curve.NewEllipseArc(req.plane(d.Plane), req.param("a", d.A),
			req.param("b", d.B), req.param("angle", d.Angle)), nil
	case Clothoid:
		d := curve.DefaultClothoid()
		return curve.NewClothoid(req.plane(d.Plane), req.param("a", d.A),
			req.param("start", d.Start), req.param("end", d.End)), nil
	}
	d := curve.DefaultExpression()
	formula := Formula{X: d.X, Y: d.Y, Z: d.Z}
	if req.Formula != nil {
		formula = *req.Formula
	}
	e, err := curve.NewExpression(formula.X, formula.Y, formula.Z, req.domain(d.Domain()))
	if err != nil {
		tracer().Errorf("cannot compile expression curve: %v", err)
		return nil, err
	}
	e.Step = req.param("step", e.Step)
	return e, nil
}

// NewSurface builds the surface a request asks for.
func NewSurface(req *Request) (surface.Surface, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.Kind.IsSurface() {
		return nil, fmt.Errorf("%w: %v", ErrNotASurface, req.Kind)
	}
	tracer().Debugf("building %v", req.Kind)
	switch req.Kind {
	case Sphere:
		d := surface.DefaultSphere()
		return surface.NewSphere(req.plane(d.Plane), req.param("radius", d.Radius)), nil
	case Cylinder:
		d := surface.DefaultCylinder()
		return surface.NewCylinder(req.plane(d.Plane), req.param("radius", d.Radius),
			req.param("height", d.Height)), nil
	case Torus:
		d := surface.DefaultTorus()
		return surface.NewTorus(req.plane(d.Plane), req.param("a", d.A), req.param("b", d.B)), nil
	case Mobius:
		d := surface.DefaultMobius()
		return surface.NewMobius(req.plane(d.Plane)), nil
	case Helicoid:
		d := surface.DefaultHelicoid()
		return surface.NewHelicoid(req.plane(d.Plane), req.param("c", d.C),
			req.domain(d.Domain)), nil
	case EllipticParaboloid:
		d := surface.DefaultEllipticParaboloid()
		return surface.NewEllipticParaboloid(req.plane(d.Plane), req.param("a", d.A),
			req.param("b", d.B), req.domain(d.Domain)), nil
	case HyperbolicParaboloid:
		d := surface.DefaultHyperbolicParaboloid()
		return surface.NewHyperbolicParaboloid(req.plane(d.Plane), req.param("a", d.A),
			req.param("b", d.B), req.domain(d.Domain)), nil
	}
	d := surface.DefaultHyperboloid()
	return surface.NewHyperboloid(req.plane(d.Plane), req.param("a", d.A),
		req.param("b", d.B), req.param("c", d.C), req.domain(d.Domain)), nil
}
