/*
Package curve deals with parametric curves in 3-D space.

A concrete curve supplies its domain, position, velocity and acceleration
over a normalized parameter s ∈ [0,1]. Everything else, from tangents to
tessellations, is computed by the functions of this package from these
primitives only.

Derivatives are taken with respect to s, not with respect to the curve's
natural parameter; shapes apply the chain rule themselves.

# Caveats

(1) NormalAt is the normalized acceleration, not the textbook principal
normal. Both coincide only for curves moving at constant speed.

(2) CurvatureAt is the magnitude of the acceleration, not ‖v×a‖/‖v‖³.
Clients needing the geometric curvature should use FrenetCurvatureAt.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"errors"

	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer writes to trace with key 'paramgeom.curve'
func tracer() tracing.Trace {
	return tracing.Select("paramgeom.curve")
}

// DefaultDelta is the default sampling resolution: 1/DefaultDelta samples.
const DefaultDelta = 1e-4

var (
	// ErrInvalidLength indicates a non-positive or NaN resampling length.
	ErrInvalidLength = errors.New("resampling length must be positive")
	// ErrInvalidCount indicates a sample count below 2.
	ErrInvalidCount = errors.New("sample count must be at least 2")
)

// Curve is the contract every concrete curve fulfills. s is normalized
// to [0,1]; Domain tells how s maps onto the curve's natural parameter.
// Concrete curves document PointAt only: VelocityAt and AccelerationAt
// are its first and second derivatives with respect to s, not to the
// natural parameter.
type Curve interface {
	Domain() paramgeom.Domain
	PointAt(s float64) r3.Vec
	VelocityAt(s float64) r3.Vec
	AccelerationAt(s float64) r3.Vec
}

// Lengther is implemented by curves with a closed-form length.
type Lengther interface {
	Length() float64
}

// TangentAt returns the normalized velocity at s.
func TangentAt(c Curve, s float64) r3.Vec {
	return r3.Unit(c.VelocityAt(s))
}

// NormalAt returns the normalized acceleration at s. It is undefined (NaN)
// where the acceleration vanishes.
func NormalAt(c Curve, s float64) r3.Vec {
	return r3.Unit(c.AccelerationAt(s))
}

// CurvatureAt returns ‖acceleration(s)‖.
func CurvatureAt(c Curve, s float64) float64 {
	return r3.Norm(c.AccelerationAt(s))
}

// CurvatureRadiusAt returns 1/CurvatureAt(s), which is +Inf on straight
// stretches.
func CurvatureRadiusAt(c Curve, s float64) float64 {
	return 1 / CurvatureAt(c, s)
}

// FrenetCurvatureAt returns the geometric curvature ‖v×a‖/‖v‖³, which does
// not depend on the parametrization.
func FrenetCurvatureAt(c Curve, s float64) float64 {
	v := c.VelocityAt(s)
	a := c.AccelerationAt(s)
	speed := r3.Norm(v)
	return r3.Norm(r3.Cross(v, a)) / (speed * speed * speed)
}

// BinormalAt returns TangentAt(s) × NormalAt(s).
func BinormalAt(c Curve, s float64) r3.Vec {
	return r3.Cross(TangentAt(c, s), NormalAt(c, s))
}

// FrameAt returns the point at s together with tangent, normal and
// binormal. Tangent and normal are normalized independently; the binormal
// is their cross product.
func FrameAt(c Curve, s float64) paramgeom.FrenetFrame {
	p := c.PointAt(s)
	t := r3.Unit(TangentAt(c, s))
	n := r3.Unit(NormalAt(c, s))
	return paramgeom.NewFrenetFrame(p, t, n, r3.Cross(t, n))
}

// DivideByCount returns n points at uniformly spaced parameters
// s.i = i/(n-1).
func DivideByCount(c Curve, n int) ([]r3.Vec, error) {
	if n < 2 {
		return nil, ErrInvalidCount
	}
	points := make([]r3.Vec, n)
	for i := range points {
		points[i] = c.PointAt(float64(i) / float64(n-1))
	}
	return points, nil
}
