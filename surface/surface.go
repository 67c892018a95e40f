/*
Package surface deals with parametric surfaces in 3-D space.

A concrete surface supplies its position and the five partial derivatives
∂u, ∂v, ∂u∂u, ∂u∂v, ∂v∂v over normalized parameters (u,v) ∈ [0,1]². The
functions of this package derive normals, tangent planes, Gaussian and
mean curvature, area elements and triangle meshes from these primitives.

# Caveats

(1) NormalAt is the cross product of the *normalized* partials. It has unit
length only where ∂u and ∂v are orthogonal.

(2) CurvatureAt computes the first fundamental form from the raw partials,
but the second fundamental form against NormalAt. Its mean curvature is
(E⋅N + G⋅L - 2F⋅M) / 2 ⋅ (E⋅G - F²), i.e. multiplied by, not divided by,
(E⋅G - F²). Tessellations carry exactly these values. GeometricCurvatureAt
implements the textbook formulas.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package surface

import (
	"errors"
	"math"

	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer writes to trace with key 'paramgeom.surface'
func tracer() tracing.Trace {
	return tracing.Select("paramgeom.surface")
}

// DefaultDelta is the default sampling resolution: 1/DefaultDelta samples
// per axis.
const DefaultDelta = 1e-4

// Periodic surfaces keep their angular parameter this far off the seam,
// where the derivative formulas degenerate.
const seamDelta = 1e-8

// ErrAreaUnsupported is returned by Area for surfaces without a closed-form
// area. It is a static property of the surface type; retrying is futile.
var ErrAreaUnsupported = errors.New("surface has no closed-form area")

// Surface is the contract every concrete surface fulfills. u and v are
// normalized to [0,1]; DuAt through DvDvAt are the partial derivatives of
// PointAt with respect to them. Concrete surfaces document PointAt only.
type Surface interface {
	PointAt(u, v float64) r3.Vec
	DuAt(u, v float64) r3.Vec
	DvAt(u, v float64) r3.Vec
	DuDuAt(u, v float64) r3.Vec
	DuDvAt(u, v float64) r3.Vec
	DvDvAt(u, v float64) r3.Vec
}

// Areaer is implemented by surfaces with a closed-form area.
type Areaer interface {
	Area() float64
}

// Area returns the closed-form area of s, or ErrAreaUnsupported.
func Area(s Surface) (float64, error) {
	if a, ok := s.(Areaer); ok {
		return a.Area(), nil
	}
	return 0, ErrAreaUnsupported
}

// NumericArea sums area elements over an n×n midpoint grid.
func NumericArea(s Surface, n int) float64 {
	h := 1 / float64(n)
	area := 0.0
	for i := 0; i < n; i++ {
		u := (float64(i) + 0.5) * h
		for j := 0; j < n; j++ {
			area += AreaElementAt(s, u, (float64(j)+0.5)*h, h, h)
		}
	}
	return area
}

// DerivativesAt returns the normalized partials ∂u and ∂v.
func DerivativesAt(s Surface, u, v float64) (r3.Vec, r3.Vec) {
	return r3.Unit(s.DuAt(u, v)), r3.Unit(s.DvAt(u, v))
}

// NormalAt returns unit(∂u) × unit(∂v).
func NormalAt(s Surface, u, v float64) r3.Vec {
	x, y := DerivativesAt(s, u, v)
	return r3.Cross(x, y)
}

// TangentPlaneAt returns the plane at s(u,v) spanned by the normalized
// partials, with NormalAt as its normal.
func TangentPlaneAt(s Surface, u, v float64) paramgeom.Plane {
	x, y := DerivativesAt(s, u, v)
	return paramgeom.NewPlane(s.PointAt(u, v), x, y, r3.Cross(x, y))
}

// fundamental forms, with n as the normal for the second one
func forms(s Surface, u, v float64, n r3.Vec) (e, f, g, l, m, nn float64) {
	du, dv := s.DuAt(u, v), s.DvAt(u, v)
	e, f, g = r3.Dot(du, du), r3.Dot(du, dv), r3.Dot(dv, dv)
	l = r3.Dot(s.DuDuAt(u, v), n)
	m = r3.Dot(s.DuDvAt(u, v), n)
	nn = r3.Dot(s.DvDvAt(u, v), n)
	return
}

// CurvatureAt returns point, normal, Gaussian and mean curvature at (u,v).
// See the package caveats for the exact formulas.
func CurvatureAt(s Surface, u, v float64) paramgeom.SurfaceCurvature {
	normal := NormalAt(s, u, v)
	e, f, g, l, m, n := forms(s, u, v, normal)
	return paramgeom.SurfaceCurvature{
		Point:    s.PointAt(u, v),
		U:        u,
		V:        v,
		Normal:   normal,
		Gaussian: (l*n - m*m) / (e*g - f*f),
		Mean:     (e*n + g*l - 2*f*m) / 2 * (e*g - f*f),
	}
}

// GeometricCurvatureAt returns curvature by the textbook formulas
//
//	K = (LN - M²) / (EG - F²)    H = (EN + GL - 2FM) / 2(EG - F²)
//
// with the second fundamental form taken against unit(∂u × ∂v).
func GeometricCurvatureAt(s Surface, u, v float64) paramgeom.SurfaceCurvature {
	normal := r3.Unit(r3.Cross(s.DuAt(u, v), s.DvAt(u, v)))
	e, f, g, l, m, n := forms(s, u, v, normal)
	det := e*g - f*f
	return paramgeom.SurfaceCurvature{
		Point:    s.PointAt(u, v),
		U:        u,
		V:        v,
		Normal:   normal,
		Gaussian: (l*n - m*m) / det,
		Mean:     (e*n + g*l - 2*f*m) / (2 * det),
	}
}

// AreaElementAt returns √(EG - F²)⋅Δu⋅Δv from the raw partials.
func AreaElementAt(s Surface, u, v, deltaU, deltaV float64) float64 {
	du, dv := s.DuAt(u, v), s.DvAt(u, v)
	e, f, g := r3.Dot(du, du), r3.Dot(du, dv), r3.Dot(dv, dv)
	return math.Sqrt(e*g-f*f) * deltaU * deltaV
}
