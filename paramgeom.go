/*
Package paramgeom implements the value types of a parametric
differential-geometry kernel: parameter domains, embedding planes, and
per-sample snapshots of curve frames and surface curvature.

Curves and surfaces live in sub-packages curve and surface. Shapes supply
closed-form positions and derivatives only; everything else (tangents,
normals, curvature, tessellation) is derived by shared code.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package paramgeom

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer writes to trace with key 'paramgeom'
func tracer() tracing.Trace {
	return tracing.Select("paramgeom")
}

// === Numeric Helpers =======================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Finite is a predicate: is n neither NaN nor ±Inf?
func Finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// FiniteVec is a predicate: are all components of v finite?
func FiniteVec(v r3.Vec) bool {
	return Finite(v.X) && Finite(v.Y) && Finite(v.Z)
}

// Vec is a quick notation for constructing a vector from floats.
func Vec(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

// Origin represents the frequently used constant (0,0,0).
var Origin = Vec(0, 0, 0)

// Equal compares two vectors component-wise, up to Epsilon.
func Equal(v, w r3.Vec) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y) && Is0(v.Z-w.Z)
}
