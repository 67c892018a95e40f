/*
Package deriv provides a generic finite-difference primitive for scalar
functions of one variable.

Curves driven by textual formulas have no analytic derivatives; they
approximate velocity and acceleration with Derivative.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package deriv

import "gonum.org/v1/gonum/diff/fd"

// DefaultStep is the step size used by formula-driven curves.
const DefaultStep = 1e-4

// Derivative approximates the n-th derivative of f at x by recursively
// applying the symmetric difference
//
//	(g(x+d) - g(x-d)) / 2d
//
// n times, with g the (n-1)-th approximation. For n ≤ 0 it returns f(x).
// There is no bounds checking; the recursion depth equals n and the number
// of evaluations of f is 2ⁿ.
func Derivative(f func(float64) float64, n int, x, step float64) float64 {
	if n <= 0 {
		return f(x)
	}
	g := f
	if n > 1 {
		g = func(y float64) float64 {
			return Derivative(f, n-1, y, step)
		}
	}
	return fd.Derivative(g, x, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
}
