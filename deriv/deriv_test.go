package deriv

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDerivativeOrderZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, math.Sin(0.3), Derivative(math.Sin, 0, 0.3, DefaultStep))
	assert.Equal(t, math.Sin(0.3), Derivative(math.Sin, -1, 0.3, DefaultStep))
}

func TestDerivativeSymmetricDifference(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := func(x float64) float64 { return x * x * x }
	x, d := 2.0, 0.5
	want := (f(x+d) - f(x-d)) / (2 * d)
	assert.InDelta(t, want, Derivative(f, 1, x, d), 1e-12)
	want2 := ((f(x+2*d)-f(x))/(2*d) - (f(x)-f(x-2*d))/(2*d)) / (2 * d)
	assert.InDelta(t, want2, Derivative(f, 2, x, d), 1e-9)
}

func TestDerivativeOfSine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, x := range []float64{-2, -0.5, 0, 0.37, 1, 3} {
		assert.InDelta(t, math.Cos(x), Derivative(math.Sin, 1, x, DefaultStep), 1e-7, "x=%g", x)
		assert.InDelta(t, -math.Sin(x), Derivative(math.Sin, 2, x, DefaultStep), 1e-6, "x=%g", x)
	}
}
