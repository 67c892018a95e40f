package curve

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

// Length returns the closed-form length of c if c implements Lengther, and
// IntegralLength(c, DefaultDelta) otherwise.
func Length(c Curve) float64 {
	if l, ok := c.(Lengther); ok {
		return l.Length()
	}
	return IntegralLength(c, DefaultDelta)
}

// IntegralLength approximates the length of c by the polyline through
// c(i⋅delta), i = 0…⌊1/delta⌋. Accuracy improves as delta → 0.
func IntegralLength(c Curve, delta float64) float64 {
	steps := int(1 / delta)
	l := 0.0
	prev := c.PointAt(0)
	for i := 1; i <= steps; i++ {
		cur := c.PointAt(float64(i) * delta)
		l += r3.Norm(r3.Sub(cur, prev))
		prev = cur
	}
	return l
}

// SpeedLength integrates ‖velocity‖ over [0,1] with an n-point
// Gauss-Legendre rule. For smooth curves it converges much faster than
// IntegralLength.
func SpeedLength(c Curve, n int) float64 {
	speed := func(s float64) float64 {
		return r3.Norm(c.VelocityAt(s))
	}
	return quad.Fixed(speed, 0, 1, n, nil, 0)
}

// === Arc-length parametrization ===========================================

// LengthTable maps cumulative polyline length to curve parameter. It is
// the inverse of the (monotone) function s ↦ length of c on [0,s].
type LengthTable struct {
	m     *treemap.Map // cumulative length → s
	total float64
}

// NewLengthTable samples c at ⌊1/delta⌋ segments and records the
// cumulative length at every sample.
func NewLengthTable(c Curve, delta float64) *LengthTable {
	steps := max(int(1/delta), 1)
	table := &LengthTable{m: treemap.NewWith(utils.Float64Comparator)}
	table.m.Put(0.0, 0.0)
	prev := c.PointAt(0)
	for i := 1; i <= steps; i++ {
		s := float64(i) / float64(steps)
		cur := c.PointAt(s)
		table.total += r3.Norm(r3.Sub(cur, prev))
		table.m.Put(table.total, s) // zero-length segments keep the later s
		prev = cur
	}
	tracer().Debugf("length table: %d segments, total length %.6g", steps, table.total)
	return table
}

// Total returns the length of the sampled polyline.
func (table *LengthTable) Total() float64 {
	return table.total
}

// ParameterAt returns the parameter s at which the curve has run through
// length l, interpolating linearly between table entries. Lengths outside
// [0, Total] are clamped.
func (table *LengthTable) ParameterAt(l float64) float64 {
	if l <= 0 {
		return 0
	}
	if l >= table.total {
		return 1
	}
	lk, lv := table.m.Floor(l)
	hk, hv := table.m.Ceiling(l)
	if lk == nil {
		return 0
	}
	if hk == nil {
		return 1
	}
	l0, s0 := lk.(float64), lv.(float64)
	l1, s1 := hk.(float64), hv.(float64)
	if l1 == l0 {
		return s0
	}
	return s0 + (s1-s0)*(l-l0)/(l1-l0)
}

// ParameterAtLength returns the parameter s at which c has run through
// length l, measured along a polyline with DefaultDelta resolution.
func ParameterAtLength(c Curve, l float64) float64 {
	return NewLengthTable(c, DefaultDelta).ParameterAt(l)
}

// DivideByLength returns the points of c at arc lengths 0, length,
// 2⋅length, … up to the total length of c. Consecutive points are
// length apart along the curve (not as the crow flies).
//
// length may not be shorter than a segment of the underlying length table,
// i.e. the result has at most 1/DefaultDelta + 1 points.
func DivideByLength(c Curve, length float64) ([]r3.Vec, error) {
	if !(length > 0) || math.IsInf(length, 0) {
		tracer().Errorf("cannot divide curve by length %g", length)
		return nil, fmt.Errorf("%w: %g", ErrInvalidLength, length)
	}
	table := NewLengthTable(c, DefaultDelta)
	ratio := table.Total() / length
	if ratio > 1/DefaultDelta {
		tracer().Errorf("cannot divide curve of length %g by %g", table.Total(), length)
		return nil, fmt.Errorf("%w: %g is below the resolution of %g", ErrInvalidLength,
			length, table.Total()*DefaultDelta)
	}
	n := int(math.Floor(ratio+1e-9)) + 1
	points := make([]r3.Vec, n)
	for k := range points {
		points[k] = c.PointAt(table.ParameterAt(float64(k) * length))
	}
	return points, nil
}
