/*
Package polygon projects curve tessellations into their embedding plane.

A projected tessellation is a simple 2-D polygon, i.e. a single contour.
Contours are stored as github.com/akavel/polyclip-go contours, so clients
may hand them to polyclip for clipping; this package does not clip.

Polygons are built MetaPost-style:

	pg := NullPolygon().Knot(P(0, 0)).Knot(P(1, 3)).Knot(P(3, 0)).Cycle()

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/paramgeom/curve"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to key 'paramgeom.polygon'
func L() tracing.Trace {
	return tracing.Select("paramgeom.polygon")
}

// P is a quick notation for a 2-D point.
func P(x, y float64) polyclip.Point {
	return polyclip.Point{X: x, Y: y}
}

// Polygon is a sequence of knots, optionally closed by a cycle.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon.
func NullPolygon() *Polygon {
	return &Polygon{contour: polyclip.Contour{}}
}

// Knot appends a point.
func (pg *Polygon) Knot(p polyclip.Point) *Polygon {
	pg.contour.Add(p)
	return pg
}

// Cycle closes the polygon. Further knots are still accepted and inserted
// before the closing edge.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is true for closed polygons.
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Box creates a closed axis-aligned rectangle with corners p and q.
func Box(p, q polyclip.Point) *Polygon {
	minx, maxx := math.Min(p.X, q.X), math.Max(p.X, q.X)
	miny, maxy := math.Min(p.Y, q.Y), math.Max(p.Y, q.Y)
	return NullPolygon().Knot(P(minx, miny)).Knot(P(maxx, miny)).
		Knot(P(maxx, maxy)).Knot(P(minx, maxy)).Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) polyclip.Point {
	return pg.contour[i]
}

// Contour returns the knots as a polyclip contour. The contour is shared
// with the polygon.
func (pg *Polygon) Contour() polyclip.Contour {
	return pg.contour
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing all
// knots.
func (pg *Polygon) BoundingBox() polyclip.Rectangle {
	return pg.contour.BoundingBox()
}

// Contains reports whether p is inside the closed polygon (even-odd rule).
// Open polygons contain nothing.
func (pg *Polygon) Contains(p polyclip.Point) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(p)
}

// Area returns the signed area of a closed polygon (shoelace formula),
// positive for counter-clockwise knots. Open polygons have area 0.
func (pg *Polygon) Area() float64 {
	if !pg.cycle {
		return 0
	}
	a := 0.0
	n := pg.N()
	for i := 0; i < n; i++ {
		p, q := pg.contour[i], pg.contour[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// AsString returns a MetaPost-like notation of a polygon.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.contour {
		if i > 0 {
			b.WriteString("--")
		}
		fmt.Fprintf(&b, "(%g,%g)", p.X, p.Y)
	}
	if pg.cycle {
		b.WriteString("--cycle")
	}
	return b.String()
}

// Outline projects the sample points of a curve tessellation into plane
// and closes the result. Coordinates are taken with respect to the plane's
// x- and y-axis; any offset along the normal is dropped.
func Outline(tess *curve.Tessellation, plane paramgeom.Plane) *Polygon {
	pg := NullPolygon()
	for i := 0; i < tess.Count; i++ {
		x, y := plane.Local(tess.Point(i))
		pg.Knot(P(x, y))
	}
	L().Debugf("outline of %d samples in %v", tess.Count, plane)
	return pg.Cycle()
}
