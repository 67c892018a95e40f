package curve

import (
	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/paramgeom/internal/workers"
	"gonum.org/v1/gonum/spatial/r3"
)

// Stride is the number of float64 values per vector in tessellation buffers.
const Stride = 3

// Tessellation holds the sampled frames and curvatures of a curve as flat
// buffers, ready to be handed to a renderer. Sample i belongs to
// s = i/(Count-1); vector i occupies [Stride⋅i, Stride⋅i+3) of each vector
// buffer.
//
// A tessellation is owned by the caller and never touched by this package
// after it has been returned.
type Tessellation struct {
	Count      int
	Points     []float64
	Tangents   []float64
	Normals    []float64
	Binormals  []float64
	Curvatures []float64
}

// SampleCount returns the number of samples per axis for a resolution
// delta, i.e. ⌊1/delta⌋. Delta has to be positive; no validation is done
// here beyond mapping negative counts to 0.
func SampleCount(delta float64) int {
	return max(int(1/delta), 0)
}

// Tessellate samples c at count = ⌊1/delta⌋ uniformly spaced parameters
// s.i = i/(count-1) and collects one Frenet frame and one curvature per
// sample.
//
// Samples are evaluated concurrently; the result does not depend on
// scheduling.
func Tessellate(c Curve, delta float64) *Tessellation {
	count := SampleCount(delta)
	tess := &Tessellation{
		Count:      count,
		Points:     make([]float64, Stride*count),
		Tangents:   make([]float64, Stride*count),
		Normals:    make([]float64, Stride*count),
		Binormals:  make([]float64, Stride*count),
		Curvatures: make([]float64, count),
	}
	workers.Range(count, workers.MinChunk, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			s := float64(i) / float64(count-1)
			frame := FrameAt(c, s)
			put(tess.Points, i, frame.Position)
			put(tess.Tangents, i, frame.Tangent)
			put(tess.Normals, i, frame.Normal)
			put(tess.Binormals, i, frame.Binormal)
			tess.Curvatures[i] = CurvatureAt(c, s)
		}
	})
	tracer().Infof("tessellated curve on %v with %d samples", c.Domain(), count)
	return tess
}

// Stride returns the number of values per vector.
func (tess *Tessellation) Stride() int {
	return Stride
}

// Point returns sample point i.
func (tess *Tessellation) Point(i int) r3.Vec {
	return get(tess.Points, i)
}

// Tangent returns the tangent of sample i.
func (tess *Tessellation) Tangent(i int) r3.Vec {
	return get(tess.Tangents, i)
}

// Normal returns the normal of sample i.
func (tess *Tessellation) Normal(i int) r3.Vec {
	return get(tess.Normals, i)
}

// Binormal returns the binormal of sample i.
func (tess *Tessellation) Binormal(i int) r3.Vec {
	return get(tess.Binormals, i)
}

// Frame returns sample i as a Frenet frame.
func (tess *Tessellation) Frame(i int) paramgeom.FrenetFrame {
	return paramgeom.NewFrenetFrame(tess.Point(i), tess.Tangent(i), tess.Normal(i), tess.Binormal(i))
}

func put(buf []float64, i int, v r3.Vec) {
	buf[Stride*i] = v.X
	buf[Stride*i+1] = v.Y
	buf[Stride*i+2] = v.Z
}

func get(buf []float64, i int) r3.Vec {
	return r3.Vec{X: buf[Stride*i], Y: buf[Stride*i+1], Z: buf[Stride*i+2]}
}
