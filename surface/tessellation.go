package surface

import (
	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/paramgeom/internal/workers"
	"gonum.org/v1/gonum/spatial/r3"
)

// Stride is the number of float64 values per vector in tessellation buffers.
const Stride = 3

// Tessellation is a triangulated rows×columns sample grid of a surface.
// Sample (row, col) lives at flat index row⋅Columns+col, with u varying by
// row and v by column. Indices holds vertex triples, two triangles per grid
// cell.
//
// A tessellation is owned by the caller and never touched by this package
// after it has been returned.
type Tessellation struct {
	Rows, Columns int
	Points        []float64
	Normals       []float64
	Gaussian      []float64
	Mean          []float64
	Indices       []uint32
}

// MaxCount is the largest per-axis sample count whose grid vertices can
// still be addressed by uint32 indices (MaxCount² = 2³²).
const MaxCount = 1 << 16

// IndicesFit reports whether a count×count grid can be indexed by uint32.
func IndicesFit(count int) bool {
	return count <= MaxCount
}

// SampleCount returns the number of samples per axis for a resolution
// delta, i.e. ⌊1/delta⌋. Delta has to be positive; no validation is done
// here beyond mapping negative counts to 0.
func SampleCount(delta float64) int {
	return max(int(1/delta), 0)
}

// Tessellate samples s on a count×count grid, count = ⌊1/delta⌋, at
// u.i = v.i = i/(count-1). Every grid cell with upper-left vertex
// j = row⋅count+col and lower-left vertex k = j+count is split into the
// triangles (j, j+1, k) and (k+1, k, j+1).
//
// Rows are evaluated concurrently; the result does not depend on
// scheduling.
//
// Counts above MaxCount make indices wrap around. Tessellate traces an
// error in that case but does not refuse.
func Tessellate(s Surface, delta float64) *Tessellation {
	count := SampleCount(delta)
	if !IndicesFit(count) {
		tracer().Errorf("%d×%d samples overflow uint32 indices", count, count)
	}
	cells := max(count-1, 0)
	tess := &Tessellation{
		Rows:     count,
		Columns:  count,
		Points:   make([]float64, Stride*count*count),
		Normals:  make([]float64, Stride*count*count),
		Gaussian: make([]float64, count*count),
		Mean:     make([]float64, count*count),
		Indices:  make([]uint32, 6*cells*cells),
	}
	params := make([]float64, count)
	for i := range params {
		params[i] = float64(i) / float64(count-1)
	}
	workers.Range(count, workers.Grain(count), func(lo, hi int) {
		for row := lo; row < hi; row++ {
			tess.sampleRow(s, row, params)
		}
	})
	tracer().Infof("tessellated surface with %d×%d samples, %d triangles", count, count, len(tess.Indices)/3)
	return tess
}

func (tess *Tessellation) sampleRow(s Surface, row int, params []float64) {
	count := tess.Columns
	u := params[row]
	for col, v := range params {
		j := row*count + col
		c := CurvatureAt(s, u, v)
		put(tess.Points, j, c.Point)
		put(tess.Normals, j, c.Normal)
		tess.Gaussian[j] = c.Gaussian
		tess.Mean[j] = c.Mean
		if row < count-1 && col < count-1 {
			k := j + count // next row
			x := 6 * (row*(count-1) + col)
			tess.Indices[x+0] = uint32(j)
			tess.Indices[x+1] = uint32(j + 1)
			tess.Indices[x+2] = uint32(k)
			tess.Indices[x+3] = uint32(k + 1)
			tess.Indices[x+4] = uint32(k)
			tess.Indices[x+5] = uint32(j + 1)
		}
	}
}

// Stride returns the number of values per vector.
func (tess *Tessellation) Stride() int {
	return Stride
}

// PointsCount returns Rows⋅Columns.
func (tess *Tessellation) PointsCount() int {
	return tess.Rows * tess.Columns
}

// Point returns the sample point at flat index i.
func (tess *Tessellation) Point(i int) r3.Vec {
	return get(tess.Points, i)
}

// Normal returns the normal at flat index i.
func (tess *Tessellation) Normal(i int) r3.Vec {
	return get(tess.Normals, i)
}

// Curvature returns the sample at flat index i as a curvature snapshot.
func (tess *Tessellation) Curvature(i int) paramgeom.SurfaceCurvature {
	row, col := i/tess.Columns, i%tess.Columns
	return paramgeom.SurfaceCurvature{
		Point:    tess.Point(i),
		U:        float64(row) / float64(tess.Rows-1),
		V:        float64(col) / float64(tess.Columns-1),
		Normal:   tess.Normal(i),
		Gaussian: tess.Gaussian[i],
		Mean:     tess.Mean[i],
	}
}

func put(buf []float64, i int, v r3.Vec) {
	buf[Stride*i] = v.X
	buf[Stride*i+1] = v.Y
	buf[Stride*i+2] = v.Z
}

func get(buf []float64, i int) r3.Vec {
	return r3.Vec{X: buf[Stride*i], Y: buf[Stride*i+1], Z: buf[Stride*i+2]}
}
