package surface

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func TestSphereTessellation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sph := DefaultSphere()
	tess := Tessellate(sph, 0.1)
	require.Equal(t, 10, tess.Rows)
	require.Equal(t, 10, tess.Columns)
	assert.Equal(t, 100, tess.PointsCount())
	assert.Len(t, tess.Points, 300)
	assert.Len(t, tess.Normals, 300)
	assert.Len(t, tess.Gaussian, 100)
	assert.Len(t, tess.Mean, 100)
	assert.Len(t, tess.Indices, 486)
	assert.True(t, allFinite(tess.Points), "points")
	assert.True(t, allFinite(tess.Normals), "normals")
	assert.True(t, allFinite(tess.Gaussian), "gaussian")
	assert.True(t, allFinite(tess.Mean), "mean")
	for i := 0; i < tess.PointsCount(); i++ {
		assert.True(t, paramgeom.FiniteVec(tess.Point(i)), "point %d", i)
		assert.True(t, paramgeom.FiniteVec(tess.Normal(i)), "normal %d", i)
	}
	assert.Equal(t, sph.PointAt(0, 0), tess.Point(0))
	assert.Equal(t, sph.PointAt(1, 1), tess.Point(99))
	assert.Equal(t, 3, tess.Stride())
}

func TestTessellationCounts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range testSurfaces() {
		for _, delta := range []float64{0.5, 0.1, 0.05, 0.02} {
			tess := Tessellate(tc.s, delta)
			count := SampleCount(delta)
			assert.Equal(t, count*count, tess.PointsCount(), "%s/%g", tc.name, delta)
			assert.Len(t, tess.Points, 3*count*count, "%s/%g", tc.name, delta)
			assert.Len(t, tess.Indices, 6*(count-1)*(count-1), "%s/%g", tc.name, delta)
			for _, ix := range tess.Indices {
				if int(ix) >= count*count {
					t.Fatalf("%s/%g: index %d out of range", tc.name, delta, ix)
				}
			}
		}
	}
}

func TestTessellationWinding(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tess := Tessellate(DefaultTorus(), 0.5)
	if diff := cmp.Diff([]uint32{0, 1, 2, 3, 2, 1}, tess.Indices); diff != "" {
		t.Errorf("unexpected indices (-want +got):\n%s", diff)
	}
	tess = Tessellate(DefaultTorus(), 1.0/3)
	want := []uint32{
		0, 1, 3, 4, 3, 1,
		1, 2, 4, 5, 4, 2,
		3, 4, 6, 7, 6, 4,
		4, 5, 7, 8, 7, 5,
	}
	if diff := cmp.Diff(want, tess.Indices); diff != "" {
		t.Errorf("unexpected indices (-want +got):\n%s", diff)
	}
}

func TestTessellationSamples(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	hyp := DefaultHyperboloid()
	tess := Tessellate(hyp, 0.05)
	count := tess.Columns
	for _, i := range []int{0, 7, count + 3, count*count/2 + 1, count*count - 1} {
		c := tess.Curvature(i)
		want := CurvatureAt(hyp, c.U, c.V)
		assert.Equal(t, want, c, "sample %d", i)
	}
}

func TestTessellationIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// 100 rows of 100 samples are split across goroutines
	a := Tessellate(DefaultHelicoid(), 0.01)
	b := Tessellate(DefaultHelicoid(), 0.01)
	assert.Equal(t, a, b)
}

func TestEmptyTessellation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tess := Tessellate(DefaultSphere(), 2)
	assert.Equal(t, 0, tess.PointsCount())
	assert.Empty(t, tess.Indices)
}

func TestIndicesFit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, IndicesFit(SampleCount(0.5)))
	assert.True(t, IndicesFit(MaxCount))
	assert.False(t, IndicesFit(MaxCount+1))
	// the last vertex of the largest grid is the largest uint32
	assert.Equal(t, uint64(math.MaxUint32), uint64(MaxCount*MaxCount-1))
}
