package curve

import (
	"math"
	"testing"

	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 10, SampleCount(0.1))
	assert.Equal(t, 100, SampleCount(0.01))
	assert.Equal(t, 10000, SampleCount(DefaultDelta))
	assert.Equal(t, 0, SampleCount(-0.5))
}

func TestTessellateCounts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range testCurves() {
		for _, delta := range []float64{0.1, 0.01, 0.001} {
			tess := Tessellate(tc.c, delta)
			n := SampleCount(delta)
			require.Equal(t, n, tess.Count, tc.name)
			assert.Len(t, tess.Points, 3*n, tc.name)
			assert.Len(t, tess.Tangents, 3*n, tc.name)
			assert.Len(t, tess.Normals, 3*n, tc.name)
			assert.Len(t, tess.Binormals, 3*n, tc.name)
			assert.Len(t, tess.Curvatures, n, tc.name)
			assert.Equal(t, 3, tess.Stride())
		}
	}
}

func TestTessellateSamples(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arc := DefaultArc()
	tess := Tessellate(arc, 0.001)
	n := tess.Count
	for _, i := range []int{0, 1, n / 3, n - 2, n - 1} {
		s := float64(i) / float64(n-1)
		want := FrameAt(arc, s)
		got := tess.Frame(i)
		assert.Equal(t, want, got, "sample %d", i)
		assert.Equal(t, CurvatureAt(arc, s), tess.Curvatures[i], "sample %d", i)
	}
	assert.True(t, paramgeom.Equal(arc.PointAt(1), tess.Point(n-1)))
	for _, v := range tess.Points {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestTessellateIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := DefaultClothoid()
	t1 := Tessellate(c, 0.0005)
	t2 := Tessellate(c, 0.0005)
	assert.Equal(t, t1, t2)
}
