package catalog

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/paramgeom/curve"
	"github.com/npillmayer/paramgeom/expr"
	"github.com/npillmayer/paramgeom/surface"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	kinds := Kinds()
	assert.Len(t, kinds, 12)
	curves := 0
	for _, k := range kinds {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
		assert.NotEqual(t, k.IsCurve(), k.IsSurface(), "%v", k)
		if k.IsCurve() {
			curves++
		}
	}
	assert.Equal(t, 4, curves)
	k, err := ParseKind(" Elliptic-Paraboloid ")
	require.NoError(t, err)
	assert.Equal(t, EllipticParaboloid, k)
	_, err = ParseKind("klein-bottle")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestLoadRequest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	req, err := LoadRequest(strings.NewReader(`
kind: Torus
delta: 0.05
params:
  a: 0.5
  b: 2
plane:
  origin: [0, 0, 1]
`))
	require.NoError(t, err)
	assert.Equal(t, Torus, req.Kind)
	assert.Equal(t, 0.05, req.Resolution(surface.DefaultDelta))
	s, err := NewSurface(req)
	require.NoError(t, err)
	tor := s.(*surface.Torus)
	assert.Equal(t, 0.5, tor.A)
	assert.Equal(t, 2.0, tor.B)
	assert.Equal(t, paramgeom.Vec(0, 0, 1), tor.Plane.Origin)
	assert.Equal(t, paramgeom.DefaultPlane().Normal, tor.Plane.Normal)
	a, err := surface.Area(s)
	require.NoError(t, err)
	assert.InDelta(t, 4*math.Pi*math.Pi, a, 1e-12)
}

func TestRejectedRequests(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range []struct {
		name, doc string
		err       error
	}{
		{"empty", "", ErrInvalidRequest},
		{"unknown kind", "kind: klein-bottle", ErrUnknownKind},
		{"no kind", "delta: 0.1", ErrUnknownKind},
		{"unknown field", "kind: arc\ncolor: red", ErrInvalidRequest},
		{"delta too large", "kind: arc\ndelta: 1", ErrInvalidDelta},
		{"negative delta", "kind: sphere\ndelta: -0.1", ErrInvalidDelta},
		{"surface delta too fine", "kind: sphere\ndelta: 1e-5", ErrInvalidDelta},
		{"unknown param", "kind: sphere\nparams: {height: 2}", ErrUnknownParam},
		{"domain for arc", "kind: arc\ndomain: [0, 1]", ErrInvalidRequest},
		{"short domain", "kind: helicoid\ndomain: [0]", ErrInvalidRequest},
		{"formula for torus", "kind: torus\nformula: {x: t, y: t, z: t}", ErrInvalidRequest},
		{"plane for expression", "kind: expression\nplane: {origin: [1, 2, 3]}", ErrInvalidRequest},
		{"bad plane vector", "kind: arc\nplane: {normal: [0, 1]}", ErrInvalidRequest},
	} {
		_, err := LoadRequest(strings.NewReader(tc.doc))
		assert.ErrorIs(t, err, tc.err, tc.name)
	}
}

func TestBuildEveryKind(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, k := range Kinds() {
		req := NewRequest(k, 0.1)
		if k.IsCurve() {
			c, err := NewCurve(req)
			require.NoError(t, err, "%v", k)
			tess := curve.Tessellate(c, req.Resolution(curve.DefaultDelta))
			assert.Equal(t, 10, tess.Count, "%v", k)
			_, err = NewSurface(req)
			assert.ErrorIs(t, err, ErrNotASurface)
		} else {
			s, err := NewSurface(req)
			require.NoError(t, err, "%v", k)
			tess := surface.Tessellate(s, req.Resolution(surface.DefaultDelta))
			assert.Equal(t, 100, tess.PointsCount(), "%v", k)
			_, err = NewCurve(req)
			assert.ErrorIs(t, err, ErrNotACurve)
		}
	}
}

func TestDefaultsMatchShapes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := NewSurface(NewRequest(Sphere, 0))
	require.NoError(t, err)
	assert.Equal(t, surface.DefaultSphere(), s)
	c, err := NewCurve(NewRequest(Clothoid, 0))
	require.NoError(t, err)
	assert.Equal(t, curve.DefaultClothoid(), c)
	s, err = NewSurface(&Request{Kind: Helicoid, Domain: []float64{-1, 3}})
	require.NoError(t, err)
	assert.Equal(t, paramgeom.NewDomain(-1, 3), s.(*surface.Helicoid).Domain)
}

func TestExpressionRequest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	req, err := LoadRequest(strings.NewReader(`
kind: expression
domain: [0, 1]
formula:
  x: t
  y: t*t
  z: "0"
`))
	require.NoError(t, err)
	c, err := NewCurve(req)
	require.NoError(t, err)
	p := c.PointAt(0.5)
	assert.InDelta(t, 0.5, p.X, 1e-12)
	assert.InDelta(t, 0.25, p.Y, 1e-12)
	assert.InDelta(t, 0.0, p.Z, 1e-12)

	req.Formula.Y = "t*"
	_, err = NewCurve(req)
	assert.ErrorIs(t, err, expr.ErrCompile)
}

func TestRequestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	req := &Request{
		Kind:   Hyperboloid,
		Delta:  0.05,
		Params: map[string]float64{"a": 1.5, "c": 0.5},
		Plane:  &PlaneSpec{Origin: []float64{0, 0, 1}},
		Domain: []float64{-1, 1},
	}
	var buf bytes.Buffer
	require.NoError(t, req.Encode(&buf))
	t.Logf("encoded:\n%s", buf.String())
	assert.Contains(t, buf.String(), "kind: hyperboloid")
	decoded, err := LoadRequest(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(req, decoded); diff != "" {
		t.Errorf("request changed in round trip (-want +got):\n%s", diff)
	}
}

func TestLoadRequestFile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := filepath.Join(t.TempDir(), "arc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: arc\nparams: {radius: 3}\n"), 0o644))
	req, err := LoadRequestFile(path)
	require.NoError(t, err)
	c, err := NewCurve(req)
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Pi, curve.Length(c), 1e-12)
	_, err = LoadRequestFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
