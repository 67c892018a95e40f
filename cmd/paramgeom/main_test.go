package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/paramgeom/catalog"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeSplit(t, args...)
	return out, err
}

func executeSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(catalog.Kinds()))
	assert.Contains(t, out, "hyperbolic-paraboloid")
	assert.Contains(t, out, "radius height")
}

func TestTessellateSurface(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := filepath.Join(t.TempDir(), "sphere.bin")
	out, err := execute(t, "tessellate", "--kind", "sphere", "--delta", "0.1", "--out", path)
	require.NoError(t, err)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "samples: 100 (10×10), 162 triangles")
	assert.Contains(t, out, "finite:  true")
	assert.Contains(t, out, "area:    50.265482")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64((300+300+100+100)*8+486*4), info.Size())
}

func TestTessellateCurveFromConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	config := filepath.Join(dir, "arc.yaml")
	require.NoError(t, os.WriteFile(config, []byte("kind: arc\ndelta: 0.1\nparams:\n  radius: 1\n"), 0o644))
	path := filepath.Join(dir, "arc.bin")
	out, err := execute(t, "tessellate", "--config", config, "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "samples: 10\n")
	assert.Contains(t, out, "length:  3.141593\n")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64((4*30+10)*8), info.Size())

	// --delta wins over the request
	out, err = execute(t, "tessellate", "--config", config, "--delta", "0.05")
	require.NoError(t, err)
	assert.Contains(t, out, "samples: 20\n")
}

func TestTessellateErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := execute(t, "tessellate")
	assert.ErrorIs(t, err, errNoShape)
	_, err = execute(t, "tessellate", "--kind", "klein-bottle")
	assert.ErrorIs(t, err, catalog.ErrUnknownKind)
	_, err = execute(t, "tessellate", "--kind", "torus", "--delta", "1.5")
	assert.ErrorIs(t, err, catalog.ErrInvalidDelta)
	_, err = execute(t, "tessellate", "--kind", "torus", "--config", "x.yaml")
	assert.Error(t, err)
}

func TestTraceFlag(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	defer tracing.SetTraceSelector(nil)
	out, trace, err := executeSplit(t, "tessellate", "--kind", "arc", "--delta", "0.1", "--trace", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "samples: 10\n")
	assert.Contains(t, trace, "DEBUG ")
	assert.Contains(t, trace, "tracing at level Debug")
	// keys of sub-packages share the tracer
	assert.Contains(t, trace, "building arc")
	assert.Contains(t, trace, "tessellated curve")
	assert.Equal(t, tracing.LevelDebug, tracing.Select("paramgeom.surface").GetTraceLevel())

	_, trace, err = executeSplit(t, "tessellate", "--kind", "arc", "--delta", "0.1", "--trace", "error")
	require.NoError(t, err)
	assert.NotContains(t, trace, "tessellated curve")
}
