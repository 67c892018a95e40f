package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/paramgeom/surface"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDelta is returned for resolutions outside (0,1).
	ErrInvalidDelta = errors.New("delta must be in (0,1)")
	// ErrUnknownParam is returned for parameters the requested shape does not have.
	ErrUnknownParam = errors.New("unknown shape parameter")
	// ErrInvalidRequest flags structurally broken requests.
	ErrInvalidRequest = errors.New("invalid shape request")
)

// Request asks for a tessellation of one catalog shape. Zero values mean
// "use the default".
type Request struct {
	Kind    Kind               `yaml:"kind"`
	Delta   float64            `yaml:"delta,omitempty"`
	Params  map[string]float64 `yaml:"params,omitempty"`
	Plane   *PlaneSpec         `yaml:"plane,omitempty"`
	Domain  []float64          `yaml:"domain,omitempty"`
	Formula *Formula           `yaml:"formula,omitempty"`
}

// PlaneSpec overrides parts of a shape's embedding plane. Vectors are
// [x, y, z] triples.
type PlaneSpec struct {
	Origin []float64 `yaml:"origin,omitempty"`
	XAxis  []float64 `yaml:"x,omitempty"`
	YAxis  []float64 `yaml:"y,omitempty"`
	Normal []float64 `yaml:"normal,omitempty"`
}

// Formula holds the coordinate functions of an expression curve, as Go
// expressions over t.
type Formula struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
	Z string `yaml:"z"`
}

// NewRequest creates a request for kind with default parameters.
func NewRequest(kind Kind, delta float64) *Request {
	return &Request{Kind: kind, Delta: delta}
}

// Resolution returns Delta, or the given fallback if Delta is unset.
func (req *Request) Resolution(fallback float64) float64 {
	if req.Delta == 0 {
		return fallback
	}
	return req.Delta
}

// Validate checks the request without building the shape. Formulas are
// compiled, and thus checked, by NewCurve only.
func (req *Request) Validate() error {
	if !req.Kind.IsCurve() && !req.Kind.IsSurface() {
		return fmt.Errorf("%w: %v", ErrUnknownKind, req.Kind)
	}
	if req.Delta != 0 && !(req.Delta > 0 && req.Delta < 1) {
		return fmt.Errorf("%w, got %g", ErrInvalidDelta, req.Delta)
	}
	if req.Delta != 0 && req.Kind.IsSurface() && !surface.IndicesFit(surface.SampleCount(req.Delta)) {
		return fmt.Errorf("%w: %g exceeds %d samples per axis", ErrInvalidDelta, req.Delta, surface.MaxCount)
	}
	known := paramNames[req.Kind]
	for name, value := range req.Params {
		if !contains(known, name) {
			return fmt.Errorf("%w %q for %v", ErrUnknownParam, name, req.Kind)
		}
		if !paramgeom.Finite(value) {
			return fmt.Errorf("%w: parameter %q is not finite", ErrInvalidRequest, name)
		}
	}
	if req.Domain != nil {
		if !hasDomain(req.Kind) {
			return fmt.Errorf("%w: %v takes no domain", ErrInvalidRequest, req.Kind)
		}
		if len(req.Domain) != 2 {
			return fmt.Errorf("%w: domain needs 2 values, got %d", ErrInvalidRequest, len(req.Domain))
		}
	}
	if req.Formula != nil && req.Kind != Expression {
		return fmt.Errorf("%w: %v takes no formula", ErrInvalidRequest, req.Kind)
	}
	if req.Plane != nil {
		if req.Kind == Expression {
			return fmt.Errorf("%w: expression curves have no plane", ErrInvalidRequest)
		}
		for _, v := range [][]float64{req.Plane.Origin, req.Plane.XAxis, req.Plane.YAxis, req.Plane.Normal} {
			if v != nil && len(v) != 3 {
				return fmt.Errorf("%w: plane vectors need 3 values, got %d", ErrInvalidRequest, len(v))
			}
		}
	}
	return nil
}

// LoadRequest decodes a single YAML request from r and validates it.
// Unknown fields are rejected.
func LoadRequest(r io.Reader) (*Request, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	req := &Request{}
	if err := dec.Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRequest)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("loaded request for %v, delta=%g, params=%v", req.Kind, req.Delta, req.Params)
	return req, nil
}

// LoadRequestFile reads a request from a YAML file.
func LoadRequestFile(path string) (*Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	req, err := LoadRequest(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// Encode writes req as YAML.
func (req *Request) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(req); err != nil {
		return err
	}
	return enc.Close()
}

// param returns a parameter value or def.
func (req *Request) param(name string, def float64) float64 {
	if v, ok := req.Params[name]; ok {
		return v
	}
	return def
}

func (req *Request) domain(def paramgeom.Domain) paramgeom.Domain {
	if len(req.Domain) == 2 {
		return paramgeom.NewDomain(req.Domain[0], req.Domain[1])
	}
	return def
}

func (req *Request) plane(def paramgeom.Plane) paramgeom.Plane {
	if req.Plane == nil {
		return def
	}
	pl := def
	pl.Origin = vec(req.Plane.Origin, pl.Origin)
	pl.XAxis = vec(req.Plane.XAxis, pl.XAxis)
	pl.YAxis = vec(req.Plane.YAxis, pl.YAxis)
	pl.Normal = vec(req.Plane.Normal, pl.Normal)
	return pl
}

func vec(xyz []float64, def r3.Vec) r3.Vec {
	if len(xyz) != 3 {
		return def
	}
	return paramgeom.Vec(xyz[0], xyz[1], xyz[2])
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
