/*
Package catalog is the closed set of shapes known to paramgeom, together
with a YAML format for requesting one of them.

A request names a shape kind, a sampling resolution and optional shape
parameters:

	kind: torus
	delta: 0.01
	params:
	  a: 0.5
	  b: 2
	plane:
	  origin: [0, 0, 1]

Parameters not given keep the shape's default.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'paramgeom.catalog'
func tracer() tracing.Trace {
	return tracing.Select("paramgeom.catalog")
}

// ErrUnknownKind is returned for shape names not in the catalog.
var ErrUnknownKind = errors.New("unknown shape kind")

// Kind selects a shape of the catalog.
type Kind int8

// Curve kinds precede surface kinds; IsCurve and IsSurface rely on it.
const (
	NoKind Kind = iota
	Arc
	EllipseArc
	Clothoid
	Expression
	Sphere
	Cylinder
	Torus
	Mobius
	Helicoid
	EllipticParaboloid
	HyperbolicParaboloid
	Hyperboloid
)

var kindNames = [...]string{
	NoKind:               "none",
	Arc:                  "arc",
	EllipseArc:           "ellipse-arc",
	Clothoid:             "clothoid",
	Expression:           "expression",
	Sphere:               "sphere",
	Cylinder:             "cylinder",
	Torus:                "torus",
	Mobius:               "mobius",
	Helicoid:             "helicoid",
	EllipticParaboloid:   "elliptic-paraboloid",
	HyperbolicParaboloid: "hyperbolic-paraboloid",
	Hyperboloid:          "hyperboloid",
}

// Kinds lists every shape kind of the catalog.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := Arc; int(k) < len(kindNames); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind finds a kind by name, ignoring case.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := Arc; int(k) < len(kindNames); k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return NoKind, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsCurve is true for curve kinds.
func (k Kind) IsCurve() bool {
	return k >= Arc && k <= Expression
}

// IsSurface is true for surface kinds.
func (k Kind) IsSurface() bool {
	return k >= Sphere && k <= Hyperboloid
}

// UnmarshalYAML reads a kind from its name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: shape kind must be a name", value.Line)
	}
	kind, err := ParseKind(value.Value)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MarshalYAML writes a kind as its name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
