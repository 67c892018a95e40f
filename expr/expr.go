/*
Package expr compiles one-variable formulas, given as text, into Go
functions.

Formulas are Go expressions over a single float64 variable. The math
package is available, e.g.

	math.Cos(t) * (1 + t/10)

Compilation is done once by an embedded Go interpreter (yaegi); evaluating
the compiled function never fails, but may of course return NaN or ±Inf.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package expr

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// tracer writes to trace with key 'paramgeom.expr'
func tracer() tracing.Trace {
	return tracing.Select("paramgeom.expr")
}

var (
	// ErrEmptyFormula indicates a blank formula text.
	ErrEmptyFormula = errors.New("formula is empty")
	// ErrInvalidVariable indicates a variable name which is not a Go identifier.
	ErrInvalidVariable = errors.New("invalid formula variable")
	// ErrCompile indicates a formula which could not be parsed or type-checked.
	ErrCompile = errors.New("cannot compile formula")
)

// Func is a compiled formula.
type Func func(float64) float64

// Compile compiles formula as a function of variable.
func Compile(formula, variable string) (Func, error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return nil, ErrEmptyFormula
	}
	if !token.IsIdentifier(variable) || variable == "math" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariable, variable)
	}
	// a single expression only; anything else could escape the function body
	if _, err := parser.ParseExpr(formula); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrCompile, formula, err)
	}
	i := interp.New(interp.Options{})
	if err := i.Use(interp.Exports{"math/math": stdlib.Symbols["math/math"]}); err != nil {
		return nil, fmt.Errorf("%w: loading math symbols: %v", ErrCompile, err)
	}
	src := fmt.Sprintf(`package main

import "math"

var _ = math.Pi

func F(%s float64) float64 {
	return float64(%s)
}
`, variable, formula)
	if _, err := i.Eval(src); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrCompile, formula, err)
	}
	v, err := i.Eval("main.F")
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrCompile, formula, err)
	}
	f, ok := v.Interface().(func(float64) float64)
	if !ok {
		return nil, fmt.Errorf("%w %q: unexpected function type %s", ErrCompile, formula, v.Type())
	}
	tracer().Debugf("compiled formula f(%s) = %s", variable, formula)
	return Func(f), nil
}

// MustCompile is like Compile, but panics on errors.
func MustCompile(formula, variable string) Func {
	f, err := Compile(formula, variable)
	if err != nil {
		panic(err)
	}
	return f
}
