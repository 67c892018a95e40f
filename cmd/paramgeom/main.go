/*
Command paramgeom tessellates the shapes of the paramgeom catalog.

	paramgeom kinds
	paramgeom tessellate --kind torus --delta 0.01 --out torus.bin
	paramgeom tessellate --config shape.yaml --trace debug

Shape requests are YAML documents as described in package catalog. A
summary of the tessellation is printed to stdout; --out dumps the raw
buffers, little-endian, in the order they appear in the summary.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var traceLevel string
	root := &cobra.Command{
		Use:           "paramgeom",
		Short:         "Tessellate parametric curves and surfaces",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if traceLevel != "" {
				setupTracing(traceLevel, cmd)
			}
		},
	}
	root.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level (error, info, debug)")
	root.AddCommand(newTessellateCmd(), newKindsCmd())
	return root
}

// setupTracing routes all trace keys to a single Go logger on the
// command's stderr.
func setupTracing(level string, cmd *cobra.Command) {
	t := gologadapter.New()
	t.SetOutput(cmd.ErrOrStderr())
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(oneTracer{t})
	t.Debugf("tracing at level %s", t.GetTraceLevel())
}

// oneTracer selects the same tracer for every key.
type oneTracer struct {
	t tracing.Trace
}

func (sel oneTracer) Select(string) tracing.Trace {
	return sel.t
}
