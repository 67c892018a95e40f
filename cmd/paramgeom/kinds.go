package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/paramgeom/catalog"
	"github.com/spf13/cobra"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the shape catalog with parameter names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, k := range catalog.Kinds() {
				class := "surface"
				if k.IsCurve() {
					class = "curve"
				}
				fmt.Fprintf(out, "%-22s %-8s %s\n", k, class, strings.Join(catalog.Params(k), " "))
			}
			return nil
		},
	}
}
