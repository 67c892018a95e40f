package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/npillmayer/paramgeom"
	"github.com/npillmayer/paramgeom/catalog"
	"github.com/npillmayer/paramgeom/curve"
	"github.com/npillmayer/paramgeom/surface"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

// defaultDelta is coarser than the kernel's nominal 1e-4, which would
// produce 10⁸ samples for surfaces.
const defaultDelta = 0.01

// numericAreaGrid is the grid size for area estimates of surfaces without
// a closed-form area.
const numericAreaGrid = 200

var errNoShape = errors.New("either --config or --kind is required")

type tessellateOptions struct {
	config string
	kind   string
	delta  float64
	out    string
}

func newTessellateCmd() *cobra.Command {
	opts := &tessellateOptions{}
	cmd := &cobra.Command{
		Use:   "tessellate",
		Short: "Tessellate a shape and print a summary",
		Long: `Tessellate samples a curve or surface of the catalog at a uniform
resolution. The shape is either given by a YAML request (--config) or by
kind name with default parameters (--kind). --delta overrides the request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(cmd)
			if err != nil {
				return err
			}
			return runTessellate(cmd.OutOrStdout(), req, opts.out)
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "YAML shape request")
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "shape kind, see 'paramgeom kinds'")
	cmd.Flags().Float64VarP(&opts.delta, "delta", "d", defaultDelta, "sampling resolution, 1/delta samples per axis")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write raw buffers to this file")
	return cmd
}

func (opts *tessellateOptions) request(cmd *cobra.Command) (*catalog.Request, error) {
	var req *catalog.Request
	switch {
	case opts.config != "" && opts.kind != "":
		return nil, errors.New("--kind conflicts with --config")
	case opts.config != "":
		r, err := catalog.LoadRequestFile(opts.config)
		if err != nil {
			return nil, err
		}
		req = r
	case opts.kind != "":
		k, err := catalog.ParseKind(opts.kind)
		if err != nil {
			return nil, err
		}
		req = catalog.NewRequest(k, 0)
	default:
		return nil, errNoShape
	}
	if cmd.Flags().Changed("delta") || req.Delta == 0 {
		req.Delta = opts.delta
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func runTessellate(w io.Writer, req *catalog.Request, out string) error {
	var buffers []interface{}
	fmt.Fprintf(w, "kind:    %v\n", req.Kind)
	fmt.Fprintf(w, "delta:   %g\n", req.Delta)
	if req.Kind.IsCurve() {
		c, err := catalog.NewCurve(req)
		if err != nil {
			return err
		}
		tess := curve.Tessellate(c, req.Delta)
		fmt.Fprintf(w, "samples: %d\n", tess.Count)
		printBounds(w, tess.Points)
		fmt.Fprintf(w, "finite:  %t\n", finite(tess.Points, tess.Tangents, tess.Normals,
			tess.Binormals, tess.Curvatures))
		if _, ok := c.(curve.Lengther); ok {
			fmt.Fprintf(w, "length:  %.6f\n", curve.Length(c))
		} else {
			fmt.Fprintf(w, "length:  %.6f (polyline)\n", curve.Length(c))
		}
		fmt.Fprintln(w, "buffers: points tangents normals binormals curvatures")
		buffers = []interface{}{tess.Points, tess.Tangents, tess.Normals, tess.Binormals, tess.Curvatures}
	} else {
		s, err := catalog.NewSurface(req)
		if err != nil {
			return err
		}
		tess := surface.Tessellate(s, req.Delta)
		fmt.Fprintf(w, "samples: %d (%d×%d), %d triangles\n", tess.PointsCount(),
			tess.Rows, tess.Columns, len(tess.Indices)/3)
		printBounds(w, tess.Points)
		fmt.Fprintf(w, "finite:  %t\n", finite(tess.Points, tess.Normals, tess.Gaussian, tess.Mean))
		if a, err := surface.Area(s); err == nil {
			fmt.Fprintf(w, "area:    %.6f\n", a)
		} else {
			fmt.Fprintf(w, "area:    %.6f (numeric)\n", surface.NumericArea(s, numericAreaGrid))
		}
		fmt.Fprintln(w, "buffers: points normals gaussian mean indices")
		buffers = []interface{}{tess.Points, tess.Normals, tess.Gaussian, tess.Mean, tess.Indices}
	}
	if out == "" {
		return nil
	}
	n, err := dump(out, buffers...)
	if err != nil {
		return err
	}
	tracing.Select("paramgeom").Infof("wrote %d bytes to %s", n, out)
	fmt.Fprintf(w, "written: %s (%d bytes)\n", out, n)
	return nil
}

func printBounds(w io.Writer, points []float64) {
	box := r3.Box{
		Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for i := 0; i+2 < len(points); i += 3 {
		box.Min.X, box.Max.X = math.Min(box.Min.X, points[i]), math.Max(box.Max.X, points[i])
		box.Min.Y, box.Max.Y = math.Min(box.Min.Y, points[i+1]), math.Max(box.Max.Y, points[i+1])
		box.Min.Z, box.Max.Z = math.Min(box.Min.Z, points[i+2]), math.Max(box.Max.Z, points[i+2])
	}
	fmt.Fprintf(w, "bounds:  (%.4g, %.4g, %.4g) .. (%.4g, %.4g, %.4g)\n",
		box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)
}

func finite(bufs ...[]float64) bool {
	for _, buf := range bufs {
		for _, x := range buf {
			if !paramgeom.Finite(x) {
				return false
			}
		}
	}
	return true
}

// dump writes buffers little-endian and returns the number of bytes written.
func dump(path string, buffers ...interface{}) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(f)
	n := 0
	for _, buf := range buffers {
		if err := binary.Write(bw, binary.LittleEndian, buf); err != nil {
			f.Close()
			return n, fmt.Errorf("writing %s: %w", path, err)
		}
		n += binary.Size(buf)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return n, err
	}
	return n, f.Close()
}
