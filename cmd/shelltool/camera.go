package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Faultbox/shellview/internal/engine/camera"
	"github.com/Faultbox/shellview/internal/surface"
	"github.com/Faultbox/shellview/pkg/math"
)

func newCameraCmd(opts *options) *cobra.Command {
	var (
		theta, phi, zoom float64
		steps            []string
	)

	cmd := &cobra.Command{
		Use:   "camera",
		Short: "Print the eye position and matrices for a camera state",
		Long: `Print the eye position, view, normal and projection matrices. The state
starts from the configured initial camera, is overridden by --theta, --phi
and --zoom, then has each --step action (theta+, phi-, zoom+, ...) applied
with the configured limits. The projected bounding box of the configured
shape shows whether it fits the view.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := opts.cfg.Camera.Initial
			limits := opts.cfg.Camera.Limits
			flags := cmd.Flags()
			if flags.Changed("theta") {
				state.Theta = theta
			}
			if flags.Changed("phi") {
				state.Phi = phi
			}
			if flags.Changed("zoom") {
				state.Zoom = zoom
			}

			if err := state.Validate(limits); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range steps {
				a, err := parseAction(s)
				if err != nil {
					return err
				}
				next, ok := state.Apply(a, limits)
				if !ok {
					fmt.Fprintf(out, "step %s rejected at %s\n", a, state)
				}
				state = next
			}

			mesh, err := surface.Generate(opts.cfg.Shape)
			if err != nil {
				return err
			}

			printCamera(out, state, limits)
			printFit(out, projectBounds(mesh.Bounds, state.Derive(limits)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&theta, "theta", 0, "azimuth in degrees")
	cmd.Flags().Float64Var(&phi, "phi", 0, "polar angle in degrees")
	cmd.Flags().Float64Var(&zoom, "zoom", 0, "zoom amount")
	cmd.Flags().StringSliceVar(&steps, "step", nil, "camera actions to apply in order")
	return cmd
}

func parseAction(s string) (camera.Action, error) {
	for a := camera.ThetaIncrease; a <= camera.ZoomOut; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown camera action %q", s)
}

func printCamera(out io.Writer, state camera.OrbitState, limits camera.Limits) {
	m := state.Derive(limits)

	fmt.Fprintf(out, "State: %s\n", state)
	fmt.Fprintf(out, "Eye: %s\n", formatVec(m.Eye.X, m.Eye.Y, m.Eye.Z))
	fmt.Fprintf(out, "Extent: ±%g\n\n", state.Extent(limits))

	fmt.Fprintln(out, "View:")
	printMat4(out, m.View)
	fmt.Fprintln(out, "Normal:")
	for r := 0; r < 3; r++ {
		fmt.Fprintf(out, "  %10.6f %10.6f %10.6f\n", m.Normal[r], m.Normal[3+r], m.Normal[6+r])
	}
	fmt.Fprintln(out, "Projection:")
	printMat4(out, m.Projection)
}

// printMat4 prints m row by row; storage is column-major.
func printMat4(out io.Writer, m math.Mat4) {
	for r := 0; r < 4; r++ {
		fmt.Fprintf(out, "  %10.6f %10.6f %10.6f %10.6f\n", m[r], m[4+r], m[8+r], m[12+r])
	}
}

// ndcRect is a rectangle in normalized device coordinates.
type ndcRect struct {
	MinX, MaxX, MinY, MaxY float32
}

// Fits reports whether r lies inside the [-1, 1] viewport.
func (r ndcRect) Fits() bool {
	return r.MinX >= -1 && r.MaxX <= 1 && r.MinY >= -1 && r.MaxY <= 1
}

// projectBounds maps the corners of b through the view and projection
// matrices and returns the rectangle they cover on screen.
func projectBounds(b surface.Bounds, m camera.Matrices) ndcRect {
	r := ndcRect{MinX: 1e30, MaxX: -1e30, MinY: 1e30, MaxY: -1e30}
	for i := 0; i < 8; i++ {
		corner := b.Min
		if i&1 != 0 {
			corner.X = b.Max.X
		}
		if i&2 != 0 {
			corner.Y = b.Max.Y
		}
		if i&4 != 0 {
			corner.Z = b.Max.Z
		}
		p := m.Projection.TransformPoint(m.View.TransformPoint(corner))
		r.MinX, r.MaxX = min(r.MinX, p.X), max(r.MaxX, p.X)
		r.MinY, r.MaxY = min(r.MinY, p.Y), max(r.MaxY, p.Y)
	}
	return r
}

func printFit(out io.Writer, r ndcRect) {
	status := "fits"
	if !r.Fits() {
		status = "clipped"
	}
	fmt.Fprintf(out, "\nSurface on screen: x [%.3f, %.3f] y [%.3f, %.3f] (%s)\n", r.MinX, r.MaxX, r.MinY, r.MaxY, status)
}
