package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/shellview/internal/surface"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display mesh statistics for the configured shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := surface.Generate(opts.cfg.Shape)
			if err != nil {
				return err
			}
			printInfo(cmd, opts.cfg.Shape, mesh)
			return nil
		},
	}
}

func printInfo(cmd *cobra.Command, p surface.ShapeParameters, mesh *surface.Mesh) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Shell Surface Information")
	fmt.Fprintln(out, "=========================")
	fmt.Fprintln(out, "Parameters:")
	for f := surface.FieldA; f <= surface.FieldColumnSegments; f++ {
		fmt.Fprintf(out, "  %-16s %g\n", f.String()+":", p.Get(f))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Mesh Statistics:")
	fmt.Fprintf(out, "  Quads: %d\n", mesh.QuadCount())
	fmt.Fprintf(out, "  Vertices: %d\n", mesh.VertexCount())
	fmt.Fprintf(out, "  Triangles: %d\n\n", len(mesh.Triangles()))

	b := mesh.Bounds
	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", formatVec(b.Min.X, b.Min.Y, b.Min.Z))
	fmt.Fprintf(out, "  Max: %s\n", formatVec(b.Max.X, b.Max.Y, b.Max.Z))
	c, s := b.Center(), b.Size()
	fmt.Fprintf(out, "  Center: %s\n", formatVec(c.X, c.Y, c.Z))
	fmt.Fprintf(out, "  Size: %s\n", formatVec(s.X, s.Y, s.Z))
}

func formatVec(x, y, z float32) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", x, y, z)
}
