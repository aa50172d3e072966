package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/shellview/internal/export"
	"github.com/Faultbox/shellview/internal/logger"
	"github.com/Faultbox/shellview/internal/surface"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		format string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the configured shape as STL or OBJ",
		Long: `Export the generated mesh. The format is taken from --format, or from the
file extension (.stl writes binary STL, .obj writes Wavefront OBJ).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var (
				f   export.Format
				err error
			)
			if format != "" {
				f, err = export.ParseFormat(format)
			} else {
				f, err = export.FormatFromPath(path)
			}
			if err != nil {
				return err
			}

			mesh, err := surface.Generate(opts.cfg.Shape)
			if err != nil {
				return err
			}
			if err := export.WriteFile(path, f, name, mesh); err != nil {
				return err
			}

			logger.Debug("mesh exported",
				zap.String("path", path),
				zap.Stringer("format", f),
				zap.Int("quads", mesh.QuadCount()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d quads to %s (%s)\n", mesh.QuadCount(), path, f)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: stl, stl-ascii or obj")
	cmd.Flags().StringVar(&name, "name", "shell", "solid/object name stored in the file")
	return cmd
}
