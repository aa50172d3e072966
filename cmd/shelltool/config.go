package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Faultbox/shellview/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config [file]",
		Short: "Write the effective configuration as YAML",
		Long: `Write the configuration shelltool is using, including --set overrides, so
the viewer starts from the same shape. Without a file argument it is saved
to the user config directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				path string
				err  error
			)
			if len(args) == 1 {
				path = args[0]
				err = opts.cfg.SaveTo(path)
			} else {
				path = filepath.Join(config.ConfigDir(), "config.yaml")
				err = opts.cfg.Save()
			}
			if err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
			return nil
		},
	}
}
