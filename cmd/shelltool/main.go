// Package main implements shelltool, a command-line companion to the viewer
// for inspecting and exporting shell surfaces.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/shellview/internal/config"
	"github.com/Faultbox/shellview/internal/logger"
)

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	debug      bool
	sets       []string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "shelltool",
		Short: "Inspect and export parametric shell surfaces",
		Long: `shelltool generates the same shell surfaces as the viewer without opening
a window. Shape parameters come from the viewer config file and can be
overridden with --set field=value.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringArrayVar(&opts.sets, "set", nil, "override a shape parameter, e.g. --set a=1.1 (repeatable)")

	root.AddCommand(
		newInfoCmd(opts),
		newExportCmd(opts),
		newCameraCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

// load reads the config, applies --set overrides and sets up logging.
func (o *options) load() error {
	if o.debug {
		if err := logger.Init("debug", ""); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
	} else {
		logger.InitNop()
	}

	cfg, err := config.LoadFrom(config.Resolve(o.configPath))
	if err != nil {
		return err
	}
	shape, err := applySets(cfg.Shape, o.sets)
	if err != nil {
		return err
	}
	cfg.Shape = shape
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	o.cfg = cfg
	return nil
}

func main() {
	err := newRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
