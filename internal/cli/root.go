// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the spindle CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
//
// The persistent pre-run merges the --config file with the global flags
// (flags win), then attaches the Config and a logger to the command
// context:
//   - Default: info level on stderr
//   - With --verbose (-v) or verbose = true: debug level
func NewRootCommand() *cobra.Command {
	var (
		verbose     bool
		useFloat    bool
		checkRedund bool
		epsilon     float64
		configPath  string
	)

	root := &cobra.Command{
		Use:          "spindle",
		Short:        "Face lattices, skeletons and good 2-faces of polytopes",
		Long:         `spindle reads a polytope given by labeled inequalities and reports its face lattice: dimension, f-vector, facets, 1-skeleton, apices, good 2-faces and monotone diameters.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadConfig(configPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("float") {
				cfg.Arithmetic = arithRational
				if useFloat {
					cfg.Arithmetic = arithFloat
				}
			}
			if flags.Changed("epsilon") {
				cfg.Epsilon = epsilon
			}
			if flags.Changed("check-redundancy") {
				cfg.CheckRedundancy = checkRedund
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := charmlog.InfoLevel
			if cfg.Verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(withConfig(ctx, cfg))

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("spindle %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&configPath, "config", "c", "", "TOML config file")
	pf.BoolVar(&useFloat, "float", false, "use float64 arithmetic instead of exact rationals")
	pf.Float64Var(&epsilon, "epsilon", 0, "float tolerance (with --float)")
	pf.BoolVar(&checkRedund, "check-redundancy", true, "ignore non-facet rows when searching apices")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newFacetsCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newGoodFacesCmd())
	root.AddCommand(newMonotoneCmd())

	return root
}
