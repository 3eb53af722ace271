// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// dnx-locate finds an installed DNX-family runtime for a project and prints
// the resolved runtime directory and tool executable paths.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dnxdev/dnx-core/cliout"
	"github.com/dnxdev/dnx-core/logutil"
	"github.com/dnxdev/dnx-core/version"
)

// rootFlags holds the global flag values shared by subcommands.
type rootFlags struct {
	projectDir   string
	alias        string
	outputFormat string
	debug        bool
	noColor      bool
}

// addGlobalFlags registers the flags every subcommand honors.
func addGlobalFlags(flags *pflag.FlagSet, opts *rootFlags) {
	flags.StringVarP(&opts.projectDir, "project", "p", ".", "Project directory to resolve from")
	flags.StringVarP(&opts.alias, "alias", "a", "", "Runtime version or alias to use when global.json does not pin one")
	flags.StringVarP(&opts.outputFormat, "output", "o", "default", "Output format (default, json)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
}

func newRootCmd() *cobra.Command {
	opts := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "dnx-locate",
		Short: "Locate an installed DNX runtime and its tools",
		Long: `dnx-locate resolves the DNX runtime installation for a project.

The requested version comes from the nearest global.json (sdk.version),
falling back to --alias and then to the "default" alias. Runtime homes are
searched in order: DNX_HOME, KRE_HOME, and the per-convention folders under
the user's home directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(opts.debug, opts.outputFormat == "json")
			if opts.noColor {
				cliout.NoColor()
			}
			return cliout.SetFormat(opts.outputFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts)
		},
	}

	addGlobalFlags(cmd.PersistentFlags(), opts)

	info := version.New("dnx-locate")
	cmd.AddCommand(version.NewCommand(info, &opts.outputFormat))
	cmd.AddCommand(newDoctorCmd(opts))

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
