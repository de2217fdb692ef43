// Package cmd provides CLI command implementations.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/opmodel/seed/internal/options"
	"github.com/opmodel/seed/internal/version"
	"github.com/opmodel/seed/internal/workdir"
)

// deps holds the collaborators the create command reaches outside the
// process through. Tests replace them.
type deps struct {
	runner   workdir.Runner
	reporter workdir.Reporter
	detect   func(ctx context.Context, name string) version.BinaryInfo
}

func defaultDeps() deps {
	return deps{
		runner: workdir.ExecRunner{},
		detect: version.DetectBinary,
	}
}

// NewRootCmd creates the root command for the seed CLI. The root command
// itself creates a project; version and config are subcommands.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDeps())
}

func newRootCmd(d deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seed <source-repo> <target> [flags]",
		Short: "Create a project from a template repository",
		Long: `seed clones a template repository into <target>, fills in package.json
from flags or interactive prompts, adds dependencies with the configured
package manager and commits the result.

The template's origin remote is renamed to "template" so later template
changes can be pulled with the generated update-template script. Options
not given on the command line are asked for; pass --yes to accept defaults
instead.`,
		Example: `  # Ask for everything not given
  seed git@github.com:acme/template.git my-app

  # Fully non-interactive
  seed git@github.com:acme/template.git my-app \
    --name my-app --repository git@github.com:me/my-app.git \
    --author "Jane Doe" --deps "lodash" --devDeps "typescript" --yes`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, d)
		},
	}

	// Registered for help output only; parsing happens in options.Parse.
	options.NewTable(options.Defaults{}).AddTo(rootCmd.Flags())

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
