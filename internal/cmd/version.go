package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/seed/internal/config"
	"github.com/opmodel/seed/internal/output"
	"github.com/opmodel/seed/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show seed version information.

Displays:
  - seed version, commit, and build date
  - git and package manager binaries found in PATH`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	tools := []version.BinaryInfo{version.DetectBinary(ctx, "git")}
	for _, pm := range config.ValidPackageManagers() {
		tools = append(tools, version.DetectBinary(ctx, pm))
	}

	output.Println(version.FullVersionString(version.Get(), tools...))
	return nil
}
