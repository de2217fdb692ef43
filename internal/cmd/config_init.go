package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/opmodel/seed/internal/config"
	oerrors "github.com/opmodel/seed/internal/errors"
	"github.com/opmodel/seed/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var (
		force      bool
		configFile string
	)

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new seed configuration file",
		Long: `Create a new seed configuration file with default values.

The configuration file is created at ~/.seed/config.yaml by default.
Use --config to write it somewhere else.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, configFile, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")
	c.Flags().StringVar(&configFile, "config", "", "Path to config file (env: SEED_CONFIG)")

	return c
}

func runConfigInit(cmd *cobra.Command, configFile string, force bool) error {
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if err := config.WriteDefault(expandedPath, force); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
		}
		return exitError(oerrors.NewIOError("write", expandedPath, err))
	}

	output.Debug("wrote config", "path", expandedPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", expandedPath)
	return nil
}
