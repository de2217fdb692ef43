package cmd

import (
	"context"
	"fmt"

	oerrors "github.com/opmodel/seed/internal/errors"
	"github.com/opmodel/seed/internal/output"
)

// preflight checks that every program the run drives is installed.
func preflight(ctx context.Context, d deps, programs ...string) error {
	for _, name := range programs {
		info := d.detect(ctx, name)
		if !info.Found {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("%s not found in PATH", name),
				fmt.Sprintf("Install %s or choose another packageManager in the seed config", name))
		}
		output.Debug("found tool", "name", name, "version", info.Version, "path", info.Path)
	}
	return nil
}
