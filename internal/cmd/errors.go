package cmd

import (
	"errors"
	"strings"

	oerrors "github.com/opmodel/seed/internal/errors"
	"github.com/opmodel/seed/internal/output"
)

// printError prints err in a user-friendly format. Process failures get
// the working directory and stderr as key-value pairs.
func printError(err error) {
	var procErr *oerrors.ProcessError
	if errors.As(err, &procErr) {
		cmdline := strings.TrimSpace(procErr.Program + " " + strings.Join(procErr.Args, " "))
		output.Error("command failed",
			"cmd", cmdline,
			"dir", procErr.Dir,
			"exit", procErr.ExitCode,
			"stderr", strings.TrimSpace(procErr.Stderr),
		)
		return
	}
	output.Error(err.Error())
}
