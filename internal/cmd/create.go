package cmd

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/opmodel/seed/internal/config"
	oerrors "github.com/opmodel/seed/internal/errors"
	"github.com/opmodel/seed/internal/options"
	"github.com/opmodel/seed/internal/output"
	"github.com/opmodel/seed/internal/prompt"
	"github.com/opmodel/seed/internal/scaffold"
	"github.com/opmodel/seed/internal/workdir"
)

func runCreate(cmd *cobra.Command, args []string, d deps) error {
	ctx := cmd.Context()

	// A first pass with the built-in table reports usage errors and picks
	// up the session flags before anything is prompted.
	pre, err := options.Parse(args, options.NewTable(options.Defaults{}))
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cmd.Help()
		}
		return exitError(err)
	}

	output.SetupLogging(output.LogConfig{Verbose: pre.Options.Verbose})

	cfg, err := config.NewLoader().LoadWithDefaults(pre.Options.Config)
	if err != nil {
		return exitError(err)
	}
	output.Debug("configuration resolved",
		"author", cfg.Author,
		"version", cfg.Version,
		"packageManager", cfg.PackageManager,
		"templateRemote", cfg.TemplateRemote,
	)

	table := options.NewTable(options.Defaults{
		Version: cfg.Version,
		Author:  cfg.Author,
	})

	in := cmd.InOrStdin()
	var sessionOpts []prompt.Option
	if c, ok := in.(io.Closer); ok {
		sessionOpts = append(sessionOpts, prompt.WithCloser(c))
	}
	session := prompt.Open(in, cmd.OutOrStdout(), sessionOpts...)
	defer session.Close()

	resolver := options.NewResolver(table, session, options.WithNonInteractive(pre.Options.Yes))
	res, err := resolver.Resolve(args)
	if err != nil {
		return exitError(err)
	}
	// Nothing else reads the input stream; child processes get no stdin.
	_ = session.Close()

	output.Println(renderResolution(table, res))

	opts := res.Options
	settings := scaffold.Settings{
		PackageManager: cfg.PackageManager,
		TemplateRemote: cfg.TemplateRemote,
	}

	wdOpts := []workdir.Option{workdir.WithRunner(d.runner)}
	if d.reporter != nil {
		wdOpts = append(wdOpts, workdir.WithReporter(d.reporter))
	}
	root := workdir.New(".", wdOpts...)

	sc, err := scaffold.New(root, settings)
	if err != nil {
		return exitError(err)
	}

	if err := preflight(ctx, d, "git", sc.PackageManager().Program); err != nil {
		return exitError(err)
	}

	result, err := sc.Run(ctx, opts)
	if err != nil {
		return exitError(err)
	}

	output.Println("")
	output.Println(renderCompletion(opts.Name, sc.PackageManager().Program, result))
	return nil
}

// exitError reports err and wraps it with its exit code.
func exitError(err error) error {
	printError(err)
	code := oerrors.ExitCodeFromError(err)
	output.Debug("exiting", "code", code, "kind", oerrors.ExitCodeName(code))
	return &oerrors.ExitError{
		Code:    code,
		Err:     err,
		Printed: true,
	}
}
