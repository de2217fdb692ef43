package cmd

import (
	"fmt"
	"strings"

	"github.com/opmodel/seed/internal/manifest"
	"github.com/opmodel/seed/internal/options"
	"github.com/opmodel/seed/internal/output"
	"github.com/opmodel/seed/internal/scaffold"
)

// Where a resolved value came from.
const (
	sourceFlag    = "flag"
	sourcePrompt  = "prompt"
	sourceDefault = "default"
)

// renderResolution renders the promptable options with their final value
// and origin.
func renderResolution(table options.Table, res *options.Resolution) string {
	supplied := make(map[string]bool, len(res.Supplied))
	for _, name := range res.Supplied {
		supplied[name] = true
	}
	prompted := make(map[string]bool, len(res.Prompted))
	for _, name := range res.Prompted {
		prompted[name] = true
	}

	t := output.NewTable("OPTION", "VALUE", "SOURCE")
	for _, d := range table {
		if !d.Promptable() {
			continue
		}
		source := sourceDefault
		switch {
		case supplied[d.Name]:
			source = sourceFlag
		case prompted[d.Name]:
			source = sourcePrompt
		}
		t.Row(d.Name, res.Options.Value(d.Name), source)
	}
	return t.String()
}

// renderCompletion renders the lines printed after a successful run.
func renderCompletion(name, program string, result *scaffold.Result) string {
	var b strings.Builder
	b.WriteString(output.FormatCheckmark(output.StyleSummary.Render(fmt.Sprintf("%s created in %s",
		output.StyleNoun.Render(name), result.Target))))
	b.WriteString("\n")

	if len(result.Groups) > 0 {
		groups := make([]string, len(result.Groups))
		for i, g := range result.Groups {
			groups[i] = g.String()
		}
		fmt.Fprintf(&b, "  added: %s\n", strings.Join(groups, ", "))
	}
	for _, msg := range result.Commits {
		fmt.Fprintf(&b, "  commit: %s\n", msg)
	}
	if result.Origin != "" {
		fmt.Fprintf(&b, "  origin: %s\n", output.StyleNoun.Render(result.Origin))
	} else {
		b.WriteString(output.StyleDim.Render("  no origin remote configured") + "\n")
	}

	b.WriteString(output.StyleDim.Render(fmt.Sprintf("  pull template changes later with: %s run %s",
		program, manifest.UpdateScriptName)))
	return b.String()
}
