package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version strings like "git version 2.43.0" or "4.1.0".
var versionRegex = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9.]+)?`)

// BinaryInfo describes an external program found (or not) in PATH.
type BinaryInfo struct {
	// Name is the program name looked up in PATH.
	Name string `json:"name"`

	// Version is the reported version, normalized to MAJOR.MINOR.PATCH.
	Version string `json:"version,omitempty"`

	// Path is the resolved location of the binary.
	Path string `json:"path,omitempty"`

	// Found indicates if the binary was found.
	Found bool `json:"found"`

	// Message explains a missing binary or an unreadable version.
	Message string `json:"message,omitempty"`
}

// String returns a human-readable binary info string.
func (b BinaryInfo) String() string {
	if !b.Found {
		return fmt.Sprintf("  %-6s not found", b.Name)
	}
	if b.Version == "" {
		return fmt.Sprintf("  %-6s %s (%s)", b.Name, b.Path, b.Message)
	}
	return fmt.Sprintf("  %-6s %s (%s)", b.Name, b.Version, b.Path)
}

// DetectBinary looks up name in PATH and asks it for its version.
func DetectBinary(ctx context.Context, name string) BinaryInfo {
	path, err := exec.LookPath(name)
	if err != nil {
		return BinaryInfo{
			Name:    name,
			Message: name + " not found in PATH",
		}
	}

	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return BinaryInfo{
			Name:    name,
			Path:    path,
			Found:   true,
			Message: "failed to get version: " + err.Error(),
		}
	}

	v, err := extractVersion(out.String())
	if err != nil {
		return BinaryInfo{
			Name:    name,
			Path:    path,
			Found:   true,
			Message: err.Error(),
		}
	}

	return BinaryInfo{
		Name:    name,
		Version: v,
		Path:    path,
		Found:   true,
	}
}

// extractVersion pulls the first version-like token out of output.
func extractVersion(output string) (string, error) {
	match := versionRegex.FindString(output)
	if match == "" {
		return "", fmt.Errorf("could not parse version from output: %q", output)
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", match, err)
	}
	return v.String(), nil
}
