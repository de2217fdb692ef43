// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"slices"
	"strings"

	oerrors "github.com/opmodel/seed/internal/errors"
)

// Default values.
const (
	DefaultPackageManager = "yarn"
	DefaultTemplateRemote = "template"
)

// ValidPackageManagers returns the package managers seed can drive.
func ValidPackageManagers() []string {
	return []string{"yarn", "npm", "pnpm"}
}

// Config represents the seed CLI configuration.
// Loaded from ~/.seed/config.yaml; every key can be overridden by a
// SEED_-prefixed environment variable.
type Config struct {
	// Author is offered as the default package author.
	// Env: SEED_AUTHOR
	Author string `mapstructure:"author" yaml:"author"`

	// Version is offered as the default package version.
	// Env: SEED_VERSION, Default: 0.1.0
	Version string `mapstructure:"version" yaml:"version,omitempty"`

	// PackageManager installs dependencies: yarn, npm or pnpm.
	// Env: SEED_PACKAGE_MANAGER, Default: yarn
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager"`

	// TemplateRemote is the name the template's origin remote is renamed to.
	// Env: SEED_TEMPLATE_REMOTE, Default: template
	TemplateRemote string `mapstructure:"templateRemote" yaml:"templateRemote"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `seed config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
		TemplateRemote: DefaultTemplateRemote,
	}
}

// WithDefaults returns a copy of c with empty fields set to defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.PackageManager == "" {
		out.PackageManager = DefaultPackageManager
	}
	if out.TemplateRemote == "" {
		out.TemplateRemote = DefaultTemplateRemote
	}
	return &out
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if c.PackageManager != "" && !slices.Contains(ValidPackageManagers(), c.PackageManager) {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown package manager: %s", c.PackageManager),
			"packageManager",
			fmt.Sprintf("Valid package managers: %s", strings.Join(ValidPackageManagers(), ", ")),
		)
	}
	if strings.ContainsAny(c.TemplateRemote, " \t/") {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid remote name: %q", c.TemplateRemote),
			"templateRemote", "Use a plain git remote name such as 'template'")
	}
	return nil
}
