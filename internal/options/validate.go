package options

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/opmodel/seed/internal/errors"
)

// Validator normalizes a raw value or rejects it with a validation error.
// Validators must be pure: they run on command-line values and on
// interactive answers alike.
type Validator func(raw string) (string, error)

// NonEmpty rejects values that are empty after trimming whitespace.
func NonEmpty(field string) Validator {
	return func(raw string) (string, error) {
		v := strings.TrimSpace(raw)
		if v == "" {
			return "", oerrors.NewValidationError(
				fmt.Sprintf("%s cannot be empty", field), field, "")
		}
		return v, nil
	}
}

// SemVer accepts a strict semantic version such as 1.2.3 or 1.0.0-rc.1.
func SemVer(field string) Validator {
	return func(raw string) (string, error) {
		v := strings.TrimSpace(raw)
		if _, err := semver.StrictNewVersion(v); err != nil {
			return "", oerrors.NewValidationError(
				fmt.Sprintf("%s %q is not a valid semantic version: %v", field, v, err),
				field, "Use MAJOR.MINOR.PATCH, for example 0.1.0")
		}
		return v, nil
	}
}

// packageNameRe matches an optionally scoped npm package name.
var packageNameRe = regexp.MustCompile(`^(?:@[a-z0-9][a-z0-9._~-]*/)?[a-z0-9][a-z0-9._~-]*$`)

const maxPackageNameLength = 214

// PackageName accepts names the npm registry would publish.
func PackageName(field string) Validator {
	return func(raw string) (string, error) {
		v := strings.TrimSpace(raw)
		switch {
		case len(v) > maxPackageNameLength:
			return "", oerrors.NewValidationError(
				fmt.Sprintf("%s must be at most %d characters", field, maxPackageNameLength), field, "")
		case !packageNameRe.MatchString(v):
			return "", oerrors.NewValidationError(
				fmt.Sprintf("%s %q is not a valid package name", field, v), field,
				"Use lower case letters, digits, '-', '.', '_' and an optional @scope/ prefix")
		}
		return v, nil
	}
}

// Chain runs validators left to right, feeding each the previous output.
func Chain(validators ...Validator) Validator {
	return func(raw string) (string, error) {
		v := raw
		for _, validate := range validators {
			var err error
			if v, err = validate(v); err != nil {
				return "", err
			}
		}
		return v, nil
	}
}

// SplitList splits s on runs of whitespace. Order and duplicates are kept;
// empty or all-whitespace input yields nil.
func SplitList(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
