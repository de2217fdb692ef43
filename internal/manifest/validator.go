package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	oerrors "github.com/opmodel/seed/internal/errors"
)

//go:embed schema/package.schema.json
var schemaBytes []byte

const schemaURL = "package.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks a patched manifest against the embedded schema.
// Schema violations are returned as a validation error listing each
// offending location.
func Validate(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("parsing %s: %v", FileName, err), "", "")
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validating %s: %w", FileName, err)
	}

	issues := collectIssues(verr)
	return oerrors.NewValidationError(
		fmt.Sprintf("%s does not match the expected shape:\n    %s", FileName, strings.Join(issues, "\n    ")),
		"", "Fix the template's "+FileName+" or the values passed to seed")
}

// collectIssues flattens the leaf causes of a validation error into
// sorted, de-duplicated "location: message" lines.
func collectIssues(verr *jsonschema.ValidationError) []string {
	seen := make(map[string]bool)
	var issues []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, c := range e.Causes {
				walk(c)
			}
			return
		}
		if e.ErrorKind == nil {
			return
		}
		issue := fmt.Sprintf("/%s: %s", strings.Join(e.InstanceLocation, "/"), e.ErrorKind.LocalizedString(printer))
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}
	walk(verr)
	if len(issues) == 0 {
		issues = append(issues, verr.Error())
	}
	sort.Strings(issues)
	return issues
}
