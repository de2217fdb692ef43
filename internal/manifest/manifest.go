package manifest

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	oerrors "github.com/opmodel/seed/internal/errors"
)

// FileName is the manifest file at the root of a cloned project.
const FileName = "package.json"

// UpdateScriptName is the script injected for pulling template updates.
const UpdateScriptName = "update-template"

// Metadata holds the fields seed overwrites.
type Metadata struct {
	Name        string
	Version     string
	Description string
	Repository  string
	Author      string
}

// fields returns the metadata in the order the keys are written.
func (m Metadata) fields() []struct{ key, value string } {
	return []struct{ key, value string }{
		{"name", m.Name},
		{"version", m.Version},
		{"description", m.Description},
		{"repository", m.Repository},
		{"author", m.Author},
	}
}

// PatchOption configures Patch.
type PatchOption func(*patchConfig)

type patchConfig struct {
	updateRemote string
}

// WithUpdateScript injects scripts.update-template pulling from remote.
func WithUpdateScript(remote string) PatchOption {
	return func(c *patchConfig) {
		c.updateRemote = remote
	}
}

// UpdateScript returns the command line of the update-template script.
func UpdateScript(remote string) string {
	return fmt.Sprintf("git fetch %s && git merge %s", remote, remote)
}

// Patch overwrites the metadata fields in data. Empty values remove the
// field. Existing keys keep their position; new keys are appended. The
// result is indented with two spaces.
func Patch(data []byte, meta Metadata, opts ...PatchOption) ([]byte, error) {
	cfg := &patchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, oerrors.NewValidationError(
			FileName+" is not a JSON object", "", "Check the template repository's "+FileName)
	}

	out := data
	var err error
	for _, f := range meta.fields() {
		if f.value == "" {
			if out, err = sjson.DeleteBytes(out, f.key); err != nil {
				return nil, fmt.Errorf("removing %s: %w", f.key, err)
			}
			continue
		}
		if out, err = sjson.SetBytes(out, f.key, f.value); err != nil {
			return nil, fmt.Errorf("setting %s: %w", f.key, err)
		}
	}

	if cfg.updateRemote != "" {
		if scripts := gjson.GetBytes(out, "scripts"); scripts.Exists() && !scripts.IsObject() {
			return nil, oerrors.NewValidationError("scripts must be an object", "scripts", "")
		}
		out, err = sjson.SetBytes(out, "scripts."+UpdateScriptName, UpdateScript(cfg.updateRemote))
		if err != nil {
			return nil, fmt.Errorf("setting update script: %w", err)
		}
	}

	// A zero Width keeps one array element per line, the way npm writes it.
	return pretty.PrettyOptions(out, &pretty.Options{Indent: "  "}), nil
}

// Read extracts the metadata fields from data. Object-valued repository
// and author fields yield their url and name respectively.
func Read(data []byte) Metadata {
	doc := gjson.ParseBytes(data)

	str := func(path, objectKey string) string {
		v := doc.Get(path)
		if v.IsObject() {
			return v.Get(objectKey).String()
		}
		return v.String()
	}

	return Metadata{
		Name:        doc.Get("name").String(),
		Version:     doc.Get("version").String(),
		Description: doc.Get("description").String(),
		Repository:  str("repository", "url"),
		Author:      str("author", "name"),
	}
}

// Scripts returns the script names defined in data, in document order.
func Scripts(data []byte) []string {
	var names []string
	gjson.GetBytes(data, "scripts").ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	return names
}
