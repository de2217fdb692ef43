package options

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/seed/internal/errors"
)

func TestNonEmpty(t *testing.T) {
	validate := NonEmpty("name")

	v, err := validate("  widgets ")
	require.NoError(t, err)
	assert.Equal(t, "widgets", v)

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := validate(raw)
		require.Error(t, err, "input %q", raw)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
		assert.Contains(t, err.Error(), "name cannot be empty")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "runs of spaces", in: "a  b   c", want: []string{"a", "b", "c"}},
		{name: "tabs and newlines", in: "\treact\nreact-dom ", want: []string{"react", "react-dom"}},
		{name: "duplicates kept", in: "a b a", want: []string{"a", "b", "a"}},
		{name: "empty", in: "", want: nil},
		{name: "all whitespace", in: "   \t ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSemVer(t *testing.T) {
	validate := SemVer("version")

	for _, ok := range []string{"0.1.0", "1.2.3", "1.0.0-rc.1", "2.0.0+build.5"} {
		v, err := validate(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, ok, v)
	}

	for _, bad := range []string{"", "1", "1.2", "v1.2.3", "latest"} {
		_, err := validate(bad)
		assert.ErrorIs(t, err, oerrors.ErrValidation, bad)
	}
}

func TestPackageName(t *testing.T) {
	validate := PackageName("name")

	for _, ok := range []string{"widgets", "@acme/widgets", "my-app.js", "a_b~c"} {
		_, err := validate(ok)
		assert.NoError(t, err, ok)
	}

	for _, bad := range []string{"Widgets", "my app", ".hidden", "_private", "@acme", "a/b", strings.Repeat("a", 215)} {
		_, err := validate(bad)
		assert.ErrorIs(t, err, oerrors.ErrValidation, bad)
	}
}

func TestChain(t *testing.T) {
	validate := Chain(NonEmpty("name"), PackageName("name"))

	v, err := validate("  widgets  ")
	require.NoError(t, err)
	assert.Equal(t, "widgets", v)

	_, err = validate("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty", "first failing validator wins")
}
