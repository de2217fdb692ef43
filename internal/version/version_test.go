package version

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{name: "git", output: "git version 2.43.0\n", want: "2.43.0"},
		{name: "yarn classic", output: "1.22.22\n", want: "1.22.22"},
		{name: "npm", output: "10.8.2", want: "10.8.2"},
		{name: "two components", output: "tool 3.1", want: "3.1.0"},
		{name: "with v prefix", output: "v9.12.3", want: "9.12.3"},
		{name: "prerelease", output: "pnpm 10.0.0-rc.1", want: "10.0.0-rc.1"},
		{name: "no version", output: "command not understood", wantErr: true},
		{name: "empty", output: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractVersion(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBinaryInfoString(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		b := BinaryInfo{Name: "yarn"}
		assert.Contains(t, b.String(), "not found")
	})

	t.Run("found", func(t *testing.T) {
		b := BinaryInfo{Name: "git", Version: "2.43.0", Path: "/usr/bin/git", Found: true}
		s := b.String()
		assert.Contains(t, s, "2.43.0")
		assert.Contains(t, s, "/usr/bin/git")
	})
}

func TestDetectBinaryMissing(t *testing.T) {
	info := DetectBinary(context.Background(), "seed-no-such-binary-xyz")

	assert.False(t, info.Found)
	assert.Equal(t, "seed-no-such-binary-xyz", info.Name)
	assert.Contains(t, info.Message, "not found in PATH")
}

func TestFullVersionString(t *testing.T) {
	info := Info{Version: "v1.2.3", GitCommit: "abc", BuildDate: "today", GoVersion: "go1.25"}
	s := FullVersionString(info,
		BinaryInfo{Name: "git", Version: "2.43.0", Path: "/usr/bin/git", Found: true},
		BinaryInfo{Name: "yarn"},
	)

	assert.Contains(t, s, "v1.2.3")
	assert.Contains(t, s, "Tools:")
	assert.Contains(t, s, "2.43.0")
	assert.Contains(t, s, "yarn")
}
