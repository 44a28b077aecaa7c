package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metabuild/pkg/domain/errors"
)

func TestDetectContainerEnvironment(t *testing.T) {
	dir := t.TempDir()
	marker := writeFile(t, dir, ".dockerenv", "")

	assert.True(t, DetectContainerEnvironment(marker))
	assert.False(t, DetectContainerEnvironment(filepath.Join(dir, "absent")))
	assert.False(t, DetectContainerEnvironment(""))
}

func TestLoadFlags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "one per line", content: "-DFOO=1\n-DBAR=2\n", want: []string{"-DFOO=1", "-DBAR=2"}},
		{name: "no trailing newline", content: "-DFOO=1\n-DBAR=2", want: []string{"-DFOO=1", "-DBAR=2"}},
		{name: "crlf", content: "-DFOO=1\r\n-DBAR=2\r\n", want: []string{"-DFOO=1", "-DBAR=2"}},
		{name: "blank lines and comments", content: "# toolchain\n\n-DCMAKE_BUILD_TYPE=Release\n\n", want: []string{"-DCMAKE_BUILD_TYPE=Release"}},
		{name: "empty", content: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "cmake.in", tt.content)
			got, err := LoadFlags(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFlags_Missing(t *testing.T) {
	_, err := LoadFlags(filepath.Join(t.TempDir(), "cmake.in"))

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeIoError))
}

func TestDefines(t *testing.T) {
	flags := []string{"-DFOO=1", "-DBAR=2"}

	assert.Equal(t, []string{"-DFOO=1", "-DBAR=2"}, Defines(flags, false, "/daos/install"))
	assert.Equal(t, []string{"-DFOO=1", "-DBAR=2", "-DDAOS_DIR=/daos/install"}, Defines(flags, true, "/daos/install"))
	assert.Equal(t, []string{"-DFOO=1", "-DBAR=2"}, flags)
}
