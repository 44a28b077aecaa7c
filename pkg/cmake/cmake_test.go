package cmake

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metabuild/pkg/domain/errors"
	"metabuild/pkg/runner"
)

func TestConfigure_DefinesThenBuildDir(t *testing.T) {
	fake := &runner.FakeCommandRunner{}
	c := New(fake, "build")

	_, err := c.Configure(context.Background(), "", []string{"-DFOO=1", "-DBAR=2"})

	require.NoError(t, err)
	assert.Equal(t, []string{"-DFOO=1", "-DBAR=2", "-B", "build", "."}, fake.LastArgs())
	assert.True(t, fake.Calls[0].Options.InheritStdio)
}

func TestConfigure_NoDefines(t *testing.T) {
	fake := &runner.FakeCommandRunner{}
	c := New(fake, "out")

	_, err := c.Configure(context.Background(), "../src", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"-B", "out", "../src"}, fake.LastArgs())
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		parallelism int
		want        []string
	}{
		{name: "explicit", parallelism: 6, want: []string{"--build", "build", "-j", "6"}},
		{name: "default", parallelism: 0, want: []string{"--build", "build", "-j", strconv.Itoa(DefaultParallelism())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &runner.FakeCommandRunner{}
			_, err := New(fake, "").Build(context.Background(), tt.parallelism)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fake.LastArgs())
		})
	}
}

func TestDefaultParallelism(t *testing.T) {
	want := runtime.NumCPU() - 1
	if want < 1 {
		want = 1
	}
	assert.Equal(t, want, DefaultParallelism())
}

func TestTargetAndRun(t *testing.T) {
	fake := &runner.FakeCommandRunner{}
	c := New(fake, "build")

	_, err := c.Target(context.Background(), "bench")
	require.NoError(t, err)
	assert.Equal(t, []string{"--target", "bench", "build"}, fake.LastArgs())

	_, err = c.Run(context.Background(), "--version")
	require.NoError(t, err)
	assert.Equal(t, []string{"--version"}, fake.LastArgs())
}

func TestBuild_PropagatesProcessFailed(t *testing.T) {
	fake := &runner.FakeCommandRunner{
		Errs: []error{errors.ProcessFailed("cmake", nil, 2, nil)},
	}

	_, err := New(fake, "build").Build(context.Background(), 1)

	assert.True(t, errors.HasCode(err, errors.CodeProcessFailed))
}

func TestClean_RemovesTree(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bench", "CMakeFiles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bench", "bench"), []byte("elf"), 0o755))
	fake := &runner.FakeCommandRunner{}

	require.NoError(t, New(fake, dir).Clean())

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, fake.Calls)
}

func TestClean_MissingDirectory(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "build")

	err := New(&runner.FakeCommandRunner{}, dir).Clean()

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeDirectoryNotFound))
	entries, readErr := os.ReadDir(parent)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestClean_RegularFileIsNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err := New(&runner.FakeCommandRunner{}, file).Clean()

	assert.True(t, errors.HasCode(err, errors.CodeDirectoryNotFound))
	_, statErr := os.Stat(file)
	assert.NoError(t, statErr)
}
