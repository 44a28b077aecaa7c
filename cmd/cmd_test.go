package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metabuild/pkg/domain/errors"
	"metabuild/pkg/logger"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		requested = Steps{}
		configFile, envFile, flagsFile, logLevel, verbose = "metabuild.yaml", ".env", "cmake.in", "", false
		logger.WithRunID("")
		_ = logger.SetLevel("info")
	})
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestRoot_MissingFlagsFile(t *testing.T) {
	dir := t.TempDir()

	err := execute(t,
		"--config", "",
		"--env-file", filepath.Join(dir, ".env"),
		"--flags-file", filepath.Join(dir, "cmake.in"),
		"--configure",
	)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeIoError))
	assert.Equal(t, 1, errors.ExitCodeOf(err))
}

func TestRoot_MissingRequiredConfig(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "--config", filepath.Join(dir, "metabuild.yaml"), "--env-file", "")

	assert.True(t, errors.HasCode(err, errors.CodeIoError))
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	dir := t.TempDir()

	err := execute(t, "--config", "", "--env-file", "", "--log-level", "loud", "--flags-file", filepath.Join(dir, "cmake.in"))

	assert.True(t, errors.HasCode(err, errors.CodeConfigurationInvalid))
}
