// Package cmake drives the native build tool: configure, build, target and
// clean of a single out-of-source build directory.
package cmake

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"metabuild/pkg/domain/errors"
	"metabuild/pkg/logger"
	"metabuild/pkg/runner"
)

// DefaultBuildDir is the build directory used when none is configured.
const DefaultBuildDir = "build"

// CMake builds argument lists for the cmake executable and hands them to a
// CommandRunner.
type CMake struct {
	runner   runner.CommandRunner
	buildDir string
}

// New returns a driver for the given build directory.
func New(r runner.CommandRunner, buildDir string) *CMake {
	if buildDir == "" {
		buildDir = DefaultBuildDir
	}
	return &CMake{
		runner:   r,
		buildDir: buildDir,
	}
}

// BuildDir returns the out-of-source build directory.
func (c *CMake) BuildDir() string {
	return c.buildDir
}

// DefaultParallelism is one less than the host core count, and at least 1.
func DefaultParallelism() int {
	if n := runtime.NumCPU() - 1; n > 0 {
		return n
	}
	return 1
}

// Configure generates the build directory from sourcePath. Defines are passed
// first, in order, followed by -B <build-dir> <source-path>.
func (c *CMake) Configure(ctx context.Context, sourcePath string, defines []string) (*runner.Result, error) {
	if sourcePath == "" {
		sourcePath = "."
	}
	args := make([]string, 0, len(defines)+3)
	args = append(args, defines...)
	args = append(args, "-B", c.buildDir, sourcePath)
	return c.runner.RunCommand(ctx, args, runner.Streamed())
}

// Build compiles the configured build directory with the given number of
// parallel jobs; parallelism <= 0 means DefaultParallelism.
func (c *CMake) Build(ctx context.Context, parallelism int) (*runner.Result, error) {
	if parallelism <= 0 {
		parallelism = DefaultParallelism()
	}
	return c.runner.RunCommand(ctx, []string{"--build", c.buildDir, "-j", strconv.Itoa(parallelism)}, runner.Streamed())
}

// Target builds a single named target.
func (c *CMake) Target(ctx context.Context, name string) (*runner.Result, error) {
	return c.runner.RunCommand(ctx, []string{"--target", name, c.buildDir}, runner.Streamed())
}

// Run passes args through to cmake unchanged.
func (c *CMake) Run(ctx context.Context, args ...string) (*runner.Result, error) {
	return c.runner.RunCommand(ctx, args, runner.Streamed())
}

// Clean removes the build directory tree. It fails with DIRECTORY_NOT_FOUND,
// touching nothing, when the directory does not exist.
func (c *CMake) Clean() error {
	info, err := os.Stat(c.buildDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.DirectoryNotFound("cmake", c.buildDir, err)
		}
		return errors.New(errors.CodeIoError, "cmake", fmt.Sprintf("failed to stat %s", c.buildDir), err)
	}
	if !info.IsDir() {
		return errors.DirectoryNotFound("cmake", c.buildDir, nil)
	}

	logger.Infof("removing build directory %s", c.buildDir)
	if err := os.RemoveAll(c.buildDir); err != nil {
		return errors.New(errors.CodeIoError, "cmake", fmt.Sprintf("failed to remove %s", c.buildDir), err)
	}
	return nil
}
