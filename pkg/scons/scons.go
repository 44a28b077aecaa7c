// Package scons drives the SCons build of the bundled DAOS library.
package scons

import (
	"context"
	"runtime"
	"strconv"

	"metabuild/pkg/runner"
)

type SCons struct {
	runner runner.CommandRunner
}

func New(r runner.CommandRunner) *SCons {
	return &SCons{runner: r}
}

// DefaultJobs is two less than the host core count, and at least 1.
func DefaultJobs() int {
	if n := runtime.NumCPU() - 2; n > 0 {
		return n
	}
	return 1
}

// Install builds and installs the project in sourceDir, fetching its
// dependencies and forcing reconfiguration. jobs <= 0 means DefaultJobs.
func (s *SCons) Install(ctx context.Context, sourceDir string, jobs int) (*runner.Result, error) {
	if jobs <= 0 {
		jobs = DefaultJobs()
	}
	args := []string{"install", "-j", strconv.Itoa(jobs), "--build-deps=yes", "--config=force"}
	opts := runner.Streamed()
	opts.WorkingDir = sourceDir
	return s.runner.RunCommand(ctx, args, opts)
}
