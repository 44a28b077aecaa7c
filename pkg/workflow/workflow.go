// Package workflow sequences the drivers into the multi-step routines the
// command line exposes. Every routine stops at the first failing step and
// returns its error unchanged; nothing is retried or rolled back.
package workflow

import (
	"context"

	"metabuild/pkg/docker"
	"metabuild/pkg/runner"
)

// ProjectBuilder configures and compiles the local build directory.
type ProjectBuilder interface {
	Configure(ctx context.Context, sourcePath string, defines []string) (*runner.Result, error)
	Build(ctx context.Context, parallelism int) (*runner.Result, error)
}

// ContainerDeployer is the part of the container driver needed to move an
// artifact from one container to another.
type ContainerDeployer interface {
	Create(ctx context.Context, image, name string) (*runner.Result, error)
	Copy(ctx context.Context, src, dst string) (*runner.Result, error)
	Remove(ctx context.Context, id string) (*runner.Result, error)
	Exec(ctx context.Context, container string, command []string, interactive bool) (*runner.Result, error)
}

type ImageBuilder interface {
	Build(ctx context.Context, contextPath, tag string) (*runner.Result, error)
}

type ContainerStarter interface {
	Run(ctx context.Context, opts docker.RunOptions) (*runner.Result, error)
}

// Installer builds and installs a third-party source tree.
type Installer interface {
	Install(ctx context.Context, sourceDir string, jobs int) (*runner.Result, error)
}

var (
	_ ContainerDeployer = docker.DockerClient(nil)
	_ ImageBuilder      = docker.DockerClient(nil)
	_ ContainerStarter  = docker.DockerClient(nil)
)
