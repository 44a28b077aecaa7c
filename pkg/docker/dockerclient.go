package docker

import (
	"context"

	"metabuild/pkg/runner"
)

type DockerClient interface {
	Create(ctx context.Context, image, name string) (*runner.Result, error)
	Copy(ctx context.Context, src, dst string) (*runner.Result, error)
	Remove(ctx context.Context, id string) (*runner.Result, error)
	Build(ctx context.Context, contextPath, tag string) (*runner.Result, error)
	Run(ctx context.Context, opts RunOptions) (*runner.Result, error)
	Exec(ctx context.Context, container string, command []string, interactive bool) (*runner.Result, error)
}

// RunOptions describes a `run` invocation.
type RunOptions struct {
	Image       string
	Name        string
	Flags       []string // passed before --name, e.g. -d -p 9411:9411
	Command     []string // appended after the image
	Interactive bool     // adds -it
}

type DockerCmdRunner struct {
	runner runner.CommandRunner
}

var _ DockerClient = &DockerCmdRunner{}

func NewDockerCmdRunner(runner runner.CommandRunner) DockerClient {
	return &DockerCmdRunner{
		runner: runner,
	}
}

// Create makes a stopped container; the container id is captured in Stdout.
func (d *DockerCmdRunner) Create(ctx context.Context, image, name string) (*runner.Result, error) {
	return d.runner.RunCommand(ctx, []string{"create", "--name", name, image}, runner.Captured())
}

// Copy copies between the host and a container; use ContainerPath for the container side.
func (d *DockerCmdRunner) Copy(ctx context.Context, src, dst string) (*runner.Result, error) {
	return d.runner.RunCommand(ctx, []string{"cp", src, dst}, runner.Streamed())
}

func (d *DockerCmdRunner) Remove(ctx context.Context, id string) (*runner.Result, error) {
	return d.runner.RunCommand(ctx, []string{"rm", id}, runner.Streamed())
}

func (d *DockerCmdRunner) Build(ctx context.Context, contextPath, tag string) (*runner.Result, error) {
	if contextPath == "" {
		contextPath = "."
	}
	return d.runner.RunCommand(ctx, []string{"build", "-t", tag, contextPath}, runner.Streamed())
}

func (d *DockerCmdRunner) Run(ctx context.Context, opts RunOptions) (*runner.Result, error) {
	args := []string{"run"}
	if opts.Interactive {
		args = append(args, "-it")
	}
	args = append(args, opts.Flags...)
	if opts.Name != "" {
		args = append(args, "--name", opts.Name)
	}
	args = append(args, opts.Image)
	args = append(args, opts.Command...)
	return d.runner.RunCommand(ctx, args, runner.Streamed())
}

func (d *DockerCmdRunner) Exec(ctx context.Context, container string, command []string, interactive bool) (*runner.Result, error) {
	args := []string{"exec"}
	if interactive {
		args = append(args, "-it")
	}
	args = append(args, container)
	args = append(args, command...)
	return d.runner.RunCommand(ctx, args, runner.Streamed())
}
