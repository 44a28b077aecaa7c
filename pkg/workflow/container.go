package workflow

import (
	"context"
	"fmt"
	"path"

	"metabuild/pkg/docker"
	"metabuild/pkg/logger"
)

// DockerDeploy describes moving the artifact out of a build image and into a
// running target container.
type DockerDeploy struct {
	Image        string // image holding the compiled artifact
	Container    string // throwaway container created from Image
	ArtifactPath string // artifact location inside Container
	StagingDir   string // host directory the artifact passes through
	Target       string // running container receiving the artifact
	TargetDir    string
	Command      string // run in Target once the artifact is in place
}

// StagedPath is where the artifact lands on the host between containers.
func (d DockerDeploy) StagedPath() string {
	return path.Join(d.StagingDir, path.Base(d.ArtifactPath))
}

// DockerCompileAndCopy runs create, copy-out, remove, copy-to-target and exec
// in that order. Each step requires the previous one to succeed. A failure
// after create leaves the throwaway container behind.
func DockerCompileAndCopy(ctx context.Context, client ContainerDeployer, d DockerDeploy) error {
	if _, err := client.Create(ctx, d.Image, d.Container); err != nil {
		return fmt.Errorf("create container %s: %w", d.Container, err)
	}

	src := docker.ContainerPath(d.Container, d.ArtifactPath)
	if _, err := client.Copy(ctx, src, d.StagingDir); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}

	if _, err := client.Remove(ctx, d.Container); err != nil {
		return fmt.Errorf("remove container %s: %w", d.Container, err)
	}

	dst := docker.ContainerPath(d.Target, d.TargetDir)
	if _, err := client.Copy(ctx, d.StagedPath(), dst); err != nil {
		return fmt.Errorf("copy %s to %s: %w", d.StagedPath(), dst, err)
	}

	logger.Infof("running %s in %s", d.Command, d.Target)
	if _, err := client.Exec(ctx, d.Target, []string{d.Command}, false); err != nil {
		return fmt.Errorf("exec in %s: %w", d.Target, err)
	}
	return nil
}

// DockerBuild builds the image tagged tag from contextPath.
func DockerBuild(ctx context.Context, client ImageBuilder, contextPath, tag string) error {
	_, err := client.Build(ctx, contextPath, tag)
	return err
}

// ZipkinOptions describe the trace collector container.
type ZipkinOptions struct {
	Image string
	Name  string
	Flags []string
}

// StartZipkin starts the trace collector detached.
func StartZipkin(ctx context.Context, client ContainerStarter, z ZipkinOptions) error {
	_, err := client.Run(ctx, docker.RunOptions{
		Image: z.Image,
		Name:  z.Name,
		Flags: z.Flags,
	})
	if err != nil {
		return fmt.Errorf("start %s: %w", z.Image, err)
	}
	return nil
}
