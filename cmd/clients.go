package cmd

import (
	"metabuild/pkg/cmake"
	"metabuild/pkg/config"
	"metabuild/pkg/docker"
	"metabuild/pkg/remote"
	"metabuild/pkg/runner"
	"metabuild/pkg/scons"
)

// ToolFactory resolves an executable into a runner.
type ToolFactory func(executable string, opts ...runner.ToolOption) (runner.CommandRunner, error)

// NewTool is the ToolFactory backed by the host search path.
func NewTool(executable string, opts ...runner.ToolOption) (runner.CommandRunner, error) {
	t, err := runner.NewTool(executable, opts...)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Clients holds the drivers for one run. Each is built the first time a step
// asks for it and reused afterwards, so a host lacking one tool can still run
// the steps that do not need it.
type Clients struct {
	cfg     *config.Config
	newTool ToolFactory

	cmake    *cmake.CMake
	docker   docker.DockerClient
	ssh      *remote.SSH
	scp      *remote.SCP
	scons    *scons.SCons
	artifact runner.CommandRunner
}

func NewClients(cfg *config.Config, newTool ToolFactory) *Clients {
	if newTool == nil {
		newTool = NewTool
	}
	return &Clients{cfg: cfg, newTool: newTool}
}

func (c *Clients) CMake() (*cmake.CMake, error) {
	if c.cmake == nil {
		t, err := c.newTool(c.cfg.Tools.CMake)
		if err != nil {
			return nil, err
		}
		c.cmake = cmake.New(t, c.cfg.BuildDir)
	}
	return c.cmake, nil
}

func (c *Clients) Docker() (docker.DockerClient, error) {
	if c.docker == nil {
		t, err := c.newTool(c.cfg.Tools.Container)
		if err != nil {
			return nil, err
		}
		c.docker = docker.NewDockerCmdRunner(t)
	}
	return c.docker, nil
}

func (c *Clients) SSH() (*remote.SSH, error) {
	if c.ssh == nil {
		t, err := c.newTool(c.cfg.Tools.SSH)
		if err != nil {
			return nil, err
		}
		c.ssh = remote.NewSSH(t, c.cfg.Cluster.Host, c.cfg.Tools.SSHOptions...)
	}
	return c.ssh, nil
}

func (c *Clients) SCP() (*remote.SCP, error) {
	if c.scp == nil {
		t, err := c.newTool(c.cfg.Tools.SCP)
		if err != nil {
			return nil, err
		}
		c.scp = remote.NewSCP(t, c.cfg.Tools.SCPOptions...)
	}
	return c.scp, nil
}

func (c *Clients) SCons() (*scons.SCons, error) {
	if c.scons == nil {
		t, err := c.newTool(c.cfg.Tools.SCons)
		if err != nil {
			return nil, err
		}
		c.scons = scons.New(t)
	}
	return c.scons, nil
}

// Artifact is the locally built benchmark executable.
func (c *Clients) Artifact() (runner.CommandRunner, error) {
	if c.artifact == nil {
		t, err := c.newTool(c.cfg.Artifact)
		if err != nil {
			return nil, err
		}
		c.artifact = t
	}
	return c.artifact, nil
}
