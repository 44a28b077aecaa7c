package cmd

import (
	"context"

	"metabuild/pkg/config"
	"metabuild/pkg/logger"
	"metabuild/pkg/report"
	"metabuild/pkg/workflow"
)

// Steps are the switches given on the command line.
type Steps struct {
	BuildDAOS     bool
	Clean         bool
	Configure     bool
	Build         bool
	Run           bool
	StartZipkin   bool
	DockerBuild   bool
	ClusterRun    bool
	BuildInDocker bool
}

type step struct {
	name     string
	enabled  bool
	hostOnly bool
	run      func() error
}

// dispatch runs the requested steps in a fixed order and stops at the first
// failure. Inside a container, the host-only steps are skipped and the run
// ends successfully once the build steps are done.
func dispatch(ctx context.Context, cfg *config.Config, s Steps, defines []string, inContainer bool, c *Clients, rep *report.Report) error {
	steps := []step{
		{name: "build_daos", enabled: s.BuildDAOS, run: func() error {
			sc, err := c.SCons()
			if err != nil {
				return err
			}
			return workflow.CompileDAOS(ctx, sc, cfg.DAOS.SourceDir, cfg.DAOS.Jobs)
		}},
		{name: "clean", enabled: s.Clean, run: func() error {
			cm, err := c.CMake()
			if err != nil {
				return err
			}
			return cm.Clean()
		}},
		{name: "configure", enabled: s.Configure, run: func() error {
			cm, err := c.CMake()
			if err != nil {
				return err
			}
			_, err = cm.Configure(ctx, cfg.SourceDir, defines)
			return err
		}},
		{name: "build", enabled: s.Build, run: func() error {
			cm, err := c.CMake()
			if err != nil {
				return err
			}
			_, err = cm.Build(ctx, cfg.BuildJobs)
			return err
		}},
		{name: "run", enabled: s.Run, run: func() error {
			bench, err := c.Artifact()
			if err != nil {
				return err
			}
			return workflow.RunLocal(ctx, bench)
		}},
		{name: "start_zipkin", enabled: s.StartZipkin, hostOnly: true, run: func() error {
			d, err := c.Docker()
			if err != nil {
				return err
			}
			return workflow.StartZipkin(ctx, d, workflow.ZipkinOptions{
				Image: cfg.Zipkin.Image,
				Name:  cfg.Zipkin.Name,
				Flags: cfg.Zipkin.Flags,
			})
		}},
		{name: "docker_build", enabled: s.DockerBuild, hostOnly: true, run: func() error {
			d, err := c.Docker()
			if err != nil {
				return err
			}
			return workflow.DockerBuild(ctx, d, cfg.Docker.BuildContext, cfg.Docker.Tag)
		}},
		{name: "cluster_run", enabled: s.ClusterRun, hostOnly: true, run: func() error {
			cm, err := c.CMake()
			if err != nil {
				return err
			}
			scp, err := c.SCP()
			if err != nil {
				return err
			}
			ssh, err := c.SSH()
			if err != nil {
				return err
			}
			return workflow.RunOnCluster(ctx, cm, defines, scp, ssh, workflow.ClusterTarget{
				SourceDir:   cfg.SourceDir,
				Host:        cfg.Cluster.Host,
				Dir:         cfg.Cluster.Dir,
				Artifact:    cfg.Artifact,
				Command:     cfg.Cluster.Command,
				Parallelism: cfg.BuildJobs,
			})
		}},
		{name: "build_in_docker", enabled: s.BuildInDocker, hostOnly: true, run: func() error {
			d, err := c.Docker()
			if err != nil {
				return err
			}
			return workflow.DockerCompileAndCopy(ctx, d, workflow.DockerDeploy{
				Image:        cfg.Docker.Image,
				Container:    cfg.Docker.Container,
				ArtifactPath: cfg.Docker.ArtifactPath,
				StagingDir:   cfg.Docker.StagingDir,
				Target:       cfg.Docker.Target,
				TargetDir:    cfg.Docker.TargetDir,
				Command:      cfg.Docker.Command,
			})
		}},
	}

	announced := false
	for _, st := range steps {
		if !st.enabled {
			continue
		}
		if st.hostOnly && inContainer {
			if !announced {
				logger.Info("running inside a container, host steps skipped")
				announced = true
			}
			rep.Skip(st.name)
			continue
		}
		logger.Debugf("step %s", st.name)
		if err := rep.Track(st.name, st.run); err != nil {
			return err
		}
	}
	return nil
}
