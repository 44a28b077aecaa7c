package cmd

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"metabuild/pkg/config"
	"metabuild/pkg/domain/errors"
	"metabuild/pkg/logger"
	"metabuild/pkg/report"
)

var (
	configFile string
	envFile    string
	flagsFile  string
	logLevel   string
	verbose    bool

	requested Steps
)

var rootCmd = &cobra.Command{
	Use:   "metabuild",
	Short: "Configure, build and deploy the benchmark",
	Long: `metabuild drives cmake, docker, scons, ssh and scp so the benchmark can be
configured, built, containerized and deployed with single flags.

Steps run in a fixed order: build_daos, clean, configure, build, run,
start_zipkin, docker_build, cluster_run, build_in_docker. Inside a container
only the steps up to run are performed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, cmd.Flags().Changed("config"), envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("flags-file") {
			cfg.FlagsFile = flagsFile
		}

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		if verbose {
			level = "debug"
		}
		if err := logger.SetLevel(level); err != nil {
			return errors.New(errors.CodeConfigurationInvalid, "cmd", "invalid --log-level", err)
		}

		runID := uuid.NewString()
		logger.WithRunID(runID)

		flags, err := config.LoadFlags(cfg.FlagsFile)
		if err != nil {
			return err
		}
		inContainer := config.DetectContainerEnvironment(cfg.ContainerMarker)
		defines := config.Defines(flags, inContainer, cfg.ContainerDAOSDir)
		logger.Debugf("container=%t defines=%v", inContainer, defines)

		rep := report.New(runID)
		defer rep.Write(os.Stderr)

		return dispatch(cmd.Context(), cfg, requested, defines, inContainer, NewClients(cfg, NewTool), rep)
	},
}

// Execute runs the root command and exits with the status of the first
// failure: a failed child's own exit code, 1 for anything else.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Errorf("%v", err)
		if errors.HasCode(err, errors.CodeToolNotFound) {
			printToolNotFoundHelp()
		}
		os.Exit(errors.ExitCodeOf(err))
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&requested.Configure, "configure", false, "Configure the build directory")
	flags.BoolVar(&requested.Build, "build", false, "Build the configured build directory")
	flags.BoolVar(&requested.DockerBuild, "docker_build", false, "Build the container image")
	flags.BoolVar(&requested.Clean, "clean", false, "Remove the build directory")
	flags.BoolVar(&requested.ClusterRun, "cluster_run", false, "Build, copy to the cluster host and run there")
	flags.BoolVar(&requested.BuildInDocker, "build_in_docker", false, "Copy the artifact out of the build image into the target container and run it")
	flags.BoolVar(&requested.BuildDAOS, "build_daos", false, "Build and install the bundled DAOS library")
	flags.BoolVar(&requested.Run, "run", false, "Run the locally built benchmark")
	flags.BoolVar(&requested.StartZipkin, "start_zipkin", false, "Start the zipkin trace collector")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "metabuild.yaml", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before METABUILD_* variables are read")
	rootCmd.PersistentFlags().StringVar(&flagsFile, "flags-file", "cmake.in", "File of configure flags, one per line")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Shorthand for --log-level=debug")
}
