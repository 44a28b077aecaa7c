package workflow

import (
	"context"

	"metabuild/pkg/logger"
	"metabuild/pkg/runner"
)

// CompileDAOS builds and installs the bundled DAOS tree with a single
// installer invocation.
func CompileDAOS(ctx context.Context, installer Installer, sourceDir string, jobs int) error {
	logger.Infof("compiling DAOS in %s", sourceDir)
	_, err := installer.Install(ctx, sourceDir, jobs)
	return err
}

// RunLocal starts the built artifact with the terminal attached.
func RunLocal(ctx context.Context, artifact runner.CommandRunner, args ...string) error {
	_, err := artifact.RunCommand(ctx, args, runner.Streamed())
	return err
}
