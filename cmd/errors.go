package cmd

import (
	"metabuild/pkg/logger"
)

// printToolNotFoundHelp explains how to point metabuild at a tool it could not find
func printToolNotFoundHelp() {
	logger.Error("")
	logger.Error("A required tool is not on PATH:")
	logger.Error("   • install it")
	logger.Error("   • or set its name under tools: in metabuild.yaml (e.g. container: podman)")
	logger.Error("   • or export METABUILD_CMAKE, METABUILD_CONTAINER_ENGINE, METABUILD_SSH, METABUILD_SCP, METABUILD_SCONS")
	logger.Error("")
}
