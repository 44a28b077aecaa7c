// Package docker drives a docker-CLI-compatible container engine.
package docker

import (
	"fmt"
	"slices"
	"strings"
)

// Engines lists the executables accepted as a container engine. podman
// understands every subcommand the driver issues.
var Engines = []string{"docker", "podman"}

// ValidateEngine checks that name is a supported engine executable.
func ValidateEngine(name string) error {
	if !slices.Contains(Engines, name) {
		return fmt.Errorf("unsupported container engine %q, options: %s", name, strings.Join(Engines, ", "))
	}
	return nil
}

// ContainerPath addresses path inside container for `cp`.
func ContainerPath(container, path string) string {
	return container + ":" + path
}
