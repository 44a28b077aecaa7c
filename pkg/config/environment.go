package config

import (
	"fmt"
	"os"
	"strings"

	"metabuild/pkg/domain/errors"
)

// DetectContainerEnvironment reports whether marker exists. Query it once at
// startup and pass the answer along.
func DetectContainerEnvironment(marker string) bool {
	if marker == "" {
		return false
	}
	_, err := os.Stat(marker)
	return err == nil
}

// LoadFlags reads one configuration token per line, preserving order. Blank
// lines and lines starting with # are skipped.
func LoadFlags(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeIoError, "config", fmt.Sprintf("failed to read flags file %s", path), err)
	}
	var flags []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		flags = append(flags, line)
	}
	return flags, nil
}

// ContainerDefine points the build at the DAOS install inside the container image.
func ContainerDefine(daosDir string) string {
	return "-DDAOS_DIR=" + daosDir
}

// Defines returns the configure defines for this environment: the flags
// file contents, plus ContainerDefine when running inside a container.
func Defines(flags []string, inContainer bool, containerDAOSDir string) []string {
	defines := append([]string(nil), flags...)
	if inContainer {
		defines = append(defines, ContainerDefine(containerDAOSDir))
	}
	return defines
}
