package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"metabuild/pkg/docker"
	"metabuild/pkg/domain/errors"
)

// Config holds every fixed name the orchestration relies on. Defaults match
// the benchmark repository layout.
type Config struct {
	SourceDir        string `yaml:"source_dir"`
	BuildDir         string `yaml:"build_dir"`
	BuildJobs        int    `yaml:"build_jobs"` // 0 means cores minus one
	Artifact         string `yaml:"artifact"`
	FlagsFile        string `yaml:"flags_file"`
	ContainerMarker  string `yaml:"container_marker"`
	ContainerDAOSDir string `yaml:"container_daos_dir"`
	LogLevel         string `yaml:"log_level"`

	Tools   Tools   `yaml:"tools"`
	DAOS    DAOS    `yaml:"daos"`
	Cluster Cluster `yaml:"cluster"`
	Docker  Docker  `yaml:"docker"`
	Zipkin  Zipkin  `yaml:"zipkin"`
}

// Tools names the executables looked up on the search path.
type Tools struct {
	CMake      string   `yaml:"cmake"`
	Container  string   `yaml:"container"`
	SSH        string   `yaml:"ssh"`
	SCP        string   `yaml:"scp"`
	SCons      string   `yaml:"scons"`
	SSHOptions []string `yaml:"ssh_options"`
	SCPOptions []string `yaml:"scp_options"`
}

type DAOS struct {
	SourceDir string `yaml:"source_dir"`
	Jobs      int    `yaml:"jobs"` // 0 means cores minus two
}

type Cluster struct {
	Host    string `yaml:"host"`
	Dir     string `yaml:"dir"`
	Command string `yaml:"command"`
}

type Docker struct {
	Image        string `yaml:"image"`
	Container    string `yaml:"container"`
	ArtifactPath string `yaml:"artifact_path"`
	StagingDir   string `yaml:"staging_dir"`
	Target       string `yaml:"target"`
	TargetDir    string `yaml:"target_dir"`
	Command      string `yaml:"command"`
	BuildContext string `yaml:"build_context"`
	Tag          string `yaml:"tag"`
}

type Zipkin struct {
	Image string   `yaml:"image"`
	Name  string   `yaml:"name"`
	Flags []string `yaml:"flags"`
}

// DefaultConfig returns the layout of the benchmark repository.
func DefaultConfig() *Config {
	return &Config{
		SourceDir:        ".",
		BuildDir:         "build",
		Artifact:         "./build/bench/bench",
		FlagsFile:        "cmake.in",
		ContainerMarker:  "/.dockerenv",
		ContainerDAOSDir: "/daos/install",
		LogLevel:         "info",
		Tools: Tools{
			CMake:     "cmake",
			Container: "docker",
			SSH:       "ssh",
			SCP:       "scp",
			SCons:     "scons-3",
		},
		DAOS: DAOS{
			SourceDir: "./lib/daos-cxx/lib/daos",
		},
		Cluster: Cluster{
			Host:    "olsky-02",
			Dir:     "~/",
			Command: "./bench",
		},
		Docker: Docker{
			Image:        "adb",
			Container:    "dummy",
			ArtifactPath: "/app/build/bench/bench",
			StagingDir:   "/tmp/",
			Target:       "daos-client",
			TargetDir:    "/",
			Command:      "./bench",
			BuildContext: ".",
			Tag:          "adb",
		},
		Zipkin: Zipkin{
			Image: "openzipkin/zipkin",
			Name:  "zipkin",
			Flags: []string{"-d", "-p", "9411:9411"},
		},
	}
}

// Load applies, in order: defaults, the YAML file at configFile, the
// variables of envFile, and METABUILD_* environment variables. A missing
// configFile is an error only when requireFile is set; a missing envFile is
// never an error.
func Load(configFile string, requireFile bool, envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		if err := cfg.loadFile(configFile); err != nil {
			if !os.IsNotExist(err) || requireFile {
				return nil, errors.New(errors.CodeIoError, "config", fmt.Sprintf("failed to load %s", configFile), err)
			}
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.New(errors.CodeIoError, "config", "failed to load .env file", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.New(errors.CodeConfigurationInvalid, "config", "invalid configuration", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func loadFromEnv(cfg *Config) {
	setString(&cfg.SourceDir, "METABUILD_SOURCE_DIR")
	setString(&cfg.BuildDir, "METABUILD_BUILD_DIR")
	setInt(&cfg.BuildJobs, "METABUILD_BUILD_JOBS")
	setString(&cfg.Artifact, "METABUILD_ARTIFACT")
	setString(&cfg.FlagsFile, "METABUILD_FLAGS_FILE")
	setString(&cfg.ContainerMarker, "METABUILD_CONTAINER_MARKER")
	setString(&cfg.ContainerDAOSDir, "METABUILD_CONTAINER_DAOS_DIR")
	setString(&cfg.LogLevel, "METABUILD_LOG_LEVEL")

	setString(&cfg.Tools.CMake, "METABUILD_CMAKE")
	setString(&cfg.Tools.Container, "METABUILD_CONTAINER_ENGINE")
	setString(&cfg.Tools.SSH, "METABUILD_SSH")
	setString(&cfg.Tools.SCP, "METABUILD_SCP")
	setString(&cfg.Tools.SCons, "METABUILD_SCONS")
	if v := os.Getenv("METABUILD_SSH_OPTIONS"); v != "" {
		cfg.Tools.SSHOptions = strings.Fields(v)
	}
	if v := os.Getenv("METABUILD_SCP_OPTIONS"); v != "" {
		cfg.Tools.SCPOptions = strings.Fields(v)
	}

	setString(&cfg.DAOS.SourceDir, "METABUILD_DAOS_SOURCE_DIR")
	setInt(&cfg.DAOS.Jobs, "METABUILD_DAOS_JOBS")

	setString(&cfg.Cluster.Host, "METABUILD_CLUSTER_HOST")
	setString(&cfg.Cluster.Dir, "METABUILD_CLUSTER_DIR")
	setString(&cfg.Docker.Image, "METABUILD_DOCKER_IMAGE")
	setString(&cfg.Docker.Target, "METABUILD_DOCKER_TARGET")
	setString(&cfg.Docker.StagingDir, "METABUILD_STAGING_DIR")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Validate checks the fields every workflow depends on.
func (c *Config) Validate() error {
	required := map[string]string{
		"build_dir":          c.BuildDir,
		"flags_file":         c.FlagsFile,
		"tools.cmake":        c.Tools.CMake,
		"tools.container":    c.Tools.Container,
		"tools.ssh":          c.Tools.SSH,
		"tools.scp":          c.Tools.SCP,
		"tools.scons":        c.Tools.SCons,
		"cluster.host":       c.Cluster.Host,
		"docker.image":       c.Docker.Image,
		"docker.container":   c.Docker.Container,
		"docker.target":      c.Docker.Target,
		"docker.staging_dir": c.Docker.StagingDir,
	}
	var missing []string
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	if err := docker.ValidateEngine(c.Tools.Container); err != nil {
		return err
	}
	if c.BuildJobs < 0 {
		return fmt.Errorf("build_jobs must not be negative")
	}
	if c.DAOS.Jobs < 0 {
		return fmt.Errorf("daos.jobs must not be negative")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	valid := false
	for _, level := range validLogLevels {
		if c.LogLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
	return nil
}
