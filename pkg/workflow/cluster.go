package workflow

import (
	"context"
	"fmt"

	"metabuild/pkg/logger"
	"metabuild/pkg/remote"
)

// ClusterTarget names where the artifact goes and how it is started there.
type ClusterTarget struct {
	SourceDir   string // configure source, "." when empty
	Host        string
	Dir         string
	Artifact    string
	Command     string
	Parallelism int
}

// RunOnCluster builds locally, copies the artifact to the host and runs it
// there over ssh. A failed build performs no network action and a failed copy
// skips remote execution.
func RunOnCluster(ctx context.Context, builder ProjectBuilder, defines []string, copier remote.Copier, shell remote.Shell, target ClusterTarget) error {
	logger.Infof("building for cluster host %s", target.Host)
	src := target.SourceDir
	if src == "" {
		src = "."
	}
	if _, err := builder.Configure(ctx, src, defines); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	if _, err := builder.Build(ctx, target.Parallelism); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	dst := remote.RemotePath(target.Host, target.Dir)
	if err := copier.Copy(ctx, target.Artifact, dst); err != nil {
		return fmt.Errorf("copy %s to %s: %w", target.Artifact, dst, err)
	}

	if err := shell.Exec(ctx, target.Command); err != nil {
		return fmt.Errorf("run %q on %s: %w", target.Command, target.Host, err)
	}
	return nil
}
