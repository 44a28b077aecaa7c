package remote

import (
	"context"

	"metabuild/pkg/runner"
)

// Copier transfers one path; either side may be remote.
type Copier interface {
	Copy(ctx context.Context, src, dst string) error
}

type SCP struct {
	runner  runner.CommandRunner
	options []string
}

var _ Copier = &SCP{}

func NewSCP(r runner.CommandRunner, options ...string) *SCP {
	return &SCP{runner: r, options: options}
}

// Copy transfers src to dst. Prefix an endpoint with RemotePath to make it remote.
func (s *SCP) Copy(ctx context.Context, src, dst string) error {
	args := append(append([]string(nil), s.options...), src, dst)
	_, err := s.runner.RunCommand(ctx, args, runner.Streamed())
	return err
}

// RemotePath addresses path on host in scp syntax.
func RemotePath(host, path string) string {
	return host + ":" + path
}
