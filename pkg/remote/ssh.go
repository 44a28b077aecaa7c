// Package remote wraps ssh and scp for single-shot remote execution and file
// transfer. Authentication is left to the transport's own configuration.
package remote

import (
	"context"

	"metabuild/pkg/runner"
)

// Shell runs one command on a remote host.
type Shell interface {
	Exec(ctx context.Context, command string) error
}

// SSH runs commands on a fixed host.
type SSH struct {
	runner  runner.CommandRunner
	host    string
	options []string
}

var _ Shell = &SSH{}

// NewSSH binds an ssh runner to host. options are passed before the host,
// e.g. -o BatchMode=yes.
func NewSSH(r runner.CommandRunner, host string, options ...string) *SSH {
	return &SSH{runner: r, host: host, options: options}
}

// Host returns the remote host commands run on.
func (s *SSH) Host() string {
	return s.host
}

// Exec runs command on the host in one session. Output goes to the terminal;
// only success or failure is reported back.
func (s *SSH) Exec(ctx context.Context, command string) error {
	args := append(append([]string(nil), s.options...), s.host, command)
	_, err := s.runner.RunCommand(ctx, args, runner.Streamed())
	return err
}
