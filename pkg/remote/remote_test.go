package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metabuild/pkg/domain/errors"
	"metabuild/pkg/runner"
)

func TestSSH_Exec(t *testing.T) {
	fake := &runner.FakeCommandRunner{}
	ssh := NewSSH(fake, "olsky-02")

	require.NoError(t, ssh.Exec(context.Background(), "./bench"))

	assert.Equal(t, "olsky-02", ssh.Host())
	assert.Equal(t, []string{"olsky-02", "./bench"}, fake.LastArgs())
}

func TestSSH_ExecWithOptions(t *testing.T) {
	fake := &runner.FakeCommandRunner{}

	require.NoError(t, NewSSH(fake, "node1", "-o", "BatchMode=yes").Exec(context.Background(), "uptime"))

	assert.Equal(t, []string{"-o", "BatchMode=yes", "node1", "uptime"}, fake.LastArgs())
}

func TestSSH_ExecFailure(t *testing.T) {
	fake := &runner.FakeCommandRunner{Errs: []error{errors.ProcessFailed("ssh", nil, 255, nil)}}

	err := NewSSH(fake, "olsky-02").Exec(context.Background(), "./bench")

	assert.Equal(t, 255, errors.ExitCodeOf(err))
}

func TestSCP_Copy(t *testing.T) {
	fake := &runner.FakeCommandRunner{}

	err := NewSCP(fake).Copy(context.Background(), "./build/bench/bench", RemotePath("olsky-02", "~/"))

	require.NoError(t, err)
	assert.Equal(t, []string{"./build/bench/bench", "olsky-02:~/"}, fake.LastArgs())
}

func TestSCP_CopyWithOptionsDoesNotAlias(t *testing.T) {
	fake := &runner.FakeCommandRunner{}
	scp := NewSCP(fake, "-q")

	require.NoError(t, scp.Copy(context.Background(), "a", "h:b"))
	require.NoError(t, scp.Copy(context.Background(), "c", "h:d"))

	assert.Equal(t, []string{"-q", "a", "h:b"}, fake.Calls[0].Args)
	assert.Equal(t, []string{"-q", "c", "h:d"}, fake.Calls[1].Args)
}
