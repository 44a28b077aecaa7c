package scons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metabuild/pkg/runner"
)

func TestInstall(t *testing.T) {
	fake := &runner.FakeCommandRunner{}

	_, err := New(fake).Install(context.Background(), "./lib/daos-cxx/lib/daos", 4)

	require.NoError(t, err)
	require.Len(t, fake.Calls, 1)
	assert.Equal(t, []string{"install", "-j", "4", "--build-deps=yes", "--config=force"}, fake.Calls[0].Args)
	assert.Equal(t, "./lib/daos-cxx/lib/daos", fake.Calls[0].Options.WorkingDir)
	assert.True(t, fake.Calls[0].Options.InheritStdio)
}

func TestInstall_DefaultJobs(t *testing.T) {
	fake := &runner.FakeCommandRunner{}

	_, err := New(fake).Install(context.Background(), "daos", 0)

	require.NoError(t, err)
	assert.Equal(t, "-j", fake.LastArgs()[1])
	assert.NotEqual(t, "0", fake.LastArgs()[2])
	assert.GreaterOrEqual(t, DefaultJobs(), 1)
}
