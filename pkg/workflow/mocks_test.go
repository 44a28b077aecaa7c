package workflow

import (
	"context"

	"github.com/stretchr/testify/mock"

	"metabuild/pkg/docker"
	"metabuild/pkg/runner"
)

// recorder collects step names across mocks so tests can assert order.
type recorder struct {
	steps []string
}

func (r *recorder) step(name string) func(mock.Arguments) {
	return func(mock.Arguments) { r.steps = append(r.steps, name) }
}

func result(args mock.Arguments) (*runner.Result, error) {
	res, _ := args.Get(0).(*runner.Result)
	return res, args.Error(1)
}

type MockBuilder struct {
	mock.Mock
}

func (m *MockBuilder) Configure(ctx context.Context, sourcePath string, defines []string) (*runner.Result, error) {
	return result(m.Called(ctx, sourcePath, defines))
}

func (m *MockBuilder) Build(ctx context.Context, parallelism int) (*runner.Result, error) {
	return result(m.Called(ctx, parallelism))
}

type MockCopier struct {
	mock.Mock
}

func (m *MockCopier) Copy(ctx context.Context, src, dst string) error {
	return m.Called(ctx, src, dst).Error(0)
}

type MockShell struct {
	mock.Mock
}

func (m *MockShell) Exec(ctx context.Context, command string) error {
	return m.Called(ctx, command).Error(0)
}

type MockDocker struct {
	mock.Mock
}

func (m *MockDocker) Create(ctx context.Context, image, name string) (*runner.Result, error) {
	return result(m.Called(ctx, image, name))
}

func (m *MockDocker) Copy(ctx context.Context, src, dst string) (*runner.Result, error) {
	return result(m.Called(ctx, src, dst))
}

func (m *MockDocker) Remove(ctx context.Context, id string) (*runner.Result, error) {
	return result(m.Called(ctx, id))
}

func (m *MockDocker) Build(ctx context.Context, contextPath, tag string) (*runner.Result, error) {
	return result(m.Called(ctx, contextPath, tag))
}

func (m *MockDocker) Run(ctx context.Context, opts docker.RunOptions) (*runner.Result, error) {
	return result(m.Called(ctx, opts))
}

func (m *MockDocker) Exec(ctx context.Context, container string, command []string, interactive bool) (*runner.Result, error) {
	return result(m.Called(ctx, container, command, interactive))
}

var _ docker.DockerClient = &MockDocker{}

type MockInstaller struct {
	mock.Mock
}

func (m *MockInstaller) Install(ctx context.Context, sourceDir string, jobs int) (*runner.Result, error) {
	return result(m.Called(ctx, sourceDir, jobs))
}
