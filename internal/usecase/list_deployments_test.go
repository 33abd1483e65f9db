package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

// MockDeploymentAPI is a mock implementation of DeploymentAPI
type MockDeploymentAPI struct {
	mock.Mock
}

func (m *MockDeploymentAPI) ListDeployments(ctx context.Context) ([]domain.Deployment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deployment), args.Error(1)
}

func (m *MockDeploymentAPI) DeleteDeployment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

func TestListDeployments(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	deployments := []domain.Deployment{
		preview("v1", now.Add(-time.Hour)),
		prod("p1", now),
		preview("v2", now.Add(time.Hour)),
		prod("p0", now.Add(-2*time.Hour)),
	}

	t.Run("lists all deployments newest first", func(t *testing.T) {
		api := new(MockDeploymentAPI)
		api.On("ListDeployments", ctx).Return(deployments, nil)
		sink := &MockProgressSink{}

		uc := usecase.NewListDeployments(testConfig(24), api, log, sink)
		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{})

		require.NoError(t, err)
		require.Len(t, result.Deployments, 4)
		assert.Equal(t, "v2", result.Deployments[0].ID)
		assert.Equal(t, "p1", result.Deployments[1].ID)
		assert.Equal(t, "v1", result.Deployments[2].ID)
		assert.Equal(t, "p0", result.Deployments[3].ID)

		assert.Equal(t, 4, result.Summary.Total)
		assert.Equal(t, 2, result.Summary.ByEnvironment[domain.EnvironmentProduction])
		assert.Equal(t, 2, result.Summary.ByEnvironment[domain.EnvironmentPreview])

		assert.NotEmpty(t, sink.events)
		api.AssertExpectations(t)
	})

	t.Run("filters by environment", func(t *testing.T) {
		api := new(MockDeploymentAPI)
		api.On("ListDeployments", ctx).Return(deployments, nil)

		uc := usecase.NewListDeployments(testConfig(24), api, log, nil)
		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{
			Environment: domain.EnvironmentProduction,
		})

		require.NoError(t, err)
		require.Len(t, result.Deployments, 2)
		for _, d := range result.Deployments {
			assert.True(t, d.IsProduction())
		}
	})

	t.Run("wraps listing failures as fetch errors", func(t *testing.T) {
		api := new(MockDeploymentAPI)
		api.On("ListDeployments", ctx).Return(nil, assert.AnError)

		uc := usecase.NewListDeployments(testConfig(24), api, log, nil)
		_, err := uc.Run(ctx, usecase.ListDeploymentsParams{})

		var fetchErr *domain.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, 1, domain.ExitCode(err))
	})
}
