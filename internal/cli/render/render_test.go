package render_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfsweep/cfsweep-cli/internal/cli/render"
	"github.com/cfsweep/cfsweep-cli/internal/domain"
	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

func TestMain(m *testing.M) {
	// Keep output assertable regardless of the terminal running the tests.
	color.NoColor = true
	m.Run()
}

func TestRenderDeploymentList(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("renders table and summary", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.DeploymentListResult{
			Deployments: []domain.Deployment{
				{ID: "dep-2", Environment: domain.EnvironmentProduction, CreatedAt: now, URL: "https://dep-2.my-site.pages.dev"},
				{ID: "dep-1", Environment: domain.EnvironmentPreview, CreatedAt: now.Add(-time.Hour), URL: "https://dep-1.my-site.pages.dev"},
			},
			Summary: usecase.DeploymentListSummary{
				Total: 2,
				ByEnvironment: map[domain.Environment]int{
					domain.EnvironmentProduction: 1,
					domain.EnvironmentPreview:    1,
				},
			},
		}

		require.NoError(t, render.NewDeploymentsRenderer(&buf).RenderDeploymentList(result))

		out := buf.String()
		assert.Contains(t, out, "dep-2")
		assert.Contains(t, out, "production")
		assert.Contains(t, out, "2025-06-01T12:00:00Z")
		assert.Contains(t, out, "2 deployment(s): 1 production, 1 preview")
	})

	t.Run("handles empty listing", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.DeploymentListResult{}

		require.NoError(t, render.NewDeploymentsRenderer(&buf).RenderDeploymentList(result))

		assert.Contains(t, buf.String(), "No deployments found")
	})
}

func TestRenderPlan(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("lists keep target and candidates", func(t *testing.T) {
		var buf bytes.Buffer
		plan := &usecase.SweepPlan{
			Keep: domain.Deployment{ID: "keep-1", Environment: domain.EnvironmentProduction, CreatedAt: now},
			Candidates: []domain.Deployment{
				{ID: "old-1", Environment: domain.EnvironmentPreview},
				{ID: "old-2", Environment: domain.EnvironmentProduction},
			},
		}

		require.NoError(t, render.NewSweepRenderer(&buf).RenderPlan(plan))

		out := buf.String()
		assert.Contains(t, out, "Keeping newest production deployment: keep-1")
		assert.Contains(t, out, "Found 2 deployment(s) to delete")
		assert.Contains(t, out, "- old-1 [preview]")
		assert.Contains(t, out, "- old-2 [production]")
	})

	t.Run("says so when there is nothing to delete", func(t *testing.T) {
		var buf bytes.Buffer
		plan := &usecase.SweepPlan{
			Keep: domain.Deployment{ID: "keep-1", Environment: domain.EnvironmentProduction},
		}

		require.NoError(t, render.NewSweepRenderer(&buf).RenderPlan(plan))

		assert.Contains(t, buf.String(), "Nothing to delete; only the keep target remains.")
	})
}

func TestRenderSummary(t *testing.T) {
	t.Run("clean run", func(t *testing.T) {
		var buf bytes.Buffer
		summary := &domain.RunSummary{KeptID: "keep-1", Deleted: 12, Sweeps: 1}

		require.NoError(t, render.NewSweepRenderer(&buf).RenderSummary(summary))

		out := buf.String()
		assert.Contains(t, out, "DELETED")
		assert.Contains(t, out, "keep-1")
		assert.Contains(t, out, "Sweep complete. Deleted 12 deployment(s), kept keep-1.")
		assert.NotContains(t, out, "permanent failure")
	})

	t.Run("partial failure lists retired ids", func(t *testing.T) {
		var buf bytes.Buffer
		summary := &domain.RunSummary{
			KeptID:    "keep-1",
			Deleted:   10,
			Failed:    2,
			Sweeps:    3,
			FailedIDs: []string{"bad-1", "bad-2"},
		}

		require.NoError(t, render.NewSweepRenderer(&buf).RenderSummary(summary))

		out := buf.String()
		assert.Contains(t, out, "Sweep finished with 2 permanent failure(s):")
		assert.Contains(t, out, "- bad-1")
		assert.Contains(t, out, "- bad-2")
	})
}
