package usecase

import (
	"context"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

// DeploymentAPI is the remote Pages surface the tool depends on. The
// adapter returns *domain.APIError for structured API failures; plain
// transport errors are treated as transient by callers.
type DeploymentAPI interface {
	// ListDeployments returns the full deployment listing for the
	// configured project, newest first.
	ListDeployments(ctx context.Context) ([]domain.Deployment, error)

	// DeleteDeployment deletes a single deployment by id.
	DeleteDeployment(ctx context.Context, id string) error
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []domain.Deployment
	Summary     DeploymentListSummary
}

// DeploymentListSummary provides summary statistics for a listing
type DeploymentListSummary struct {
	Total         int
	ByEnvironment map[domain.Environment]int
}

// SweepPlan is the classification outcome before any delete is issued:
// the single deployment to keep and the ordered candidates to drain.
type SweepPlan struct {
	Keep       domain.Deployment
	Candidates []domain.Deployment
}
