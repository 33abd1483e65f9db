package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"github.com/cfsweep/cfsweep-cli/internal/config"
	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	// Environment filters to one environment when set.
	Environment domain.Environment
}

// ListDeployments is the use case for listing project deployments
type ListDeployments struct {
	cfg  *config.RuntimeConfig
	api  DeploymentAPI
	log  *slog.Logger
	sink ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(cfg *config.RuntimeConfig, api DeploymentAPI, log *slog.Logger, sink ProgressSink) *ListDeployments {
	if sink == nil {
		sink = NopProgress{}
	}
	return &ListDeployments{cfg: cfg, api: api, log: log, sink: sink}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Fetching deployments from Cloudflare",
		Spinner: true,
	})

	deployments, err := uc.api.ListDeployments(ctx)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}

	if params.Environment != "" {
		deployments = lo.Filter(deployments, func(d domain.Deployment, _ int) bool {
			return d.Environment == params.Environment
		})
	}

	sortDeployments(deployments)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(deployments),
		Total:   len(deployments),
		Message: "Deployments loaded",
	})

	return &DeploymentListResult{
		Deployments: deployments,
		Summary:     summarize(deployments),
	}, nil
}

// sortDeployments orders newest first, production before preview on
// equal timestamps, id as the final tiebreak for stable output.
func sortDeployments(deployments []domain.Deployment) {
	sort.SliceStable(deployments, func(i, j int) bool {
		if !deployments[i].CreatedAt.Equal(deployments[j].CreatedAt) {
			return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
		}
		if deployments[i].Environment != deployments[j].Environment {
			return deployments[i].IsProduction()
		}
		return deployments[i].ID < deployments[j].ID
	})
}

func summarize(deployments []domain.Deployment) DeploymentListSummary {
	summary := DeploymentListSummary{
		Total:         len(deployments),
		ByEnvironment: make(map[domain.Environment]int),
	}
	for _, d := range deployments {
		summary.ByEnvironment[d.Environment]++
	}
	return summary
}
