package app

import (
	"log/slog"

	"github.com/cfsweep/cfsweep-cli/internal/config"
	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Logger is the process-wide event stream
	Logger *slog.Logger

	// Use cases
	SweepDeployments *usecase.SweepDeployments
	ListDeployments  *usecase.ListDeployments
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	sweepDeployments *usecase.SweepDeployments,
	listDeployments *usecase.ListDeployments,
) (*App, error) {
	return &App{
		Config:           cfg,
		Logger:           logger,
		SweepDeployments: sweepDeployments,
		ListDeployments:  listDeployments,
	}, nil
}
