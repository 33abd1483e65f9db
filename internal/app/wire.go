//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/cfsweep/cfsweep-cli/internal/adapters"
	"github.com/cfsweep/cfsweep-cli/internal/config"
	"github.com/cfsweep/cfsweep-cli/internal/logging"
	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewSweepDeployments,
		usecase.NewListDeployments,

		// App
		NewApp,
	)
	return nil, nil
}
