//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"stratosim/pkg/config"
	"stratosim/pkg/server"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Simulation engines
		ProvideWindField,
		ProvideStationKeeper,
		ProvideFleetPlanner,
		ProvideRiskAnalyzer,

		// Infrastructure
		ProvideCache,
		ProvideRunStore,
		ProvideEventPublisher,
		ProvidePresetStore,
		ProvideJobQueue,

		// Use cases
		ProvideSimulationService,
		ProvideMissionPlanner,
		ProvideJobService,

		// HTTP and lifecycle
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
