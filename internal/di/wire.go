//go:build wireinject
// +build wireinject

package di

import (
	"FormPull/pkg/config"
	"FormPull/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Infrastructure clients
		ProvideKafkaProducer,
		ProvidePublisher,

		// Providers
		ProvideOddsFeed,
		ProvideFormProvider,
		ProvideRatingsProvider,
		ProvideAnalyzer,

		// Core
		ProvideAssembler,
		ProvideTipStore,
		ProvidePipeline,

		// HTTP surface
		ProvideHandler,

		// Application
		ProvideApp,
	)
	return &server.App{}, nil
}
