//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/tokenswap/tokenswap-deploy/internal/adapters"
	"github.com/tokenswap/tokenswap-deploy/internal/config"
	"github.com/tokenswap/tokenswap-deploy/internal/logging"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.UseCaseSet,

		// App
		NewApp,
	)
	return nil, nil, nil
}
