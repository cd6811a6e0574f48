package app

import (
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	RunDeployment *usecase.RunDeployment
	ListNetworks  *usecase.ListNetworks
	ShowConfig    *usecase.ShowConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	runDeployment *usecase.RunDeployment,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
) (*App, error) {
	return &App{
		Config:        cfg,
		RunDeployment: runDeployment,
		ListNetworks:  listNetworks,
		ShowConfig:    showConfig,
	}, nil
}
