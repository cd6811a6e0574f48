package usecase

import (
	"context"
	"log/slog"

	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
)

// RecordDeployment appends a deployed contract to the deployment log
type RecordDeployment struct {
	cfg       *config.RuntimeConfig
	deployLog DeploymentLog
	log       *slog.Logger
}

// NewRecordDeployment creates a new RecordDeployment use case
func NewRecordDeployment(cfg *config.RuntimeConfig, deployLog DeploymentLog, log *slog.Logger) *RecordDeployment {
	return &RecordDeployment{
		cfg:       cfg,
		deployLog: deployLog,
		log:       log.With("component", "RecordDeployment"),
	}
}

// Run writes "<title> => <link><address>" followed by a blank line
func (uc *RecordDeployment) Run(ctx context.Context, contract *models.DeployedContract) (*models.DeploymentLogEntry, error) {
	entry := models.NewDeploymentLogEntry(uc.cfg.Log.Title, uc.cfg.Log.ExplorerBaseURL, contract)

	if err := uc.deployLog.Append(ctx, entry); err != nil {
		return nil, err
	}

	uc.log.Debug("deployment recorded", "path", uc.deployLog.Path(), "entry", entry.String())
	return entry, nil
}
