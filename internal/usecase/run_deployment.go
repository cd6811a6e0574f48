package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
)

// RunDeploymentResult contains everything produced by one pipeline run
type RunDeploymentResult struct {
	RunID    string
	Network  *config.Network
	Account  *models.Account
	Contract *models.DeployedContract
	Entry    *models.DeploymentLogEntry
	LogPath  string
}

// RunDeployment selects an account, deploys, then records the address
type RunDeployment struct {
	cfg           *config.RuntimeConfig
	resolver      NetworkResolver
	selectAccount *SelectAccount
	deploy        *DeployContract
	record        *RecordDeployment
	deployLog     DeploymentLog
	devNode       DevNode
	log           *slog.Logger
}

// NewRunDeployment creates a new RunDeployment use case
func NewRunDeployment(
	cfg *config.RuntimeConfig,
	resolver NetworkResolver,
	selectAccount *SelectAccount,
	deploy *DeployContract,
	record *RecordDeployment,
	deployLog DeploymentLog,
	devNode DevNode,
	log *slog.Logger,
) *RunDeployment {
	return &RunDeployment{
		cfg:           cfg,
		resolver:      resolver,
		selectAccount: selectAccount,
		deploy:        deploy,
		record:        record,
		deployLog:     deployLog,
		devNode:       devNode,
		log:           log,
	}
}

// Run executes the pipeline exactly once. A failed deployment never reaches the log.
func (uc *RunDeployment) Run(ctx context.Context, reporter DeploymentReporter) (*RunDeploymentResult, error) {
	if reporter == nil {
		reporter = NopReporter{}
	}

	result := &RunDeploymentResult{
		RunID:   uuid.NewString(),
		LogPath: uc.deployLog.Path(),
	}
	log := uc.log.With("run", result.RunID, "network", uc.cfg.Network)

	account, err := uc.selectAccount.Run(ctx, uc.cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to select account: %w", err)
	}
	result.Account = account

	network, err := uc.resolver.ResolveNetwork(ctx, uc.cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}
	result.Network = network

	if domain.IsDevelopment(network.Name) && uc.cfg.Development.LaunchNode {
		stop, err := uc.devNode.Ensure(ctx, network.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to start development node: %w", err)
		}
		defer stop()
	}

	reporter.Deploying(ctx, network, account)
	log.Debug("deploying", "contract", uc.cfg.Deploy.Contract, "from", account.Address.Hex(), "rpc", network.RPCURL)

	contract, err := uc.deploy.Run(ctx, network, account)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", uc.cfg.Deploy.Contract, err)
	}
	result.Contract = contract

	reporter.Deployed(ctx, contract)

	entry, err := uc.record.Run(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("deployed %s at %s but failed to record it: %w", contract.Name, contract.Address.Hex(), err)
	}
	result.Entry = entry

	log.Info("deployment complete", "address", contract.Address.Hex(), "verification", contract.Verification.Status)
	return result, nil
}
