package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
)

// Execution stages reported to the progress sink
const (
	StageBroadcasting = "broadcasting"
	StageMining       = "mining"
	StageVerifying    = "verifying"
	StageCompleted    = "completed"
)

// DeployContract publishes the configured contract artifact with a given account
type DeployContract struct {
	cfg       *config.RuntimeConfig
	artifacts ArtifactLoader
	publisher ContractPublisher
	verifier  SourceVerifier
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	artifacts ArtifactLoader,
	publisher ContractPublisher,
	verifier SourceVerifier,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	if progress == nil {
		progress = NopProgress{}
	}
	return &DeployContract{
		cfg:       cfg,
		artifacts: artifacts,
		publisher: publisher,
		verifier:  verifier,
		progress:  progress,
		log:       log.With("component", "DeployContract"),
	}
}

// Run sends the creation transaction and blocks until it is mined
func (uc *DeployContract) Run(ctx context.Context, network *config.Network, account *models.Account) (*models.DeployedContract, error) {
	artifactPath := uc.cfg.Deploy.Artifact
	if !filepath.IsAbs(artifactPath) {
		artifactPath = filepath.Join(uc.cfg.ProjectRoot, artifactPath)
	}

	artifact, err := uc.artifacts.Load(ctx, uc.cfg.Deploy.Contract, artifactPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact for %s: %w", uc.cfg.Deploy.Contract, err)
	}
	if artifact.ABI != nil && len(artifact.ABI.Constructor.Inputs) > 0 {
		return nil, &domain.ConfigurationError{
			Key:    "deploy.contract",
			Reason: fmt.Sprintf("%s constructor takes %d arguments, only argument-free constructors can be deployed", artifact.Name, len(artifact.ABI.Constructor.Inputs)),
		}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageBroadcasting,
		Message: fmt.Sprintf("Broadcasting %s from %s", artifact.Name, account.Address.Hex()),
		Spinner: true,
	})

	pending, err := uc.publisher.Send(ctx, network, account, artifact)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, err
	}

	uc.log.Debug("creation transaction sent",
		"tx", pending.TxHash.Hex(),
		"network", network.Name,
		"expected_address", pending.Address.Hex())

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageMining,
		Message: fmt.Sprintf("Waiting for %s to be mined", pending.TxHash.Hex()),
		Spinner: true,
	})

	contract, err := uc.publisher.WaitDeployed(ctx, pending)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, err
	}
	contract.Name = artifact.Name

	uc.log.Info("contract mined",
		"address", contract.Address.Hex(),
		"block", contract.BlockNumber,
		"gas_used", humanize.Comma(int64(contract.GasUsed)))

	contract.Verification = uc.publishSource(ctx, contract, artifact, network)

	return contract, nil
}

// publishSource runs source verification when enabled; failures are recorded, not returned
func (uc *DeployContract) publishSource(ctx context.Context, contract *models.DeployedContract, artifact *models.Artifact, network *config.Network) models.VerificationInfo {
	if !uc.cfg.Deploy.PublishSource {
		return models.VerificationInfo{Status: models.VerificationStatusSkipped, Reason: "publish_source disabled"}
	}
	if domain.IsDevelopment(network.Name) {
		return models.VerificationInfo{Status: models.VerificationStatusSkipped, Reason: "development network"}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageVerifying,
		Message: fmt.Sprintf("Publishing source of %s", artifact.Name),
		Spinner: true,
	})
	err := uc.verifier.Verify(ctx, contract, artifact, network)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	if err != nil {
		uc.log.Warn("source publication failed", "address", contract.Address.Hex(), "error", err)
		return models.VerificationInfo{Status: models.VerificationStatusFailed, Reason: err.Error()}
	}
	return models.VerificationInfo{Status: models.VerificationStatusVerified}
}
