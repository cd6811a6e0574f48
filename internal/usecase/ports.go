package usecase

import (
	"context"

	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
)

// AccountPool hands out signing accounts and remembers imported keys
type AccountPool interface {
	// Dev returns the pre-funded development account at index
	Dev(index int) (*models.Account, error)
	// Import turns a hex private key into an account and registers it
	Import(privateKey string) (*models.Account, error)
}

// ArtifactLoader reads compiled contract artifacts
type ArtifactLoader interface {
	Load(ctx context.Context, contractName, path string) (*models.Artifact, error)
}

// ContractPublisher broadcasts contract creation transactions and waits for them
type ContractPublisher interface {
	Send(ctx context.Context, network *config.Network, account *models.Account, artifact *models.Artifact) (*models.PendingDeployment, error)
	WaitDeployed(ctx context.Context, pending *models.PendingDeployment) (*models.DeployedContract, error)
}

// SourceVerifier publishes contract source to a block explorer
type SourceVerifier interface {
	Verify(ctx context.Context, contract *models.DeployedContract, artifact *models.Artifact, network *config.Network) error
}

// DeploymentLog is the append-only record of deployed addresses
type DeploymentLog interface {
	Append(ctx context.Context, entry *models.DeploymentLogEntry) error
	Path() string
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// ChainInspector queries a node for its chain ID
type ChainInspector interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// DevNode makes sure a local chain answers on the development RPC URL
type DevNode interface {
	// Ensure returns a stop func that tears down any node it had to start
	Ensure(ctx context.Context, rpcURL string) (stop func(), err error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// DeploymentReporter is told about the two user-visible moments of a run
type DeploymentReporter interface {
	Deploying(ctx context.Context, network *config.Network, account *models.Account)
	Deployed(ctx context.Context, contract *models.DeployedContract)
}

// NopReporter is a no-op implementation of DeploymentReporter
type NopReporter struct{}

func (NopReporter) Deploying(context.Context, *config.Network, *models.Account) {}
func (NopReporter) Deployed(context.Context, *models.DeployedContract)          {}
