package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/tokenswap/tokenswap-deploy/internal/adapters/accounts"
	"github.com/tokenswap/tokenswap-deploy/internal/adapters/anvil"
	"github.com/tokenswap/tokenswap-deploy/internal/adapters/artifacts"
	"github.com/tokenswap/tokenswap-deploy/internal/adapters/blockchain"
	"github.com/tokenswap/tokenswap-deploy/internal/adapters/deploylog"
	"github.com/tokenswap/tokenswap-deploy/internal/adapters/network"
	"github.com/tokenswap/tokenswap-deploy/internal/adapters/verification"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// ProvidePublisher provides the RPC publisher and closes its connections on cleanup
func ProvidePublisher(log *slog.Logger) (*blockchain.Publisher, func()) {
	publisher := blockchain.NewPublisher(log)
	return publisher, publisher.Close
}

// AccountSet provides the signing account pool
var AccountSet = wire.NewSet(
	accounts.NewPool,
	wire.Bind(new(usecase.AccountPool), new(*accounts.Pool)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	artifacts.NewLoader,
	wire.Bind(new(usecase.ArtifactLoader), new(*artifacts.Loader)),

	deploylog.NewFileLog,
	wire.Bind(new(usecase.DeploymentLog), new(*deploylog.FileLog)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	network.NewResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	ProvidePublisher,
	wire.Bind(new(usecase.ContractPublisher), new(*blockchain.Publisher)),
	wire.Bind(new(usecase.ChainInspector), new(*blockchain.Publisher)),
)

// DevNodeSet provides the local anvil launcher
var DevNodeSet = wire.NewSet(
	anvil.NewNode,
	wire.Bind(new(usecase.DevNode), new(*anvil.Node)),
)

// VerificationSet provides source publication through forge
var VerificationSet = wire.NewSet(
	verification.NewForgeVerifier,
	wire.Bind(new(usecase.SourceVerifier), new(*verification.ForgeVerifier)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	AccountSet,
	FSSet,
	ConfigSet,
	BlockchainSet,
	DevNodeSet,
	VerificationSet,
)
