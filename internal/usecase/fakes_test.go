package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
)

var (
	devAddress      = common.HexToAddress("0xAAAaaaAAaAaAaAAaaaAaaaaaAAAAaaAAaAAaaaA1")
	importedAddress = common.HexToAddress("0xCCCccccCCCcCCCCCCcCcCcccCCCcCcCCcccCCCC1")
	contractAddress = common.HexToAddress("0xBBBbbbBbBBBbbbBBbBBbbBbBbbBBbbBBbbBbbbB1")
	txHash          = common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot: "/project",
		Network:     domain.DevelopmentNetwork,
		Deploy: config.DeployConfig{
			Contract:      "TokenSwap",
			Artifact:      "out/TokenSwap.sol/TokenSwap.json",
			PublishSource: true,
		},
		Log: config.LogConfig{
			Title:           "TokenSwap",
			ExplorerBaseURL: "https://rinkeby.etherscan.io/address/",
			Path:            "../Deployment Address.txt",
		},
	}
}

type fakePool struct {
	devCalls    int
	importCalls []string
	importErr   error
}

func (p *fakePool) Dev(index int) (*models.Account, error) {
	p.devCalls++
	return &models.Account{Address: devAddress, Source: models.AccountSourceDevPool, Index: index}, nil
}

func (p *fakePool) Import(privateKey string) (*models.Account, error) {
	p.importCalls = append(p.importCalls, privateKey)
	if p.importErr != nil {
		return nil, p.importErr
	}
	return &models.Account{Address: importedAddress, Source: models.AccountSourcePrivateKey, Index: -1}, nil
}

type fakeArtifacts struct {
	loadedPath string
	artifact   *models.Artifact
	err        error
}

func (a *fakeArtifacts) Load(ctx context.Context, contractName, path string) (*models.Artifact, error) {
	a.loadedPath = path
	if a.err != nil {
		return nil, a.err
	}
	if a.artifact != nil {
		return a.artifact, nil
	}
	return &models.Artifact{Name: contractName, Path: path, Bytecode: []byte{0x60, 0x00}}, nil
}

type fakePublisher struct {
	sendErr error
	waitErr error
	sent    []*models.Account
}

func (p *fakePublisher) Send(ctx context.Context, network *config.Network, account *models.Account, artifact *models.Artifact) (*models.PendingDeployment, error) {
	p.sent = append(p.sent, account)
	if p.sendErr != nil {
		return nil, p.sendErr
	}
	return &models.PendingDeployment{
		Network:  network.Name,
		ChainID:  network.ChainID,
		Deployer: account.Address,
		Address:  contractAddress,
		TxHash:   txHash,
	}, nil
}

func (p *fakePublisher) WaitDeployed(ctx context.Context, pending *models.PendingDeployment) (*models.DeployedContract, error) {
	if p.waitErr != nil {
		return nil, p.waitErr
	}
	return &models.DeployedContract{
		Address:     pending.Address,
		TxHash:      pending.TxHash,
		BlockNumber: 7,
		GasUsed:     1234567,
		ChainID:     pending.ChainID,
		Network:     pending.Network,
		Deployer:    pending.Deployer,
	}, nil
}

type fakeVerifier struct {
	calls int
	err   error
}

func (v *fakeVerifier) Verify(ctx context.Context, contract *models.DeployedContract, artifact *models.Artifact, network *config.Network) error {
	v.calls++
	return v.err
}

type fakeDeployLog struct {
	entries []*models.DeploymentLogEntry
	err     error
}

func (l *fakeDeployLog) Append(ctx context.Context, entry *models.DeploymentLogEntry) error {
	if l.err != nil {
		return l.err
	}
	l.entries = append(l.entries, entry)
	return nil
}

func (l *fakeDeployLog) Path() string { return "../Deployment Address.txt" }

type fakeResolver struct {
	networks map[string]*config.Network
}

func (r *fakeResolver) GetNetworks(ctx context.Context) []string {
	return []string{"broken", "development", "rinkeby"}
}

func (r *fakeResolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	if n, ok := r.networks[name]; ok {
		return n, nil
	}
	return nil, &domain.ConfigurationError{Key: "network", Reason: "unknown network " + name}
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{networks: map[string]*config.Network{
		"development": {Name: "development", RPCURL: "http://127.0.0.1:8545"},
		"rinkeby":     {Name: "rinkeby", RPCURL: "https://rinkeby.example", ExplorerURL: "https://rinkeby.etherscan.io"},
	}}
}

type fakeInspector struct{}

func (fakeInspector) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	if rpcURL == "http://127.0.0.1:8545" {
		return 31337, nil
	}
	return 0, errors.New("dial failed")
}

type recordingReporter struct {
	events []string
}

func (r *recordingReporter) Deploying(ctx context.Context, network *config.Network, account *models.Account) {
	r.events = append(r.events, "deploying:"+account.Address.Hex())
}

func (r *recordingReporter) Deployed(ctx context.Context, contract *models.DeployedContract) {
	r.events = append(r.events, "deployed:"+contract.Address.Hex())
}

type recordingProgress struct {
	stages []string
}

func (p *recordingProgress) OnProgress(ctx context.Context, event ProgressEvent) {
	p.stages = append(p.stages, event.Stage)
}
func (p *recordingProgress) Info(string)  {}
func (p *recordingProgress) Error(string) {}

type fakeDevNode struct {
	ensured []string
	stopped int
	err     error
}

func (n *fakeDevNode) Ensure(ctx context.Context, rpcURL string) (func(), error) {
	if n.err != nil {
		return nil, n.err
	}
	n.ensured = append(n.ensured, rpcURL)
	return func() { n.stopped++ }, nil
}
