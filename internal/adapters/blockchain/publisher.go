package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// Backend is the part of an RPC connection needed to deploy and inspect contracts
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Dialer opens a Backend for an RPC URL
type Dialer func(ctx context.Context, rpcURL string) (Backend, error)

// DialEthclient connects through go-ethereum's ethclient
func DialEthclient(ctx context.Context, rpcURL string) (Backend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Publisher deploys contracts over JSON-RPC, one connection per RPC URL
type Publisher struct {
	dial    Dialer
	log     *slog.Logger
	mu      sync.Mutex
	clients map[string]Backend
}

// NewPublisher creates a publisher backed by ethclient
func NewPublisher(log *slog.Logger) *Publisher {
	return NewPublisherWithDialer(DialEthclient, log)
}

// NewPublisherWithDialer creates a publisher with a custom connection factory
func NewPublisherWithDialer(dial Dialer, log *slog.Logger) *Publisher {
	return &Publisher{
		dial:    dial,
		log:     log.With("component", "Publisher"),
		clients: make(map[string]Backend),
	}
}

// connect returns the cached backend for rpcURL, dialing on first use
func (p *Publisher) connect(ctx context.Context, rpcURL string) (Backend, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[rpcURL]; ok {
		return client, nil
	}

	client, err := p.dial(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	p.clients[rpcURL] = client
	return client, nil
}

// Send signs the creation transaction with the account key and broadcasts it
func (p *Publisher) Send(ctx context.Context, network *config.Network, account *models.Account, artifact *models.Artifact) (*models.PendingDeployment, error) {
	if account.PrivateKey == nil {
		return nil, &domain.DeploymentError{Stage: domain.StageSend, Network: network.Name, Err: errors.New("account has no private key")}
	}

	client, err := p.connect(ctx, network.RPCURL)
	if err != nil {
		return nil, &domain.DeploymentError{Stage: domain.StageConnect, Network: network.Name, Err: err}
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, &domain.DeploymentError{Stage: domain.StageConnect, Network: network.Name, Err: fmt.Errorf("failed to get chain ID: %w", err)}
	}
	if network.ChainID != 0 && network.ChainID != chainID.Uint64() {
		return nil, &domain.DeploymentError{
			Stage:   domain.StageConnect,
			Network: network.Name,
			Err:     fmt.Errorf("chain ID mismatch: expected %d, got %d", network.ChainID, chainID.Uint64()),
		}
	}

	opts := bind.NewKeyedTransactor(account.PrivateKey, chainID)
	opts.Context = ctx

	address, tx, err := bind.DeployContract(opts, artifact.Bytecode, client, nil)
	if err != nil {
		return nil, &domain.DeploymentError{Stage: domain.StageSend, Network: network.Name, Err: err}
	}

	p.log.Debug("creation transaction broadcast", "tx", tx.Hash().Hex(), "nonce", tx.Nonce(), "gas", tx.Gas())

	return &models.PendingDeployment{
		Network:  network.Name,
		ChainID:  chainID.Uint64(),
		RPCURL:   network.RPCURL,
		Deployer: account.Address,
		Address:  address,
		TxHash:   tx.Hash(),
	}, nil
}

// WaitDeployed blocks until the creation transaction is mined and code exists at the address
func (p *Publisher) WaitDeployed(ctx context.Context, pending *models.PendingDeployment) (*models.DeployedContract, error) {
	fail := func(stage domain.DeploymentStage, err error) error {
		return &domain.DeploymentError{Stage: stage, Network: pending.Network, TxHash: pending.TxHash.Hex(), Err: err}
	}

	client, err := p.connect(ctx, pending.RPCURL)
	if err != nil {
		return nil, fail(domain.StageConnect, err)
	}

	receipt, err := bind.WaitMined(ctx, client, pending.TxHash)
	if err != nil {
		return nil, fail(domain.StageMining, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fail(domain.StageMining, errors.New("creation transaction reverted"))
	}

	address := receipt.ContractAddress
	if address == (common.Address{}) {
		address = pending.Address
	}

	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fail(domain.StageCode, err)
	}
	if len(code) == 0 {
		return nil, fail(domain.StageCode, fmt.Errorf("no code at %s", address.Hex()))
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &models.DeployedContract{
		Address:     address,
		TxHash:      pending.TxHash,
		BlockNumber: blockNumber,
		GasUsed:     receipt.GasUsed,
		ChainID:     pending.ChainID,
		Network:     pending.Network,
		Deployer:    pending.Deployer,
	}, nil
}

// ChainID asks the node behind rpcURL for its chain ID
func (p *Publisher) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := p.connect(ctx, rpcURL)
	if err != nil {
		return 0, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

// Close releases every connection opened by the publisher
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for url, client := range p.clients {
		if closer, ok := client.(interface{ Close() }); ok {
			closer.Close()
		}
		delete(p.clients, url)
	}
}

// Ensure the publisher implements the interfaces
var (
	_ usecase.ContractPublisher = (*Publisher)(nil)
	_ usecase.ChainInspector    = (*Publisher)(nil)
)
