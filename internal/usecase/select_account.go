package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
)

// SelectAccount picks the signing account for the active network
type SelectAccount struct {
	cfg  *config.RuntimeConfig
	pool AccountPool
	log  *slog.Logger
}

// NewSelectAccount creates a new SelectAccount use case
func NewSelectAccount(cfg *config.RuntimeConfig, pool AccountPool, log *slog.Logger) *SelectAccount {
	return &SelectAccount{
		cfg:  cfg,
		pool: pool,
		log:  log.With("component", "SelectAccount"),
	}
}

// Run returns dev pool account 0 on the development network and the
// account for wallet.from_key everywhere else
func (uc *SelectAccount) Run(ctx context.Context, network string) (*models.Account, error) {
	if domain.IsDevelopment(network) {
		account, err := uc.pool.Dev(0)
		if err != nil {
			return nil, fmt.Errorf("failed to get development account: %w", err)
		}
		uc.log.Debug("using development account", "address", account.Address.Hex())
		return account, nil
	}

	if uc.cfg.Wallet.FromKey == "" {
		return nil, &domain.ConfigurationError{
			Key:    "wallet.from_key",
			Reason: fmt.Sprintf("a private key is required on network %q", network),
		}
	}

	account, err := uc.pool.Import(uc.cfg.Wallet.FromKey)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("imported account", "address", account.Address.Hex(), "network", network)
	return account, nil
}
