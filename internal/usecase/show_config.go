package usecase

import (
	"context"
	"strings"

	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.RuntimeConfig
	ConfigPath string
	Exists     bool
}

// ShowConfig is a use case for showing the resolved configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		cfg: cfg,
	}
}

// Run returns a copy of the runtime configuration with the wallet key redacted
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	redacted := *uc.cfg
	redacted.Wallet.FromKey = redactKey(uc.cfg.Wallet.FromKey)

	return &ShowConfigResult{
		Config:     &redacted,
		ConfigPath: uc.cfg.ConfigFile,
		Exists:     uc.cfg.ConfigFile != "",
	}, nil
}

// redactKey keeps only the last four characters of a secret
func redactKey(key string) string {
	if key == "" {
		return ""
	}
	key = strings.TrimPrefix(key, "0x")
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
