package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
)

// FoundryTOML represents the raw foundry.toml structure
type FoundryTOML struct {
	RpcEndpoints map[string]string         `toml:"rpc_endpoints"`
	Etherscan    map[string]map[string]any `toml:"etherscan"`
}

// loadEnvFiles loads .env and .env.local without overriding the process environment
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFoundryConfig loads rpc endpoints and explorers from foundry.toml.
// A project without foundry.toml yields nil.
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return nil, nil
	}

	var raw FoundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	cfg := &config.FoundryConfig{
		RpcEndpoints: make(map[string]string),
		Etherscan:    make(map[string]config.EtherscanConfig),
	}

	for name, url := range raw.RpcEndpoints {
		cfg.RpcEndpoints[name] = os.ExpandEnv(url)
	}

	for network, ethConfig := range raw.Etherscan {
		ec := config.EtherscanConfig{}
		if url, ok := ethConfig["url"].(string); ok {
			ec.URL = os.ExpandEnv(url)
		}
		if key, ok := ethConfig["key"].(string); ok {
			ec.Key = os.ExpandEnv(key)
		}
		cfg.Etherscan[network] = ec
	}

	return cfg, nil
}
