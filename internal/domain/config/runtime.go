package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string `yaml:"project_root"`

	// Network is the active network name ("development" when unset)
	Network string `yaml:"network"`

	// Execution settings
	Debug          bool          `yaml:"debug"`
	NonInteractive bool          `yaml:"non_interactive"`
	Timeout        time.Duration `yaml:"timeout"`

	Wallet      WalletConfig             `yaml:"wallet"`
	Deploy      DeployConfig             `yaml:"deploy"`
	Log         LogConfig                `yaml:"log"`
	Development DevelopmentConfig        `yaml:"development"`
	Networks    map[string]NetworkConfig `yaml:"networks"`

	// Endpoints read from foundry.toml, keyed by network name
	Foundry *FoundryConfig `yaml:"-"`

	// ConfigFile is the deploy config file that was read, empty when none exists
	ConfigFile string `yaml:"-"`
}

// WalletConfig holds the signing key used outside the development network
type WalletConfig struct {
	FromKey string `yaml:"from_key"`
}

// DeployConfig selects the artifact to publish and whether to verify its source
type DeployConfig struct {
	Contract      string `yaml:"contract"`
	Artifact      string `yaml:"artifact"`
	PublishSource bool   `yaml:"publish_source"`
}

// LogConfig controls the shared deployment address log
type LogConfig struct {
	Title           string `yaml:"title"`
	ExplorerBaseURL string `yaml:"explorer_base_url"`
	Path            string `yaml:"path"`
}

// DevelopmentConfig controls the local chain behind the development network
type DevelopmentConfig struct {
	// LaunchNode starts anvil when nothing answers on the development RPC URL
	LaunchNode bool `yaml:"launch_node"`
}

// NetworkConfig is a network entry from the deploy config file
type NetworkConfig struct {
	RPCURL      string `yaml:"rpc_url" mapstructure:"rpc_url"`
	ExplorerURL string `yaml:"explorer_url,omitempty" mapstructure:"explorer_url"`
}

// FoundryConfig is the subset of foundry.toml the deployer understands
type FoundryConfig struct {
	RpcEndpoints map[string]string
	Etherscan    map[string]EtherscanConfig
}

// EtherscanConfig is one [etherscan] entry of foundry.toml
type EtherscanConfig struct {
	Key string
	URL string
}

// Network represents a resolved network
type Network struct {
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ChainID     uint64 `json:"chainId"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}
