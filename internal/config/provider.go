package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
)

// ConfigName is the base name of the deploy configuration file (any viper format)
const ConfigName = "deploy-config"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env values must be visible before viper resolves env-backed keys
	loadEnvFiles(projectRoot)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &domain.ConfigurationError{Key: ConfigName, Reason: "cannot parse config file", Err: err}
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ConfigFile:     v.ConfigFileUsed(),
		Network:        v.GetString("network"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		Wallet: config.WalletConfig{
			FromKey: strings.TrimSpace(os.ExpandEnv(v.GetString("wallet.from_key"))),
		},
		Deploy: config.DeployConfig{
			Contract:      v.GetString("deploy.contract"),
			Artifact:      v.GetString("deploy.artifact"),
			PublishSource: v.GetBool("deploy.publish_source"),
		},
		Log: config.LogConfig{
			Title:           v.GetString("log.title"),
			ExplorerBaseURL: v.GetString("log.explorer_base_url"),
			Path:            v.GetString("log.path"),
		},
		Development: config.DevelopmentConfig{
			LaunchNode: v.GetBool("development.launch_node"),
		},
		Networks: make(map[string]config.NetworkConfig),
	}

	if cfg.Network == "" {
		cfg.Network = domain.DevelopmentNetwork
	}

	if err := v.UnmarshalKey("networks", &cfg.Networks); err != nil {
		return nil, &domain.ConfigurationError{Key: "networks", Reason: "invalid network table", Err: err}
	}
	for name, network := range cfg.Networks {
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		network.ExplorerURL = os.ExpandEnv(network.ExplorerURL)
		cfg.Networks[name] = network
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.Foundry = foundryConfig

	return cfg, nil
}

// FindProjectRoot returns TOKENSWAP_PROJECT_ROOT when set, the working directory otherwise
func FindProjectRoot() (string, error) {
	if root := os.Getenv("TOKENSWAP_PROJECT_ROOT"); root != "" {
		return filepath.Abs(root)
	}
	return os.Getwd()
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName(ConfigName)
	v.AddConfigPath(projectRoot)

	// Set up environment variables
	v.SetEnvPrefix("TOKENSWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("network", domain.DevelopmentNetwork)
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("wallet.from_key", "")
	v.SetDefault("deploy.contract", domain.DefaultContractName)
	v.SetDefault("deploy.artifact", domain.DefaultArtifactPath)
	v.SetDefault("deploy.publish_source", true)
	v.SetDefault("log.title", domain.DefaultLogTitle)
	v.SetDefault("log.explorer_base_url", domain.DefaultExplorerBaseURL)
	v.SetDefault("log.path", domain.DefaultLogPath)
	v.SetDefault("development.launch_node", false)

	return v
}
