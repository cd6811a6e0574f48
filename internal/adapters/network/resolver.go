package network

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// maxSuggestions bounds the "did you mean" list for unknown networks
const maxSuggestions = 3

// Resolver resolves network names from the deploy config and foundry.toml
type Resolver struct {
	networks map[string]config.NetworkConfig
	foundry  *config.FoundryConfig
}

// NewResolver creates a new network resolver
func NewResolver(cfg *config.RuntimeConfig) *Resolver {
	foundry := cfg.Foundry
	if foundry == nil {
		foundry = &config.FoundryConfig{}
	}
	return &Resolver{
		networks: cfg.Networks,
		foundry:  foundry,
	}
}

// GetNetworks returns every known network name, sorted
func (r *Resolver) GetNetworks(ctx context.Context) []string {
	names := append(lo.Keys(r.networks), lo.Keys(r.foundry.RpcEndpoints)...)
	names = lo.Uniq(append(names, domain.DevelopmentNetwork))
	slices.Sort(names)
	return names
}

// ResolveNetwork resolves a network name to its RPC endpoint and explorer.
// The deploy config wins over foundry.toml; development always resolves.
func (r *Resolver) ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error) {
	network := &config.Network{Name: networkName}

	if entry, ok := r.networks[networkName]; ok && entry.RPCURL != "" {
		network.RPCURL = entry.RPCURL
		network.ExplorerURL = entry.ExplorerURL
	} else if rpcURL, ok := r.foundry.RpcEndpoints[networkName]; ok && rpcURL != "" {
		network.RPCURL = rpcURL
	} else if domain.IsDevelopment(networkName) {
		network.RPCURL = domain.DefaultDevelopmentRPC
	} else {
		return nil, r.unknownNetwork(ctx, networkName)
	}

	if network.ExplorerURL == "" {
		if etherscan, ok := r.foundry.Etherscan[networkName]; ok {
			network.ExplorerURL = etherscan.URL
		}
	}

	return network, nil
}

func (r *Resolver) unknownNetwork(ctx context.Context, networkName string) error {
	reason := fmt.Sprintf("network %q has no rpc_url in deploy-config or [rpc_endpoints] in foundry.toml", networkName)

	matches := fuzzy.Find(networkName, r.GetNetworks(ctx))
	if len(matches) > 0 {
		suggestions := lo.Map(lo.Slice(matches, 0, maxSuggestions), func(m fuzzy.Match, _ int) string {
			return m.Str
		})
		reason += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
	}

	return &domain.ConfigurationError{Key: "network", Reason: reason}
}

// Ensure the resolver implements the interface
var _ usecase.NetworkResolver = (*Resolver)(nil)
