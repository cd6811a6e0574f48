package usecase

import (
	"context"

	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// FetchChainIDs asks every RPC endpoint for its chain ID
	FetchChainIDs bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Active   string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name        string
	RPCURL      string
	ExplorerURL string
	ChainID     uint64
	Error       error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver  NetworkResolver
	inspector ChainInspector
	active    string
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, inspector ChainInspector, cfg *config.RuntimeConfig) *ListNetworks {
	return &ListNetworks{
		resolver:  resolver,
		inspector: inspector,
		active:    cfg.Network,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name: name,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.RPCURL = info.RPCURL
		status.ExplorerURL = info.ExplorerURL

		if params.FetchChainIDs {
			chainID, err := uc.inspector.ChainID(ctx, info.RPCURL)
			if err != nil {
				status.Error = err
			} else {
				status.ChainID = chainID
			}
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Active:   uc.active,
	}, nil
}
