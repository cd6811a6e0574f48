package cli

import (
	"github.com/spf13/cobra"
	"github.com/tokenswap/tokenswap-deploy/internal/cli/render"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the networks the deployer can target",
		Long: `List every network from deploy-config networks, the [rpc_endpoints] section
of foundry.toml and the built-in development network.

Each RPC endpoint is asked for its chain ID unless --offline is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{FetchChainIDs: !offline})
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Do not contact RPC endpoints")

	return cmd
}
