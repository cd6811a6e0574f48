package cli

import (
	"github.com/spf13/cobra"
	"github.com/tokenswap/tokenswap-deploy/internal/cli/render"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved deploy configuration",
		Long: `Show the configuration the deployer would run with, after merging
deploy-config, .env files, TOKENSWAP_* environment variables and flags.

The wallet private key is redacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
		},
	}
}
