package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tokenswap/tokenswap-deploy/internal/adapters/progress"
	"github.com/tokenswap/tokenswap-deploy/internal/app"
	"github.com/tokenswap/tokenswap-deploy/internal/cli/render"
	"github.com/tokenswap/tokenswap-deploy/internal/config"
	domainconfig "github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/logging"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command. Without a subcommand it deploys the contract.
func NewRootCmd() *cobra.Command {
	var cleanup func()

	rootCmd := &cobra.Command{
		Use:   "tokenswap-deploy",
		Short: "Deploy the TokenSwap contract and record its address",
		Long: `Deploys the compiled TokenSwap contract to the active network and appends
its explorer link to the shared deployment address log.

On the development network the first pre-funded dev account signs the
deployment. Any other network requires wallet.from_key (or
TOKENSWAP_WALLET_FROM_KEY) to hold the deployer's private key.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, release, err := app.InitApp(v, newProgressSink(v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			cleanup = release

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cleanup = func() {
					cancel()
					release()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cleanup != nil {
				cleanup()
			}
		},
		RunE: runDeployment,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to deploy to (defaults to 'development')")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable the progress spinner")

	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// runDeployment runs the select, deploy and record pipeline once
func runDeployment(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	renderer := render.NewDeployRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr())

	result, err := app.RunDeployment.Run(cmd.Context(), renderer)
	if err != nil {
		return err
	}

	renderer.RenderVerification(result.Contract)
	return nil
}

// newProgressSink picks the spinner for terminals and the logger otherwise
func newProgressSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("non_interactive") {
		log := logging.NewLogger(&domainconfig.RuntimeConfig{Debug: v.GetBool("debug")})
		return progress.NewLogSink(log)
	}
	return progress.NewSpinnerSink()
}

// globalFlagKeys maps global flags to their config keys
var globalFlagKeys = map[string]string{
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"network":         "network",
}

// bindGlobalFlags copies the global flags that were set on the command line into viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := globalFlagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
