package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// ErrNoAPIKey is returned when neither the environment nor foundry.toml holds an etherscan key
var ErrNoAPIKey = errors.New("no etherscan API key: set ETHERSCAN_API_KEY or an [etherscan] entry in foundry.toml")

// CommandRunner executes forge in dir and returns its combined output
type CommandRunner func(ctx context.Context, dir string, args ...string) ([]byte, error)

func runForge(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "forge", args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// ForgeVerifier publishes contract source to etherscan through forge verify-contract
type ForgeVerifier struct {
	projectRoot string
	foundry     *config.FoundryConfig
	run         CommandRunner
	log         *slog.Logger
}

// NewForgeVerifier creates a verifier that shells out to forge
func NewForgeVerifier(cfg *config.RuntimeConfig, log *slog.Logger) *ForgeVerifier {
	return NewForgeVerifierWithRunner(cfg, runForge, log)
}

// NewForgeVerifierWithRunner creates a verifier with a custom command runner
func NewForgeVerifierWithRunner(cfg *config.RuntimeConfig, run CommandRunner, log *slog.Logger) *ForgeVerifier {
	return &ForgeVerifier{
		projectRoot: cfg.ProjectRoot,
		foundry:     cfg.Foundry,
		run:         run,
		log:         log.With("component", "ForgeVerifier"),
	}
}

// Verify submits the contract source and waits for the explorer's answer
func (v *ForgeVerifier) Verify(ctx context.Context, contract *models.DeployedContract, artifact *models.Artifact, network *config.Network) error {
	args, err := v.buildArgs(contract, artifact, network)
	if err != nil {
		return err
	}

	v.log.Debug("running forge", "command", DumpCommand(args))

	output, err := v.run(ctx, v.projectRoot, args...)
	return interpretOutput(string(output), err)
}

// buildArgs builds the forge verify-contract arguments
func (v *ForgeVerifier) buildArgs(contract *models.DeployedContract, artifact *models.Artifact, network *config.Network) ([]string, error) {
	apiKey := os.Getenv("ETHERSCAN_API_KEY")
	var verifierURL string
	if v.foundry != nil {
		if entry, ok := v.foundry.Etherscan[network.Name]; ok {
			if apiKey == "" {
				apiKey = entry.Key
			}
			verifierURL = entry.URL
		}
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	name := artifact.Name
	if name == "" {
		name = contract.Name
	}

	args := []string{
		"verify-contract",
		contract.AddressHex(),
		name,
		"--chain-id", fmt.Sprintf("%d", contract.ChainID),
		"--watch",
		"--etherscan-api-key", apiKey,
	}
	if verifierURL != "" {
		args = append(args, "--verifier-url", verifierURL)
	}

	return args, nil
}

// interpretOutput maps forge's output to a verification result
func interpretOutput(output string, runErr error) error {
	if alreadyVerified(output) {
		return nil
	}

	if runErr != nil {
		return fmt.Errorf("verification failed: %s", firstNonEmpty(strings.TrimSpace(output), runErr.Error()))
	}

	if strings.Contains(output, "Contract successfully verified") {
		return nil
	}

	return fmt.Errorf("verification status unclear: %s", strings.TrimSpace(output))
}

func alreadyVerified(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "already verified")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// DumpCommand renders forge args as a shell line with the API key masked
func DumpCommand(args []string) string {
	masked := make([]string, len(args))
	copy(masked, args)
	for i := 0; i < len(masked)-1; i++ {
		if masked[i] == "--etherscan-api-key" {
			masked[i+1] = "****"
		}
	}
	return "forge " + strings.Join(masked, " ")
}

// Ensure ForgeVerifier implements SourceVerifier
var _ usecase.SourceVerifier = (*ForgeVerifier)(nil)
