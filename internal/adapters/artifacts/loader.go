package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// rawArtifact covers both the forge layout ({"bytecode":{"object":"0x.."}})
// and the flat layout used by hardhat and brownie ({"bytecode":"0x.."})
type rawArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode json.RawMessage `json:"bytecode"`
}

type forgeBytecode struct {
	Object string `json:"object"`
}

// Loader reads compiled artifacts from disk
type Loader struct{}

// NewLoader creates a new artifact loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the artifact at path and decodes its ABI and creation bytecode
func (l *Loader) Load(ctx context.Context, contractName, path string) (*models.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigurationError{
			Key:    "deploy.artifact",
			Reason: fmt.Sprintf("cannot read artifact for %s (run forge build first)", contractName),
			Err:    err,
		}
	}

	var raw rawArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &domain.ConfigurationError{Key: "deploy.artifact", Reason: "artifact is not valid JSON", Err: err}
	}

	bytecodeHex, err := bytecodeString(raw.Bytecode)
	if err != nil {
		return nil, &domain.ConfigurationError{Key: "deploy.artifact", Reason: "unreadable bytecode", Err: err}
	}
	if strings.Contains(bytecodeHex, "__$") {
		return nil, &domain.ConfigurationError{Key: "deploy.artifact", Reason: fmt.Sprintf("%s has unlinked library references", contractName)}
	}

	bytecode, err := hexutil.Decode(withPrefix(bytecodeHex))
	if err != nil || len(bytecode) == 0 {
		return nil, &domain.ConfigurationError{Key: "deploy.artifact", Reason: fmt.Sprintf("%s has no creation bytecode", contractName), Err: err}
	}

	artifact := &models.Artifact{
		Name:     contractName,
		Path:     path,
		Bytecode: bytecode,
	}

	if len(raw.ABI) > 0 && string(raw.ABI) != "null" {
		parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
		if err != nil {
			return nil, &domain.ConfigurationError{Key: "deploy.artifact", Reason: "invalid ABI", Err: err}
		}
		artifact.ABI = &parsed
	}

	return artifact, nil
}

func bytecodeString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("bytecode field missing")
	}

	var flat string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat, nil
	}

	var forge forgeBytecode
	if err := json.Unmarshal(raw, &forge); err != nil {
		return "", err
	}
	return forge.Object, nil
}

func withPrefix(s string) string {
	if strings.HasPrefix(s, "0x") {
		return s
	}
	return "0x" + s
}

// Ensure the loader implements the interface
var _ usecase.ArtifactLoader = (*Loader)(nil)
