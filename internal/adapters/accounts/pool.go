package accounts

import (
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
	"github.com/tokenswap/tokenswap-deploy/internal/usecase"
)

// devKeys are the pre-funded accounts every local dev node seeds from the
// "test test ... junk" mnemonic (anvil, hardhat).
var devKeys = []string{
	"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d",
	"5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
	"7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6",
	"47e179ec197488593b187f80a00eb0da91f1b9d0b13f8733639f19c30a34926a",
	"8b3a350cf5c34c9194ca85829a2df0ec3153be0318b5e2d3348e872092edffba",
	"92db14e403b83dfe3df233f83dfa3a0d7096f21ca9b0d6d6b8d88b2b4ec1564e",
	"4bbbf85ce3377467afe5d46f804f221813b2bb87f24d81f60f1fcdbf7cbf4356",
	"dbda1821b80551c9d65939329250298aa3472ba22feea921c0cf5d620ea67b97",
	"2a871d0798f97d79848a013d4936a73bf4cc922c825d33c1cf7073dff6d409c6",
}

// Pool serves development accounts and keeps track of imported keys
type Pool struct {
	mu       sync.Mutex
	imported map[common.Address]*models.Account
}

// NewPool creates an empty account pool
func NewPool() *Pool {
	return &Pool{
		imported: make(map[common.Address]*models.Account),
	}
}

// Dev returns the development account at index
func (p *Pool) Dev(index int) (*models.Account, error) {
	if index < 0 || index >= len(devKeys) {
		return nil, fmt.Errorf("development account index %d out of range [0,%d)", index, len(devKeys))
	}

	key, err := crypto.HexToECDSA(devKeys[index])
	if err != nil {
		return nil, fmt.Errorf("invalid development key %d: %w", index, err)
	}

	return &models.Account{
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
		Source:     models.AccountSourceDevPool,
		Index:      index,
	}, nil
}

// Import parses a hex private key, with or without 0x, and registers the account
func (p *Pool) Import(privateKey string) (*models.Account, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"), "0X")

	if _, err := hex.DecodeString(raw); err != nil {
		return nil, &domain.CredentialError{Reason: "private key is not hex encoded", Err: err}
	}
	if len(raw) != 64 {
		return nil, &domain.CredentialError{Reason: fmt.Sprintf("private key must be 32 bytes, got %d", len(raw)/2)}
	}

	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, &domain.CredentialError{Reason: "private key is not a valid secp256k1 scalar", Err: err}
	}

	account := &models.Account{
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
		Source:     models.AccountSourcePrivateKey,
		Index:      -1,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if existing, ok := p.imported[account.Address]; ok {
		return existing, nil
	}
	p.imported[account.Address] = account

	return account, nil
}

// Imported returns the addresses registered through Import
func (p *Pool) Imported() []common.Address {
	p.mu.Lock()
	defer p.mu.Unlock()

	return lo.Keys(p.imported)
}

// Ensure the pool implements the interface
var _ usecase.AccountPool = (*Pool)(nil)
