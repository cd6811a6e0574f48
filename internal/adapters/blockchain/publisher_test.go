package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
)

// returnsOneByte is init code that deploys the single byte runtime 0x00
var returnsOneByte = []byte{0x60, 0x01, 0x60, 0x0c, 0x60, 0x00, 0x39, 0x60, 0x01, 0x60, 0x00, 0xf3, 0x00}

// reverts is init code that always reverts
var reverts = []byte{0x60, 0x00, 0x60, 0x00, 0xfd}

type simEnv struct {
	sim       *simulated.Backend
	account   *models.Account
	publisher *Publisher
	network   *config.Network
}

func newSimEnv(t *testing.T) *simEnv {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	account := newAccount(key)

	balance := new(big.Int).Mul(big.NewInt(100), big.NewInt(params.Ether))
	sim := simulated.NewBackend(types.GenesisAlloc{account.Address: {Balance: balance}})
	t.Cleanup(func() { _ = sim.Close() })

	dial := func(ctx context.Context, rpcURL string) (Backend, error) {
		return sim.Client(), nil
	}

	return &simEnv{
		sim:       sim,
		account:   account,
		publisher: NewPublisherWithDialer(dial, slog.New(slog.NewTextHandler(io.Discard, nil))),
		network:   &config.Network{Name: "development", RPCURL: "simulated"},
	}
}

func newAccount(key *ecdsa.PrivateKey) *models.Account {
	return &models.Account{
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
		Source:     models.AccountSourcePrivateKey,
		Index:      -1,
	}
}

func TestPublisherDeploys(t *testing.T) {
	env := newSimEnv(t)
	ctx := context.Background()

	pending, err := env.publisher.Send(ctx, env.network, env.account, &models.Artifact{Name: "TokenSwap", Bytecode: returnsOneByte})
	require.NoError(t, err)

	assert.Equal(t, crypto.CreateAddress(env.account.Address, 0), pending.Address)
	assert.Equal(t, uint64(1337), pending.ChainID)
	assert.Equal(t, env.account.Address, pending.Deployer)

	env.sim.Commit()

	contract, err := env.publisher.WaitDeployed(ctx, pending)
	require.NoError(t, err)

	assert.Equal(t, pending.Address, contract.Address)
	assert.NotEmpty(t, contract.AddressHex())
	assert.Len(t, contract.AddressHex(), 42)
	assert.Equal(t, pending.TxHash, contract.TxHash)
	assert.Equal(t, uint64(1), contract.BlockNumber)
	assert.NotZero(t, contract.GasUsed)
	assert.Equal(t, "development", contract.Network)

	code, err := env.sim.Client().CodeAt(ctx, contract.Address, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, code)
}

func TestPublisherFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("reverting constructor fails at send", func(t *testing.T) {
		env := newSimEnv(t)

		_, err := env.publisher.Send(ctx, env.network, env.account, &models.Artifact{Name: "TokenSwap", Bytecode: reverts})

		var deployErr *domain.DeploymentError
		require.ErrorAs(t, err, &deployErr)
		assert.Equal(t, domain.StageSend, deployErr.Stage)
	})

	t.Run("unfunded account fails at send", func(t *testing.T) {
		env := newSimEnv(t)
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		_, err = env.publisher.Send(ctx, env.network, newAccount(key), &models.Artifact{Name: "TokenSwap", Bytecode: returnsOneByte})
		assert.ErrorIs(t, err, domain.ErrDeployment)
	})

	t.Run("unreachable network fails at connect", func(t *testing.T) {
		dial := func(ctx context.Context, rpcURL string) (Backend, error) {
			return nil, errors.New("connection refused")
		}
		publisher := NewPublisherWithDialer(dial, slog.New(slog.NewTextHandler(io.Discard, nil)))
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		_, err = publisher.Send(ctx, &config.Network{Name: "rinkeby", RPCURL: "http://127.0.0.1:1"}, newAccount(key), &models.Artifact{Bytecode: returnsOneByte})

		var deployErr *domain.DeploymentError
		require.ErrorAs(t, err, &deployErr)
		assert.Equal(t, domain.StageConnect, deployErr.Stage)
		assert.Equal(t, "rinkeby", deployErr.Network)
	})

	t.Run("chain id mismatch fails at connect", func(t *testing.T) {
		env := newSimEnv(t)
		network := &config.Network{Name: "rinkeby", RPCURL: "simulated", ChainID: 4}

		_, err := env.publisher.Send(ctx, network, env.account, &models.Artifact{Bytecode: returnsOneByte})
		assert.ErrorIs(t, err, domain.ErrDeployment)
		assert.Contains(t, err.Error(), "chain ID mismatch")
	})

	t.Run("waiting stops with the context", func(t *testing.T) {
		env := newSimEnv(t)

		pending, err := env.publisher.Send(ctx, env.network, env.account, &models.Artifact{Bytecode: returnsOneByte})
		require.NoError(t, err)

		waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		_, err = env.publisher.WaitDeployed(waitCtx, pending)

		var deployErr *domain.DeploymentError
		require.ErrorAs(t, err, &deployErr)
		assert.Equal(t, domain.StageMining, deployErr.Stage)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestPublisherChainID(t *testing.T) {
	env := newSimEnv(t)

	chainID, err := env.publisher.ChainID(context.Background(), "simulated")
	require.NoError(t, err)
	assert.Equal(t, uint64(1337), chainID)

	env.publisher.Close()
}
