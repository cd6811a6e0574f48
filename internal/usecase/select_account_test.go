package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
)

func TestSelectAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("development uses dev pool index 0 without reading the wallet key", func(t *testing.T) {
		cfg := testConfig()
		cfg.Wallet.FromKey = "not-a-key"
		pool := &fakePool{}

		uc := NewSelectAccount(cfg, pool, discardLogger())
		account, err := uc.Run(ctx, "development")
		require.NoError(t, err)

		assert.Equal(t, devAddress, account.Address)
		assert.Equal(t, 0, account.Index)
		assert.Equal(t, 1, pool.devCalls)
		assert.Empty(t, pool.importCalls)
	})

	t.Run("development is deterministic", func(t *testing.T) {
		uc := NewSelectAccount(testConfig(), &fakePool{}, discardLogger())

		first, err := uc.Run(ctx, "development")
		require.NoError(t, err)
		second, err := uc.Run(ctx, "development")
		require.NoError(t, err)

		assert.Equal(t, first.Address, second.Address)
	})

	t.Run("other networks import wallet.from_key", func(t *testing.T) {
		cfg := testConfig()
		cfg.Wallet.FromKey = "0xabc123"
		pool := &fakePool{}

		uc := NewSelectAccount(cfg, pool, discardLogger())
		account, err := uc.Run(ctx, "rinkeby")
		require.NoError(t, err)

		assert.Equal(t, importedAddress, account.Address)
		assert.Equal(t, models.AccountSourcePrivateKey, account.Source)
		assert.Equal(t, []string{"0xabc123"}, pool.importCalls)
		assert.Zero(t, pool.devCalls)
	})

	t.Run("missing key is a configuration error", func(t *testing.T) {
		pool := &fakePool{}
		uc := NewSelectAccount(testConfig(), pool, discardLogger())

		_, err := uc.Run(ctx, "rinkeby")
		require.Error(t, err)

		var cfgErr *domain.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "wallet.from_key", cfgErr.Key)
		assert.Empty(t, pool.importCalls)
	})

	t.Run("malformed key is a credential error", func(t *testing.T) {
		cfg := testConfig()
		cfg.Wallet.FromKey = "zz"
		pool := &fakePool{importErr: &domain.CredentialError{Reason: "not hex"}}

		uc := NewSelectAccount(cfg, pool, discardLogger())
		_, err := uc.Run(ctx, "mainnet")

		assert.ErrorIs(t, err, domain.ErrCredential)
		assert.NotErrorIs(t, err, domain.ErrConfiguration)
	})
}
