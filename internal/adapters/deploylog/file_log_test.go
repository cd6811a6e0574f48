package deploylog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokenswap/tokenswap-deploy/internal/domain"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/config"
	"github.com/tokenswap/tokenswap-deploy/internal/domain/models"
)

func newEntry(address string) *models.DeploymentLogEntry {
	return &models.DeploymentLogEntry{
		Title:   "TokenSwap",
		Link:    "https://rinkeby.etherscan.io/address/",
		Address: address,
	}
}

func TestFileLog(t *testing.T) {
	ctx := context.Background()

	t.Run("default path sits one level above the project root", func(t *testing.T) {
		parent := t.TempDir()
		root := filepath.Join(parent, "project")
		require.NoError(t, os.Mkdir(root, 0755))

		log := NewFileLog(&config.RuntimeConfig{ProjectRoot: root, Log: config.LogConfig{Path: "../Deployment Address.txt"}})
		assert.Equal(t, filepath.Join(parent, "Deployment Address.txt"), log.Path())

		require.NoError(t, log.Append(ctx, newEntry("0xBBB")))

		data, err := os.ReadFile(filepath.Join(parent, "Deployment Address.txt"))
		require.NoError(t, err)
		assert.Equal(t, "TokenSwap => https://rinkeby.etherscan.io/address/0xBBB\n\n", string(data))
	})

	t.Run("appends and preserves prior content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "log.txt")
		prior := "Other => https://rinkeby.etherscan.io/address/0x111\n\n"
		require.NoError(t, os.WriteFile(path, []byte(prior), 0644))

		log := NewFileLog(&config.RuntimeConfig{ProjectRoot: dir, Log: config.LogConfig{Path: path}})
		require.NoError(t, log.Append(ctx, newEntry("0xAAA")))
		require.NoError(t, log.Append(ctx, newEntry("0xBBB")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, prior+
			"TokenSwap => https://rinkeby.etherscan.io/address/0xAAA\n\n"+
			"TokenSwap => https://rinkeby.etherscan.io/address/0xBBB\n\n", string(data))
	})

	t.Run("missing parent directory is an io error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "missing", "log.txt")

		log := NewFileLog(&config.RuntimeConfig{ProjectRoot: dir, Log: config.LogConfig{Path: path}})
		err := log.Append(ctx, newEntry("0xBBB"))

		var ioErr *domain.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, path, ioErr.Path)
		assert.ErrorIs(t, err, domain.ErrIO)
		assert.NoFileExists(t, path)
	})
}
