package models

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestDeploymentLogEntry(t *testing.T) {
	contract := &DeployedContract{
		Address: common.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3"),
	}

	entry := NewDeploymentLogEntry("TokenSwap", "https://rinkeby.etherscan.io/address/", contract)

	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", entry.Address, "address should be checksummed")
	assert.Equal(t,
		"TokenSwap => https://rinkeby.etherscan.io/address/0x5FbDB2315678afecb367f032d93F642f64180aa3",
		entry.String())
	assert.Equal(t,
		"TokenSwap => https://rinkeby.etherscan.io/address/0x5FbDB2315678afecb367f032d93F642f64180aa3\n\n",
		entry.Record())
}
