package models

import (
	"github.com/ethereum/go-ethereum/common"
)

// VerificationStatus represents the outcome of publishing contract source
type VerificationStatus string

const (
	VerificationStatusSkipped  VerificationStatus = "SKIPPED"
	VerificationStatusVerified VerificationStatus = "VERIFIED"
	VerificationStatusFailed   VerificationStatus = "FAILED"
)

// VerificationInfo records whether source publication ran and how it ended
type VerificationInfo struct {
	Status VerificationStatus `json:"status"`
	Reason string             `json:"reason,omitempty"`
}

// PendingDeployment is a broadcast creation transaction that has not been mined yet
type PendingDeployment struct {
	Network  string
	ChainID  uint64
	RPCURL   string
	Deployer common.Address
	Address  common.Address // address the contract will occupy once mined
	TxHash   common.Hash
}

// DeployedContract is the result of a mined contract creation
type DeployedContract struct {
	Name         string           `json:"name"`
	Address      common.Address   `json:"address"`
	TxHash       common.Hash      `json:"txHash"`
	BlockNumber  uint64           `json:"blockNumber"`
	GasUsed      uint64           `json:"gasUsed"`
	ChainID      uint64           `json:"chainId"`
	Network      string           `json:"network"`
	Deployer     common.Address   `json:"deployer"`
	Verification VerificationInfo `json:"verification"`
}

// AddressHex returns the checksummed contract address
func (d *DeployedContract) AddressHex() string {
	return d.Address.Hex()
}
