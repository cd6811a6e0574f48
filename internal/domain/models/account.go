package models

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// AccountSource tells where a signing account came from
type AccountSource string

const (
	AccountSourceDevPool    AccountSource = "dev-pool"
	AccountSourcePrivateKey AccountSource = "private-key"
)

// Account is a signer usable as the sender of a deployment transaction
type Account struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey `json:"-" yaml:"-"`
	Source     AccountSource
	Index      int // position in the dev pool, -1 for imported keys
}

func (a *Account) String() string {
	return a.Address.Hex()
}
