package models

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is the compiled form of a contract as produced by forge build
type Artifact struct {
	Name     string
	Path     string
	ABI      *abi.ABI
	Bytecode []byte
}
