// Package addressbook resolves human-readable contract names to per-chain
// deployment addresses from an embedded registry. The book is an explicitly
// constructed value: load it once at startup and pass it to consumers.
package addressbook

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

//go:embed contracts.json
var contractsJSON []byte

// Contract maps chain IDs to a contract's deployed address on that chain.
type Contract struct {
	Addresses map[uint64]common.Address `json:"addresses"`
}

// Address returns the contract's address on the given chain.
func (c Contract) Address(chainID uint64) (common.Address, bool) {
	addr, ok := c.Addresses[chainID]
	return addr, ok
}

// Book is a read-only name -> Contract registry.
type Book struct {
	contracts map[string]Contract
}

// Load parses the embedded registry.
func Load() (*Book, error) {
	var contracts map[string]Contract
	if err := json.Unmarshal(contractsJSON, &contracts); err != nil {
		return nil, fmt.Errorf("parse embedded contracts: %w", err)
	}
	return &Book{contracts: contracts}, nil
}

// Contract looks up a contract by name.
func (b *Book) Contract(name string) (Contract, bool) {
	c, ok := b.contracts[name]
	return c, ok
}

// Address looks up a contract's address by name and chain.
func (b *Book) Address(name string, chainID uint64) (common.Address, bool) {
	c, ok := b.contracts[name]
	if !ok {
		return common.Address{}, false
	}
	return c.Address(chainID)
}
