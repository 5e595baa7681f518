package univ2

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SortTokens returns the pair's tokens in ascending byte order, the order in
// which the pair contract stores them. The identical-token check runs before
// the zero-address check, matching the factory's own validation order.
func SortTokens(a, b common.Address) (common.Address, common.Address, error) {
	switch a.Cmp(b) {
	case 0:
		return common.Address{}, common.Address{}, ErrIdenticalTokens
	case 1:
		a, b = b, a
	}
	if a == (common.Address{}) {
		return common.Address{}, common.Address{}, ErrZeroToken
	}
	return a, b, nil
}

// PairFor computes the CREATE2 address of the pair for tokens a and b without
// any external call. The salt is keccak256(token0 ++ token1); the address
// follows the standard deterministic deployment formula over the factory
// address, the salt and the pair init code hash. Pure function of its inputs.
func PairFor(factory Factory, a, b common.Address) (common.Address, error) {
	token0, token1, err := SortTokens(a, b)
	if err != nil {
		return common.Address{}, err
	}
	salt := crypto.Keccak256Hash(token0.Bytes(), token1.Bytes())
	return crypto.CreateAddress2(factory.Address, salt, factory.PairCodeHash.Bytes()), nil
}
