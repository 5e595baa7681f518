// Package univ2 implements the off-chain half of a Uniswap V2 client:
// deterministic pair address derivation, batched reserve retrieval and the
// router amount formulas. It never mutates on-chain state.
package univ2

import "github.com/ethereum/go-ethereum/common"

// Protocol identifies a constant-product fork by name.
type Protocol string

const (
	ProtocolUniswapV2  Protocol = "uniswap-v2"
	ProtocolSushiswap  Protocol = "sushiswap"
	ProtocolQuickswap  Protocol = "quickswap"
	ProtocolSpookyswap Protocol = "spookyswap"
)

// pairCodeHashes holds the keccak256 of each fork's pair deployment bytecode.
// Quickswap and Spookyswap deploy unmodified Uniswap V2 pair bytecode.
var pairCodeHashes = map[Protocol]common.Hash{
	ProtocolUniswapV2:  common.HexToHash("0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f"),
	ProtocolSushiswap:  common.HexToHash("0xe18a34eb0e04b04f7a0ac29a6e80748dca96319b42c54d679cb821dca90c6303"),
	ProtocolQuickswap:  common.HexToHash("0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f"),
	ProtocolSpookyswap: common.HexToHash("0xcdf2deca40a0bd56de8e3ce5c7df6727e5b1bf2ac96f283fa9c4b3e6b42ea9d2"),
}

// PairCodeHash returns the pair init code hash used for CREATE2 derivation on
// the given fork.
func PairCodeHash(p Protocol) (common.Hash, error) {
	h, ok := pairCodeHashes[p]
	if !ok {
		return common.Hash{}, ErrUnknownProtocol
	}
	return h, nil
}

// Factory identifies a V2 factory deployment: its own address and the init
// code hash of the pairs it deploys. Both are static per network and treated
// as opaque inputs by this package.
type Factory struct {
	Address      common.Address
	PairCodeHash common.Hash
}

// NewFactory builds a Factory for a fork deployed at addr.
func NewFactory(addr common.Address, p Protocol) (Factory, error) {
	h, err := PairCodeHash(p)
	if err != nil {
		return Factory{}, err
	}
	return Factory{Address: addr, PairCodeHash: h}, nil
}
