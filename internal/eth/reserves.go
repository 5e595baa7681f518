// Package eth connects the core library to an Ethereum JSON-RPC endpoint.
package eth

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"

	"github.com/atlas-2192/uniswap-go/pkg/univ2"
)

// Minimal ABIs for the two methods this package calls. Multicall3's aggregate
// reverts the whole batch if any inner call fails, which gives the all-or-
// nothing batch semantics ReservesBatch promises.
const (
	pairABIJSON = `[{"inputs":[],"name":"getReserves","outputs":[{"internalType":"uint112","name":"_reserve0","type":"uint112"},{"internalType":"uint112","name":"_reserve1","type":"uint112"},{"internalType":"uint32","name":"_blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"}]`

	multicallABIJSON = `[{"inputs":[{"components":[{"internalType":"address","name":"target","type":"address"},{"internalType":"bytes","name":"callData","type":"bytes"}],"internalType":"struct Multicall3.Call[]","name":"calls","type":"tuple[]"}],"name":"aggregate","outputs":[{"internalType":"uint256","name":"blockNumber","type":"uint256"},{"internalType":"bytes[]","name":"returnData","type":"bytes[]"}],"stateMutability":"payable","type":"function"}]`
)

// multicallCall mirrors Multicall3.Call for ABI packing.
type multicallCall struct {
	Target   common.Address
	CallData []byte
}

// ReserveReader reads pair reserves over eth_call, implementing
// univ2.ReserveReader. Single reads hit the pair directly; batched reads go
// through the chain's Multicall3 deployment in one round trip.
type ReserveReader struct {
	client    *ethclient.Client
	multicall common.Address

	pairABI      abi.ABI
	multicallABI abi.ABI
}

// NewReserveReader builds a reader on top of an established client. multicall
// is the chain's Multicall3 address.
func NewReserveReader(client *ethclient.Client, multicall common.Address) (*ReserveReader, error) {
	pairABI, err := abi.JSON(strings.NewReader(pairABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse pair abi: %w", err)
	}
	multicallABI, err := abi.JSON(strings.NewReader(multicallABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse multicall abi: %w", err)
	}
	return &ReserveReader{
		client:       client,
		multicall:    multicall,
		pairABI:      pairABI,
		multicallABI: multicallABI,
	}, nil
}

// Reserves performs a single getReserves call against the pair at the latest
// block.
func (r *ReserveReader) Reserves(ctx context.Context, pair common.Address) (univ2.RawReserves, error) {
	input, err := r.pairABI.Pack("getReserves")
	if err != nil {
		return univ2.RawReserves{}, fmt.Errorf("pack getReserves: %w", err)
	}
	out, err := r.client.CallContract(ctx, ethereum.CallMsg{To: &pair, Data: input}, nil)
	if err != nil {
		return univ2.RawReserves{}, fmt.Errorf("eth_call getReserves (pair %s): %w", pair.Hex(), err)
	}
	return r.decodeReserves(pair, out)
}

// ReservesBatch aggregates getReserves calls for every pair into one
// Multicall3 aggregate round trip. Results come back in request order; any
// failing inner call reverts the whole batch.
func (r *ReserveReader) ReservesBatch(ctx context.Context, pairs []common.Address) ([]univ2.RawReserves, error) {
	input, err := r.pairABI.Pack("getReserves")
	if err != nil {
		return nil, fmt.Errorf("pack getReserves: %w", err)
	}
	calls := make([]multicallCall, len(pairs))
	for i, pair := range pairs {
		calls[i] = multicallCall{Target: pair, CallData: input}
	}
	payload, err := r.multicallABI.Pack("aggregate", calls)
	if err != nil {
		return nil, fmt.Errorf("pack aggregate: %w", err)
	}

	out, err := r.client.CallContract(ctx, ethereum.CallMsg{To: &r.multicall, Data: payload}, nil)
	if err != nil {
		return nil, fmt.Errorf("eth_call aggregate (%d pairs): %w", len(pairs), err)
	}
	values, err := r.multicallABI.Unpack("aggregate", out)
	if err != nil {
		return nil, fmt.Errorf("unpack aggregate: %w", err)
	}
	returnData, ok := values[1].([][]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected aggregate return type: %T", values[1])
	}
	if len(returnData) != len(pairs) {
		return nil, fmt.Errorf("aggregate returned %d results for %d calls", len(returnData), len(pairs))
	}

	reserves := make([]univ2.RawReserves, len(pairs))
	for i, data := range returnData {
		if reserves[i], err = r.decodeReserves(pairs[i], data); err != nil {
			return nil, err
		}
	}
	return reserves, nil
}

// decodeReserves unpacks a getReserves return: (uint112 reserve0, uint112
// reserve1, uint32 blockTimestampLast). The timestamp is dropped.
func (r *ReserveReader) decodeReserves(pair common.Address, data []byte) (univ2.RawReserves, error) {
	values, err := r.pairABI.Unpack("getReserves", data)
	if err != nil {
		return univ2.RawReserves{}, fmt.Errorf("unpack getReserves (pair %s): %w", pair.Hex(), err)
	}
	reserve0, ok0 := values[0].(*big.Int)
	reserve1, ok1 := values[1].(*big.Int)
	if !ok0 || !ok1 {
		return univ2.RawReserves{}, fmt.Errorf("unexpected getReserves return types: %T, %T", values[0], values[1])
	}
	r0, overflow := uint256.FromBig(reserve0)
	if overflow {
		return univ2.RawReserves{}, fmt.Errorf("reserve0 exceeds 256 bits (pair %s)", pair.Hex())
	}
	r1, overflow := uint256.FromBig(reserve1)
	if overflow {
		return univ2.RawReserves{}, fmt.Errorf("reserve1 exceeds 256 bits (pair %s)", pair.Hex())
	}
	return univ2.RawReserves{Reserve0: r0, Reserve1: r1}, nil
}
