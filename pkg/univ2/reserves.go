package univ2

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// RawReserves is a pair's reserve tuple as reported by the chain, in token0,
// token1 order. The pair's last-update timestamp is dropped at the transport
// layer; this package never reads it.
type RawReserves struct {
	Reserve0 *uint256.Int
	Reserve1 *uint256.Int
}

// ReservePair holds one swap leg's reserves in the leg's trade direction:
// ReserveIn belongs to the token being sold, ReserveOut to the token bought.
type ReservePair struct {
	ReserveIn  *uint256.Int
	ReserveOut *uint256.Int
}

// ReserveReader is the remote ledger-query collaborator. Reserves performs a
// single read of one pair's reserve tuple. ReservesBatch aggregates all reads
// into one round trip and returns results in request order; it must fail the
// whole batch if any single read fails, never returning partial results.
// Timeout and retry policy belong to the implementation, not to callers.
type ReserveReader interface {
	Reserves(ctx context.Context, pair common.Address) (RawReserves, error)
	ReservesBatch(ctx context.Context, pairs []common.Address) ([]RawReserves, error)
}

// GetReserves fetches and sorts the reserves for the pair of a and b, returned
// in (a, b) order regardless of the pair's canonical token order.
func GetReserves(ctx context.Context, reader ReserveReader, factory Factory, a, b common.Address) (*uint256.Int, *uint256.Int, error) {
	token0, _, err := SortTokens(a, b)
	if err != nil {
		return nil, nil, err
	}
	pair, err := PairFor(factory, a, b)
	if err != nil {
		return nil, nil, err
	}
	raw, err := reader.Reserves(ctx, pair)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: pair %s: %v", ErrLedgerQuery, pair.Hex(), err)
	}
	if a == token0 {
		return raw.Reserve0, raw.Reserve1, nil
	}
	return raw.Reserve1, raw.Reserve0, nil
}

// GetReservesForPath fetches the reserves of every consecutive pair along path
// with a single aggregated read, each leg oriented in its trade direction.
// A two-token path skips aggregation and reads the lone pair directly.
func GetReservesForPath(ctx context.Context, reader ReserveReader, factory Factory, path []common.Address) ([]ReservePair, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath
	}
	if len(path) == 2 {
		in, out, err := GetReserves(ctx, reader, factory, path[0], path[1])
		if err != nil {
			return nil, err
		}
		return []ReservePair{{ReserveIn: in, ReserveOut: out}}, nil
	}

	legs := len(path) - 1
	pairs := make([]common.Address, legs)
	// swapped[i] records whether leg i sells the pair's token1, meaning the
	// raw tuple must be flipped into trade direction afterwards.
	swapped := make([]bool, legs)
	for i := 0; i < legs; i++ {
		a, b := path[i], path[i+1]
		token0, _, err := SortTokens(a, b)
		if err != nil {
			return nil, err
		}
		swapped[i] = token0 == b
		if pairs[i], err = PairFor(factory, a, b); err != nil {
			return nil, err
		}
	}

	raw, err := reader.ReservesBatch(ctx, pairs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerQuery, err)
	}
	if len(raw) != legs {
		return nil, fmt.Errorf("%w: batch returned %d results for %d pairs", ErrLedgerQuery, len(raw), legs)
	}

	reserves := make([]ReservePair, legs)
	for i, r := range raw {
		if swapped[i] {
			reserves[i] = ReservePair{ReserveIn: r.Reserve1, ReserveOut: r.Reserve0}
		} else {
			reserves[i] = ReservePair{ReserveIn: r.Reserve0, ReserveOut: r.Reserve1}
		}
	}
	return reserves, nil
}
