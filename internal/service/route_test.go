package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/atlas-2192/uniswap-go/pkg/univ2"
)

type stubReader struct {
	reserves   map[common.Address]univ2.RawReserves
	batchErr   error
	batchCalls int
}

func (s *stubReader) Reserves(_ context.Context, pair common.Address) (univ2.RawReserves, error) {
	r, ok := s.reserves[pair]
	if !ok {
		return univ2.RawReserves{}, errors.New("unknown pair")
	}
	return r, nil
}

func (s *stubReader) ReservesBatch(_ context.Context, pairs []common.Address) ([]univ2.RawReserves, error) {
	s.batchCalls++
	if s.batchErr != nil {
		return nil, s.batchErr
	}
	out := make([]univ2.RawReserves, len(pairs))
	for i, p := range pairs {
		r, ok := s.reserves[p]
		if !ok {
			return nil, errors.New("unknown pair")
		}
		out[i] = r
	}
	return out, nil
}

var (
	tokenA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tokenB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	tokenC = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func newTestService(t *testing.T, path []common.Address, raw []univ2.RawReserves) (*RouteService, *stubReader) {
	t.Helper()
	factory := univ2.Factory{
		Address:      common.HexToAddress("0x00000000000000000000000000000000000000f1"),
		PairCodeHash: common.HexToHash("0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f"),
	}
	reader := &stubReader{reserves: map[common.Address]univ2.RawReserves{}}
	for i := 0; i+1 < len(path); i++ {
		pair, err := univ2.PairFor(factory, path[i], path[i+1])
		if err != nil {
			t.Fatalf("PairFor: %v", err)
		}
		reader.reserves[pair] = raw[i]
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouteService(logger, reader, factory), reader
}

func TestPairAddress(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)

	pair, err := svc.PairAddress(tokenA, tokenB)
	if err != nil {
		t.Fatalf("PairAddress error: %v", err)
	}
	reversed, err := svc.PairAddress(tokenB, tokenA)
	if err != nil {
		t.Fatalf("PairAddress error: %v", err)
	}
	if pair != reversed {
		t.Fatalf("derivation depends on argument order: %s vs %s", pair.Hex(), reversed.Hex())
	}

	if _, err := svc.PairAddress(tokenA, tokenA); !errors.Is(err, univ2.ErrIdenticalTokens) {
		t.Fatalf("expected ErrIdenticalTokens, got %v", err)
	}
}

func TestAmountsOut(t *testing.T) {
	path := []common.Address{tokenA, tokenB, tokenC}
	svc, reader := newTestService(t, path, []univ2.RawReserves{
		{Reserve0: uint256.NewInt(1_000_000), Reserve1: uint256.NewInt(2_000_000)},
		{Reserve0: uint256.NewInt(5_000_000), Reserve1: uint256.NewInt(3_000_000)},
	})

	amounts, err := svc.AmountsOut(context.Background(), uint256.NewInt(1_000), path)
	if err != nil {
		t.Fatalf("AmountsOut error: %v", err)
	}
	if len(amounts) != 3 {
		t.Fatalf("expected 3 amounts, got %d", len(amounts))
	}
	if reader.batchCalls != 1 {
		t.Fatalf("expected one aggregated fetch, got %d", reader.batchCalls)
	}
}

func TestAmountsIn_QueryFailure(t *testing.T) {
	path := []common.Address{tokenA, tokenB, tokenC}
	svc, reader := newTestService(t, path, []univ2.RawReserves{
		{Reserve0: uint256.NewInt(1_000_000), Reserve1: uint256.NewInt(2_000_000)},
		{Reserve0: uint256.NewInt(5_000_000), Reserve1: uint256.NewInt(3_000_000)},
	})
	reader.batchErr = errors.New("rpc timeout")

	if _, err := svc.AmountsIn(context.Background(), uint256.NewInt(1_000), path); !errors.Is(err, univ2.ErrLedgerQuery) {
		t.Fatalf("expected ErrLedgerQuery, got %v", err)
	}
}

func TestReserves_InvalidPath(t *testing.T) {
	svc, _ := newTestService(t, nil, nil)
	if _, err := svc.Reserves(context.Background(), []common.Address{tokenA}); !errors.Is(err, univ2.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}
