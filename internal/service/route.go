package service

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/atlas-2192/uniswap-go/pkg/univ2"
)

// RouteService answers pair, reserve and routed-amount queries against one
// factory deployment. All network access goes through the injected reader.
type RouteService struct {
	BaseService
	reader  univ2.ReserveReader
	factory univ2.Factory
}

// NewRouteService constructs a RouteService for the given factory.
func NewRouteService(logger *slog.Logger, reader univ2.ReserveReader, factory univ2.Factory) *RouteService {
	return &RouteService{
		BaseService: BaseService{logger: logger},
		reader:      reader,
		factory:     factory,
	}
}

// PairAddress derives the pool address for a token pair. Local computation only.
func (s *RouteService) PairAddress(tokenA, tokenB common.Address) (common.Address, error) {
	pair, err := univ2.PairFor(s.factory, tokenA, tokenB)
	if err != nil {
		return common.Address{}, err
	}
	s.logger.Debug("pair derived", "token_a", tokenA.Hex(), "token_b", tokenB.Hex(), "pair", pair.Hex())
	return pair, nil
}

// Reserves fetches every leg's reserves along path, oriented per leg.
func (s *RouteService) Reserves(ctx context.Context, path []common.Address) ([]univ2.ReservePair, error) {
	reserves, err := univ2.GetReservesForPath(ctx, s.reader, s.factory, path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("reserves fetched", "legs", len(reserves))
	return reserves, nil
}

// AmountsOut computes the chained output amounts for selling amountIn along path.
func (s *RouteService) AmountsOut(ctx context.Context, amountIn *uint256.Int, path []common.Address) ([]*uint256.Int, error) {
	amounts, err := univ2.GetAmountsOut(ctx, s.reader, s.factory, amountIn, path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("amounts out computed", "hops", len(path)-1, "in", amountIn.Dec(), "out", amounts[len(amounts)-1].Dec())
	return amounts, nil
}

// AmountsIn computes the chained input amounts required to buy amountOut along path.
func (s *RouteService) AmountsIn(ctx context.Context, amountOut *uint256.Int, path []common.Address) ([]*uint256.Int, error) {
	amounts, err := univ2.GetAmountsIn(ctx, s.reader, s.factory, amountOut, path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("amounts in computed", "hops", len(path)-1, "out", amountOut.Dec(), "in", amounts[0].Dec())
	return amounts, nil
}
