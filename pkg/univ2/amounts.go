package univ2

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// fee: 0.3% => multiplier 997/1000
var (
	feeMul = uint256.NewInt(997)
	feeDen = uint256.NewInt(1000)
)

// Quote converts an amount of one asset into the equivalent amount of the
// other at the pool's spot ratio, with no fee applied.
func Quote(amountA, reserveA, reserveB *uint256.Int) (*uint256.Int, error) {
	if amountA.IsZero() {
		return nil, ErrInsufficientAmount
	}
	if reserveA.IsZero() || reserveB.IsZero() {
		return nil, ErrInsufficientLiquidity
	}
	amountB := new(uint256.Int)
	if _, overflow := amountB.MulOverflow(amountA, reserveB); overflow {
		return nil, ErrOverflow
	}
	return amountB.Div(amountB, reserveA), nil
}

// GetAmountOut returns the maximum output amount obtained by selling amountIn
// against the given reserves. The 0.3% fee is truncated off the input side.
func GetAmountOut(amountIn, reserveIn, reserveOut *uint256.Int) (*uint256.Int, error) {
	if amountIn.IsZero() {
		return nil, ErrInsufficientInputAmount
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, ErrInsufficientLiquidity
	}
	inWithFee := new(uint256.Int)
	if _, overflow := inWithFee.MulOverflow(amountIn, feeMul); overflow {
		return nil, ErrOverflow
	}
	numerator := new(uint256.Int)
	if _, overflow := numerator.MulOverflow(inWithFee, reserveOut); overflow {
		return nil, ErrOverflow
	}
	denominator := new(uint256.Int)
	if _, overflow := denominator.MulOverflow(reserveIn, feeDen); overflow {
		return nil, ErrOverflow
	}
	if _, overflow := denominator.AddOverflow(denominator, inWithFee); overflow {
		return nil, ErrOverflow
	}
	return numerator.Div(numerator, denominator), nil
}

// GetAmountIn returns the input amount required to buy amountOut from the
// given reserves. The result rounds up by one so the caller can never
// under-supply input for the desired output.
func GetAmountIn(amountOut, reserveIn, reserveOut *uint256.Int) (*uint256.Int, error) {
	if amountOut.IsZero() {
		return nil, ErrInsufficientOutputAmount
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, ErrInsufficientLiquidity
	}
	// Draining the reserve (or more) is untradeable; checking here also keeps
	// the subtraction below from wrapping.
	if amountOut.Cmp(reserveOut) >= 0 {
		return nil, ErrInsufficientLiquidity
	}
	numerator := new(uint256.Int)
	if _, overflow := numerator.MulOverflow(reserveIn, amountOut); overflow {
		return nil, ErrOverflow
	}
	if _, overflow := numerator.MulOverflow(numerator, feeDen); overflow {
		return nil, ErrOverflow
	}
	denominator := new(uint256.Int).Sub(reserveOut, amountOut)
	if _, overflow := denominator.MulOverflow(denominator, feeMul); overflow {
		return nil, ErrOverflow
	}
	amountIn := numerator.Div(numerator, denominator)
	return amountIn.AddUint64(amountIn, 1), nil
}

// GetAmountsOut performs chained GetAmountOut calculations along path, fetching
// every leg's reserves in one aggregated read. The result holds one amount per
// path entry, starting with amountIn.
func GetAmountsOut(ctx context.Context, reader ReserveReader, factory Factory, amountIn *uint256.Int, path []common.Address) ([]*uint256.Int, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath
	}
	reserves, err := GetReservesForPath(ctx, reader, factory, path)
	if err != nil {
		return nil, err
	}
	amounts := make([]*uint256.Int, len(path))
	amounts[0] = new(uint256.Int).Set(amountIn)
	for i, leg := range reserves {
		if amounts[i+1], err = GetAmountOut(amounts[i], leg.ReserveIn, leg.ReserveOut); err != nil {
			return nil, err
		}
	}
	return amounts, nil
}

// GetAmountsIn is the backward counterpart of GetAmountsOut: it walks path in
// reverse from the desired output, computing the required input at each leg.
func GetAmountsIn(ctx context.Context, reader ReserveReader, factory Factory, amountOut *uint256.Int, path []common.Address) ([]*uint256.Int, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath
	}
	reserves, err := GetReservesForPath(ctx, reader, factory, path)
	if err != nil {
		return nil, err
	}
	amounts := make([]*uint256.Int, len(path))
	amounts[len(path)-1] = new(uint256.Int).Set(amountOut)
	for i := len(reserves) - 1; i >= 0; i-- {
		leg := reserves[i]
		if amounts[i], err = GetAmountIn(amounts[i+1], leg.ReserveIn, leg.ReserveOut); err != nil {
			return nil, err
		}
	}
	return amounts, nil
}
