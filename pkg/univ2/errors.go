package univ2

import "errors"

var (
	// ErrIdenticalTokens is returned when a pair is built from the same token twice.
	ErrIdenticalTokens = errors.New("identical token addresses")

	// ErrZeroToken is returned when the zero address is used as a pair member.
	ErrZeroToken = errors.New("zero token address")

	// ErrInvalidPath is returned when a swap path holds fewer than two tokens.
	ErrInvalidPath = errors.New("path must contain at least two tokens")

	// ErrInsufficientAmount is returned by Quote for a zero input amount.
	ErrInsufficientAmount = errors.New("insufficient amount")

	// ErrInsufficientInputAmount is returned by GetAmountOut for a zero input amount.
	ErrInsufficientInputAmount = errors.New("insufficient input amount")

	// ErrInsufficientOutputAmount is returned by GetAmountIn for a zero output amount.
	ErrInsufficientOutputAmount = errors.New("insufficient output amount")

	// ErrInsufficientLiquidity is returned when a pool reserve is zero or a
	// requested output meets or exceeds the available reserve.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrLedgerQuery wraps any failure reported by the remote reserve reader.
	ErrLedgerQuery = errors.New("ledger query failed")

	// ErrOverflow is returned when a 256-bit intermediate product overflows.
	ErrOverflow = errors.New("uint256 overflow")

	// ErrUnknownProtocol is returned for a protocol without a known pair code hash.
	ErrUnknownProtocol = errors.New("unknown protocol")
)
