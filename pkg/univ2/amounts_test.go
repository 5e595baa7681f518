package univ2

import (
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

// e18 scales a small integer to 18-decimal fixed point.
func e18(n uint64) *uint256.Int {
	v := uint256.NewInt(n)
	return v.Mul(v, new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(18)))
}

func TestQuote(t *testing.T) {
	amountA := e18(100)
	reserveA := e18(1000)
	reserveB := e18(5000)

	if _, err := Quote(uint256.NewInt(0), reserveA, reserveB); !errors.Is(err, ErrInsufficientAmount) {
		t.Fatalf("expected ErrInsufficientAmount, got %v", err)
	}
	if _, err := Quote(amountA, uint256.NewInt(0), reserveB); !errors.Is(err, ErrInsufficientLiquidity) {
		t.Fatalf("expected ErrInsufficientLiquidity, got %v", err)
	}
	if _, err := Quote(amountA, reserveA, uint256.NewInt(0)); !errors.Is(err, ErrInsufficientLiquidity) {
		t.Fatalf("expected ErrInsufficientLiquidity, got %v", err)
	}

	amountB, err := Quote(amountA, reserveA, reserveB)
	if err != nil {
		t.Fatalf("Quote error: %v", err)
	}
	if amountB.Cmp(e18(500)) != 0 {
		t.Fatalf("unexpected quote: got %s want %s", amountB.Dec(), e18(500).Dec())
	}
}

func TestGetAmountOut(t *testing.T) {
	amountIn := e18(100)
	reserveIn := e18(1000)
	reserveOut := e18(5000)

	out, err := GetAmountOut(amountIn, reserveIn, reserveOut)
	if err != nil {
		t.Fatalf("GetAmountOut error: %v", err)
	}

	// expected = floor(in*997*rOut / (rIn*1000 + in*997)), recomputed with
	// independent big.Int arithmetic
	inWithFee := new(big.Int).Mul(amountIn.ToBig(), big.NewInt(997))
	numerator := new(big.Int).Mul(inWithFee, reserveOut.ToBig())
	denominator := new(big.Int).Mul(reserveIn.ToBig(), big.NewInt(1000))
	denominator.Add(denominator, inWithFee)
	expected := new(big.Int).Div(numerator, denominator)

	if out.ToBig().Cmp(expected) != 0 {
		t.Fatalf("unexpected amountOut: got %s want %s", out.Dec(), expected.String())
	}
	if out.IsZero() {
		t.Fatalf("amountOut should be positive")
	}
}

func TestGetAmountOut_Errors(t *testing.T) {
	r := e18(1000)
	if _, err := GetAmountOut(uint256.NewInt(0), r, r); !errors.Is(err, ErrInsufficientInputAmount) {
		t.Fatalf("expected ErrInsufficientInputAmount, got %v", err)
	}
	if _, err := GetAmountOut(uint256.NewInt(1), uint256.NewInt(0), r); !errors.Is(err, ErrInsufficientLiquidity) {
		t.Fatalf("expected ErrInsufficientLiquidity, got %v", err)
	}
	if _, err := GetAmountOut(uint256.NewInt(1), r, uint256.NewInt(0)); !errors.Is(err, ErrInsufficientLiquidity) {
		t.Fatalf("expected ErrInsufficientLiquidity, got %v", err)
	}

	max := new(uint256.Int).SetAllOne()
	if _, err := GetAmountOut(max, r, r); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestGetAmountIn(t *testing.T) {
	// amountOut=1, reserves 1000:1000
	// numerator = 1000*1*1000 = 1_000_000; denominator = 999*997 = 996_003
	// floor(1_000_000/996_003) + 1 = 2
	in, err := GetAmountIn(uint256.NewInt(1), uint256.NewInt(1000), uint256.NewInt(1000))
	if err != nil {
		t.Fatalf("GetAmountIn error: %v", err)
	}
	if in.Uint64() != 2 {
		t.Fatalf("unexpected amountIn: got %s want 2", in.Dec())
	}
}

func TestGetAmountIn_Errors(t *testing.T) {
	r := e18(1000)
	if _, err := GetAmountIn(uint256.NewInt(0), r, r); !errors.Is(err, ErrInsufficientOutputAmount) {
		t.Fatalf("expected ErrInsufficientOutputAmount, got %v", err)
	}
	if _, err := GetAmountIn(uint256.NewInt(1), uint256.NewInt(0), r); !errors.Is(err, ErrInsufficientLiquidity) {
		t.Fatalf("expected ErrInsufficientLiquidity, got %v", err)
	}
	if _, err := GetAmountIn(uint256.NewInt(1), r, uint256.NewInt(0)); !errors.Is(err, ErrInsufficientLiquidity) {
		t.Fatalf("expected ErrInsufficientLiquidity, got %v", err)
	}
}

// The requested output meeting or exceeding the reserve must fail as
// insufficient liquidity, never wrap through the subtraction.
func TestGetAmountIn_DrainedReserve(t *testing.T) {
	reserveIn := e18(1000)
	reserveOut := e18(5000)

	if _, err := GetAmountIn(new(uint256.Int).Set(reserveOut), reserveIn, reserveOut); !errors.Is(err, ErrInsufficientLiquidity) {
		t.Fatalf("amountOut == reserveOut: expected ErrInsufficientLiquidity, got %v", err)
	}
	over := new(uint256.Int).AddUint64(reserveOut, 1)
	if _, err := GetAmountIn(over, reserveIn, reserveOut); !errors.Is(err, ErrInsufficientLiquidity) {
		t.Fatalf("amountOut > reserveOut: expected ErrInsufficientLiquidity, got %v", err)
	}
}

// The fee plus rounding must never favor the trader: the input required to buy
// back the output of a swap is at least the original input.
func TestAmountRoundTrip(t *testing.T) {
	cases := []struct {
		name          string
		in, rIn, rOut uint64
	}{
		{"balanced", 1_000, 1_000_000, 1_000_000},
		{"skewed", 50_000, 5_000_000, 100_000_000},
		{"tiny", 3, 1_000, 1_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amountIn := uint256.NewInt(tc.in)
			reserveIn := uint256.NewInt(tc.rIn)
			reserveOut := uint256.NewInt(tc.rOut)

			out, err := GetAmountOut(amountIn, reserveIn, reserveOut)
			if err != nil {
				t.Fatalf("GetAmountOut error: %v", err)
			}
			if out.IsZero() || out.Cmp(reserveOut) >= 0 {
				t.Fatalf("test vector produces unusable output %s", out.Dec())
			}
			back, err := GetAmountIn(out, reserveIn, reserveOut)
			if err != nil {
				t.Fatalf("GetAmountIn error: %v", err)
			}
			if back.Cmp(amountIn) < 0 {
				t.Fatalf("round trip favors trader: in=%s back=%s", amountIn.Dec(), back.Dec())
			}
		})
	}
}
