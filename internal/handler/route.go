package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"
	"github.com/holiman/uint256"

	"github.com/atlas-2192/uniswap-go/internal/service"
	"github.com/atlas-2192/uniswap-go/pkg/univ2"
)

type RouteHandler struct {
	BaseHandler
	service *service.RouteService
}

func NewRouteHandler(logger *slog.Logger, svc *service.RouteService) *RouteHandler {
	return &RouteHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type PairRequest struct {
	TokenA string `query:"token_a" json:"token_a"`
	TokenB string `query:"token_b" json:"token_b"`
}

type RouteRequest struct {
	Path      string `query:"path" json:"path"`
	AmountIn  string `query:"amount_in" json:"amount_in"`
	AmountOut string `query:"amount_out" json:"amount_out"`
}

type legReserves struct {
	ReserveIn  string `json:"reserve_in"`
	ReserveOut string `json:"reserve_out"`
}

// Pair derives the pool address for a token pair without touching the chain.
func (h *RouteHandler) Pair() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req PairRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}
		tokenA, err := h.parseAddress("token_a", req.TokenA)
		if err != nil {
			return err
		}
		tokenB, err := h.parseAddress("token_b", req.TokenB)
		if err != nil {
			return err
		}

		pair, err := h.service.PairAddress(tokenA, tokenB)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(fiber.Map{"pair": pair.Hex()})
	}
}

// Reserves returns each leg's reserves along a path, oriented in trade direction.
func (h *RouteHandler) Reserves() fiber.Handler {
	return func(c fiber.Ctx) error {
		req, err := h.parseRouteRequest(c)
		if err != nil {
			return err
		}
		path, err := h.parsePath(req.Path)
		if err != nil {
			return err
		}

		reserves, err := h.service.Reserves(context.Background(), path)
		if err != nil {
			return h.handleServiceError(err)
		}

		legs := make([]legReserves, len(reserves))
		for i, leg := range reserves {
			legs[i] = legReserves{ReserveIn: leg.ReserveIn.Dec(), ReserveOut: leg.ReserveOut.Dec()}
		}
		return c.JSON(fiber.Map{"reserves": legs})
	}
}

// AmountsOut computes the amount vector for selling amount_in along path.
func (h *RouteHandler) AmountsOut() fiber.Handler {
	return func(c fiber.Ctx) error {
		req, err := h.parseRouteRequest(c)
		if err != nil {
			return err
		}
		path, err := h.parsePath(req.Path)
		if err != nil {
			return err
		}
		amountIn, err := h.parseAmount("amount_in", req.AmountIn)
		if err != nil {
			return err
		}

		amounts, err := h.service.AmountsOut(context.Background(), amountIn, path)
		if err != nil {
			return h.handleServiceError(err)
		}
		h.logger.Debug("amounts out served", "path", req.Path, "in", req.AmountIn, "out", amounts[len(amounts)-1].Dec())
		return c.JSON(fiber.Map{"amounts": decimals(amounts)})
	}
}

// AmountsIn computes the amount vector required to buy amount_out along path.
func (h *RouteHandler) AmountsIn() fiber.Handler {
	return func(c fiber.Ctx) error {
		req, err := h.parseRouteRequest(c)
		if err != nil {
			return err
		}
		path, err := h.parsePath(req.Path)
		if err != nil {
			return err
		}
		amountOut, err := h.parseAmount("amount_out", req.AmountOut)
		if err != nil {
			return err
		}

		amounts, err := h.service.AmountsIn(context.Background(), amountOut, path)
		if err != nil {
			return h.handleServiceError(err)
		}
		h.logger.Debug("amounts in served", "path", req.Path, "out", req.AmountOut, "in", amounts[0].Dec())
		return c.JSON(fiber.Map{"amounts": decimals(amounts)})
	}
}

func (h *RouteHandler) parseRouteRequest(c fiber.Ctx) (*RouteRequest, error) {
	var req RouteRequest
	if err := c.Bind().Query(&req); err != nil {
		h.logger.Debug("failed to bind query parameters", "err", err)
		return nil, ErrInvalidQueryParameters
	}
	return &req, nil
}

func (h *RouteHandler) parseAddress(field, addr string) (common.Address, error) {
	if addr == "" {
		return common.Address{}, NewAddressRequired(field)
	}
	if !common.IsHexAddress(addr) {
		return common.Address{}, NewInvalidAddress(field)
	}
	return common.HexToAddress(addr), nil
}

// parsePath splits a comma-separated list of hex token addresses.
func (h *RouteHandler) parsePath(raw string) ([]common.Address, error) {
	if raw == "" {
		return nil, ErrPathRequired
	}
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return nil, ErrPathTooShort
	}
	path := make([]common.Address, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !common.IsHexAddress(p) {
			return nil, NewInvalidAddress("path")
		}
		path[i] = common.HexToAddress(p)
	}
	return path, nil
}

func (h *RouteHandler) parseAmount(field, amountStr string) (*uint256.Int, error) {
	if amountStr == "" {
		return nil, ErrAmountRequired
	}
	amount, err := uint256.FromDecimal(amountStr)
	if err != nil {
		return nil, NewInvalidAmount(field, err)
	}
	return amount, nil
}

func (h *RouteHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, univ2.ErrIdenticalTokens):
		return ErrIdenticalTokensBadRequest
	case errors.Is(err, univ2.ErrZeroToken):
		return ErrZeroTokenBadRequest
	case errors.Is(err, univ2.ErrInvalidPath):
		return ErrPathTooShort
	case errors.Is(err, univ2.ErrInsufficientAmount),
		errors.Is(err, univ2.ErrInsufficientInputAmount),
		errors.Is(err, univ2.ErrInsufficientOutputAmount):
		return ErrInsufficientAmountBadRequest
	case errors.Is(err, univ2.ErrInsufficientLiquidity):
		return ErrInsufficientLiquidityUnprocessable
	case errors.Is(err, univ2.ErrLedgerQuery):
		h.logger.Error("ledger query failed", "err", err)
		return ErrLedgerQueryBadGateway
	default:
		h.logger.Error("route computation failed", "err", err)
		return ErrComputationFailedInternal
	}
}

func decimals(amounts []*uint256.Int) []string {
	out := make([]string, len(amounts))
	for i, a := range amounts {
		out[i] = a.Dec()
	}
	return out
}
