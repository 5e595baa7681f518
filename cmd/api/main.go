package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/atlas-2192/uniswap-go/internal/config"
	"github.com/atlas-2192/uniswap-go/internal/eth"
	"github.com/atlas-2192/uniswap-go/internal/handler"
	"github.com/atlas-2192/uniswap-go/internal/logging"
	"github.com/atlas-2192/uniswap-go/internal/service"
	"github.com/atlas-2192/uniswap-go/pkg/addressbook"
	"github.com/atlas-2192/uniswap-go/pkg/univ2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	app := fiber.New()
	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	book, err := addressbook.Load()
	if err != nil {
		return fmt.Errorf("failed to load addressbook: %w", err)
	}
	factoryAddr, ok := book.Address(cfg.Protocol+"-factory", cfg.ChainID)
	if !ok {
		return fmt.Errorf("no %s factory deployment known on chain %d", cfg.Protocol, cfg.ChainID)
	}
	factory, err := univ2.NewFactory(factoryAddr, univ2.Protocol(cfg.Protocol))
	if err != nil {
		return fmt.Errorf("failed to resolve factory for %s: %w", cfg.Protocol, err)
	}

	var multicall common.Address
	if cfg.MulticallAddress != nil {
		multicall = *cfg.MulticallAddress
	} else if multicall, ok = book.Address("multicall3", cfg.ChainID); !ok {
		return fmt.Errorf("no multicall3 deployment known on chain %d", cfg.ChainID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ethereumClient, err := eth.Dial(ctx, cfg.RPCEndpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to Ethereum node: %w", err)
	}

	reader, err := eth.NewReserveReader(ethereumClient, multicall)
	if err != nil {
		ethereumClient.Close()
		return fmt.Errorf("failed to build reserve reader: %w", err)
	}

	routeService := service.NewRouteService(logger, reader, factory)
	routeHandler := handler.NewRouteHandler(logger, routeService)
	app.Get("/pair", routeHandler.Pair())
	app.Get("/reserves", routeHandler.Reserves())
	app.Get("/amounts-out", routeHandler.AmountsOut())
	app.Get("/amounts-in", routeHandler.AmountsIn())

	logger.Info("starting api", "addr", cfg.Addr, "chain_id", cfg.ChainID, "protocol", cfg.Protocol, "factory", factory.Address.Hex())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			ethereumClient.Close()
			return fmt.Errorf("server error: %w", err)
		}
		ethereumClient.Close()
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_ = app.Shutdown()

	ethereumClient.Close()

	<-shutdownCtx.Done()
	return nil
}
