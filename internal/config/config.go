package config

import (
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

type Config struct {
	Addr        string
	RPCEndpoint string
	LogLevel    string

	// ChainID selects the deployment network for addressbook lookups.
	ChainID uint64
	// Protocol names the constant-product fork to route against.
	Protocol string
	// MulticallAddress overrides the addressbook's Multicall3 entry when set.
	MulticallAddress *common.Address
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		return nil, ErrMissingRPCEndpoint
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	chainID := uint64(1)
	if raw := os.Getenv("CHAIN_ID"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, ErrInvalidChainID
		}
		chainID = parsed
	}

	protocol := os.Getenv("PROTOCOL")
	if protocol == "" {
		protocol = "uniswap-v2"
	}

	cfg := &Config{
		Addr:        addr,
		RPCEndpoint: rpcURL,
		LogLevel:    logLevel,
		ChainID:     chainID,
		Protocol:    protocol,
	}

	if raw := os.Getenv("MULTICALL_ADDRESS"); raw != "" {
		if !common.IsHexAddress(raw) {
			return nil, ErrInvalidMulticallAddress
		}
		mc := common.HexToAddress(raw)
		cfg.MulticallAddress = &mc
	}

	return cfg, nil
}
