package config

import "errors"

// ErrMissingRPCEndpoint indicates that the required ETH_RPC_URL variable is
// not set in the environment.
var ErrMissingRPCEndpoint = errors.New("missing ETH_RPC_URL environment variable")

// ErrInvalidChainID indicates that CHAIN_ID is not an unsigned integer.
var ErrInvalidChainID = errors.New("invalid CHAIN_ID environment variable")

// ErrInvalidMulticallAddress indicates that MULTICALL_ADDRESS is not a hex address.
var ErrInvalidMulticallAddress = errors.New("invalid MULTICALL_ADDRESS environment variable")
