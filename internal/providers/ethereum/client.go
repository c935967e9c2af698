package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/intrana/discovery-backend/internal/adapter"
	"github.com/intrana/discovery-backend/internal/domain"
)

// rpcTimeout bounds every single RPC round trip
const rpcTimeout = 30 * time.Second

// BlockHead describes the latest block observed on the chain
type BlockHead struct {
	Number    uint64
	Timestamp time.Time
}

// EthereumClient exposes the chain reads the reconciliation engine needs
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_client.go -package=mocks -mock_names=EthereumClient=MockEthereumClient
type EthereumClient interface {
	// BlockHead returns the latest block number and its timestamp
	BlockHead(ctx context.Context) (*BlockHead, error)

	// HasContractCode reports whether bytecode is deployed at the given address.
	// An externally owned account or a never-deployed address has no code.
	HasContractCode(ctx context.Context, contractAddress string) (bool, error)

	// VerifyChainID checks the connected node serves the configured chain
	VerifyChainID(ctx context.Context) error

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	chainID domain.Chain
	client  adapter.EthClient
}

// NewClient creates a new Ethereum chain client
func NewClient(chainID domain.Chain, client adapter.EthClient) EthereumClient {
	return &ethereumClient{chainID: chainID, client: client}
}

// BlockHead returns the latest block number and its timestamp
func (c *ethereumClient) BlockHead(ctx context.Context) (*BlockHead, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	header, err := c.client.HeaderByNumber(timeoutCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}

	return &BlockHead{
		Number: header.Number.Uint64(),
		//nolint:gosec // block timestamps fit in int64 until year 292277026596
		Timestamp: time.Unix(int64(header.Time), 0).UTC(),
	}, nil
}

// HasContractCode reports whether bytecode is deployed at the given address
func (c *ethereumClient) HasContractCode(ctx context.Context, contractAddress string) (bool, error) {
	if !domain.IsValidContractAddress(contractAddress) {
		return false, fmt.Errorf("invalid contract address: %s", contractAddress)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	code, err := c.client.CodeAt(timeoutCtx, common.HexToAddress(contractAddress), nil)
	if err != nil {
		return false, fmt.Errorf("failed to get contract code: %w", err)
	}

	return len(code) > 0, nil
}

// VerifyChainID checks the connected node serves the configured chain
func (c *ethereumClient) VerifyChainID(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	chainID, err := c.client.ChainID(timeoutCtx)
	if err != nil {
		return fmt.Errorf("failed to get chain id: %w", err)
	}

	expected, ok := chainNumericID(c.chainID)
	if !ok {
		return fmt.Errorf("unsupported chain: %s", c.chainID)
	}

	if chainID.Cmp(expected) != 0 {
		return fmt.Errorf("chain id mismatch: node reports %s, configured %s", chainID, c.chainID)
	}

	return nil
}

// Close closes the connection
func (c *ethereumClient) Close() {
	c.client.Close()
}

// chainNumericID maps a CAIP-2 chain identifier to its numeric EIP-155 chain id
func chainNumericID(chain domain.Chain) (*big.Int, bool) {
	switch chain {
	case domain.ChainEthereumMainnet:
		return big.NewInt(1), true
	case domain.ChainEthereumSepolia:
		return big.NewInt(11155111), true
	default:
		return nil, false
	}
}
