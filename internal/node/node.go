// Package node wires the ledger components onto one host and persists every commit.
package node

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/logger"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/marketplace"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/ownership"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/registry"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/relayer"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/token"
)

// TokenConfig describes a fungible token deployed at genesis
type TokenConfig struct {
	Address  common.Address
	Symbol   string
	Decimals uint8
	Payable  bool                            // allow-listed as sale currency at genesis
	Balances map[common.Address]*uint256.Int // minted at genesis
}

// Config describes the deployment of every component
type Config struct {
	ChainID            int64
	Owner              common.Address
	OwnershipAddress   common.Address
	MarketplaceAddress common.Address
	RelayerAddress     common.Address
	RegistryAddress    common.Address
	FeeToken           common.Address
	Tokens             []TokenConfig
	RoyaltyCap         uint8
	Minters            []common.Address
	Verifiers          []common.Address
}

// Persister stores a committed transaction together with the state it produced
//
//go:generate mockgen -source=node.go -destination=../mocks/persister.go -package=mocks -mock_names=Persister=MockPersister
type Persister interface {
	// SaveCommit stores the events of receipt and the state after it in one transaction
	SaveCommit(ctx context.Context, receipt *chain.Receipt, state []byte) error

	// LoadSnapshot returns the latest stored state, or found == false on a fresh database
	LoadSnapshot(ctx context.Context) (height uint64, state []byte, found bool, err error)
}

// Node is the ledger: every component sharing one host
type Node struct {
	cfg         Config
	host        *chain.Host
	json        adapter.JSON
	Tokens      *token.Directory
	Payable     *token.Registry
	Ownership   *ownership.Ledger
	Marketplace *marketplace.Marketplace
	Relayer     *relayer.Relayer
}

// New builds the components described by cfg
func New(cfg Config, clock adapter.Clock, json adapter.JSON, approver registry.ApproverRegistry) (*Node, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	host := chain.NewHost(clock)
	j := host.Journal()

	tokens := token.NewDirectory()
	for _, tc := range cfg.Tokens {
		tokens.Register(token.New(j, token.Config{
			Address:  tc.Address,
			Symbol:   tc.Symbol,
			Decimals: tc.Decimals,
			Owner:    cfg.Owner,
		}))
	}

	payable := token.NewRegistry(j, cfg.RegistryAddress, cfg.Owner, tokens)
	ledger := ownership.New(j, ownership.Config{
		Address:            cfg.OwnershipAddress,
		Owner:              cfg.Owner,
		ChainID:            cfg.ChainID,
		FeeToken:           cfg.FeeToken,
		RoyaltyCap:         cfg.RoyaltyCap,
		Relayer:            cfg.RelayerAddress,
		DefaultMarketplace: cfg.MarketplaceAddress,
		Minters:            cfg.Minters,
		Verifiers:          cfg.Verifiers,
	}, approver, tokens, payable)
	market := marketplace.New(j, marketplace.Config{
		Address:  cfg.MarketplaceAddress,
		Owner:    cfg.Owner,
		FeeToken: cfg.FeeToken,
		Relayer:  cfg.RelayerAddress,
	}, ledger, payable, tokens)
	relay := relayer.New(j, cfg.ChainID, cfg.RelayerAddress, ledger, market)

	return &Node{
		cfg:         cfg,
		host:        host,
		json:        json,
		Tokens:      tokens,
		Payable:     payable,
		Ownership:   ledger,
		Marketplace: market,
		Relayer:     relay,
	}, nil
}

func validate(cfg Config) error {
	addresses := map[string]common.Address{
		"owner":       cfg.Owner,
		"ownership":   cfg.OwnershipAddress,
		"marketplace": cfg.MarketplaceAddress,
		"relayer":     cfg.RelayerAddress,
		"registry":    cfg.RegistryAddress,
		"fee token":   cfg.FeeToken,
	}
	for name, addr := range addresses {
		if addr == (common.Address{}) {
			return fmt.Errorf("%s address is not configured", name)
		}
	}
	found := false
	for _, tc := range cfg.Tokens {
		if tc.Address == cfg.FeeToken {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("fee token %s is not among the configured tokens", cfg.FeeToken.Hex())
	}
	return nil
}

// Config returns the deployment configuration
func (n *Node) Config() Config {
	return n.cfg
}

// Height returns the height of the last committed transaction
func (n *Node) Height() uint64 {
	return n.host.Height()
}

// OnCommit registers a hook run for every committed transaction
func (n *Node) OnCommit(hook chain.CommitHook) {
	n.host.OnCommit(hook)
}

// Execute runs fn as one transaction sent by caller
func (n *Node) Execute(ctx context.Context, caller common.Address, fn func(c *chain.Context) error) (*chain.Receipt, error) {
	return n.host.Execute(ctx, caller, fn)
}

// View runs a read-only query
func (n *Node) View(ctx context.Context, fn func(c *chain.Context) error) error {
	return n.host.View(ctx, fn)
}

// Attach persists every commit through p. The snapshot is written in the same
// transaction as the events so that a failed write reverts the ledger transaction.
func (n *Node) Attach(p Persister) {
	n.host.OnCommit(func(ctx context.Context, receipt *chain.Receipt) error {
		state, err := n.json.Marshal(n.export(receipt.Height))
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		return p.SaveCommit(ctx, receipt, state)
	})
}

// Bootstrap restores the latest stored state, or runs genesis on an empty store
func (n *Node) Bootstrap(ctx context.Context, p Persister) error {
	if p != nil {
		height, state, found, err := p.LoadSnapshot(ctx)
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}
		if found {
			var s Snapshot
			if err := n.json.Unmarshal(state, &s); err != nil {
				return fmt.Errorf("failed to parse snapshot: %w", err)
			}
			n.Restore(&s)
			logger.InfoCtx(ctx, "Ledger restored from snapshot", zap.Uint64("height", height))
			return nil
		}
	}

	receipt, err := n.Genesis(ctx)
	if err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Ledger genesis committed",
		zap.Uint64("height", receipt.Height),
		zap.Int("events", len(receipt.Events)))
	return nil
}

// Genesis funds the configured balances and allow-lists the payable tokens
func (n *Node) Genesis(ctx context.Context) (*chain.Receipt, error) {
	return n.host.Execute(ctx, n.cfg.Owner, func(c *chain.Context) error {
		var payable []common.Address
		for _, tc := range n.cfg.Tokens {
			t, err := n.Tokens.Token(tc.Address)
			if err != nil {
				return err
			}
			for holder, amount := range tc.Balances {
				if err := t.Mint(c, holder, amount); err != nil {
					return fmt.Errorf("failed to fund %s with %s: %w", holder.Hex(), tc.Symbol, err)
				}
			}
			if tc.Payable {
				payable = append(payable, tc.Address)
			}
		}
		return n.Payable.AddPayableTokens(c, payable)
	})
}
