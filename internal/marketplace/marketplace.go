// Package marketplace implements fixed-price sales and timed auctions of projects held
// in the ownership ledger, the settlement split between seller, creator and treasury,
// and paid sell priority.
package marketplace

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain/state"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/token"
)

const component = "marketplace"

// OwnershipLedger is the part of the ownership ledger the marketplace moves assets through
//
//go:generate mockgen -source=marketplace.go -destination=../mocks/ownership_ledger.go -package=mocks -mock_names=OwnershipLedger=MockOwnershipLedger
type OwnershipLedger interface {
	// Project returns the project record of tokenID
	Project(tokenID common.Hash) (domain.Project, error)
	// ShareOf returns the share units holder owns
	ShareOf(tokenID common.Hash, holder common.Address) uint64
	// TransferFullOwnership moves the whole holding of from to to
	TransferFullOwnership(c *chain.Context, from, to common.Address, tokenID common.Hash) error
	// TransferShare moves share units from from to to
	TransferShare(c *chain.Context, from, to common.Address, tokenID common.Hash, share uint64) error
}

// Config describes the deployment of the marketplace
type Config struct {
	Address  common.Address
	Owner    common.Address
	FeeToken common.Address // token sell priority is paid in
	Relayer  common.Address
}

// Marketplace is the marketplace engine. Listed assets are held by the marketplace
// address in the ownership ledger; the Seller field of a listing is the beneficial owner.
type Marketplace struct {
	address common.Address
	access  *chain.Ownable
	ledger  OwnershipLedger
	payable *token.Registry
	tokens  *token.Directory

	feeToken *state.Value[common.Address]
	relayer  *state.Value[common.Address]
	sales    *state.Map[common.Hash, domain.Sale]
	auctions *state.Map[common.Hash, domain.Auction]
	earnings *state.Map[common.Address, *uint256.Int]
}

// New creates the marketplace on the host journal j
func New(j *state.Journal, cfg Config, ledger OwnershipLedger, payable *token.Registry, tokens *token.Directory) *Marketplace {
	return &Marketplace{
		address:  cfg.Address,
		access:   chain.NewOwnable(j, component, cfg.Address, cfg.Owner),
		ledger:   ledger,
		payable:  payable,
		tokens:   tokens,
		feeToken: state.NewValue(j, cfg.FeeToken),
		relayer:  state.NewValue(j, cfg.Relayer),
		sales:    state.NewMap[common.Hash, domain.Sale](j),
		auctions: state.NewMap[common.Hash, domain.Auction](j),
		earnings: state.NewMap[common.Address, *uint256.Int](j),
	}
}

// Address returns the custody address of the marketplace
func (m *Marketplace) Address() common.Address {
	return m.address
}

// Ownable exposes the access control of the marketplace
func (m *Marketplace) Ownable() *chain.Ownable {
	return m.access
}

// Relayer returns the only address allowed to call the meta entry points
func (m *Marketplace) Relayer() common.Address {
	return m.relayer.Get()
}

// FeeToken returns the token sell priority is paid in
func (m *Marketplace) FeeToken() common.Address {
	return m.feeToken.Get()
}

// SetRelayer changes the relayer address. Owner only.
func (m *Marketplace) SetRelayer(c *chain.Context, relayer common.Address) error {
	if err := m.access.OnlyOwner(c); err != nil {
		return err
	}
	m.relayer.Set(relayer)
	c.Emit(m.address, domain.ConfigUpdated{Component: component, Key: "relayer", Value: relayer.Hex()})
	return nil
}

func (m *Marketplace) onlyRelayer(c *chain.Context) error {
	relayer := m.relayer.Get()
	if domain.IsZeroAddress(relayer) || c.Caller() != relayer {
		return domain.ErrInvalidRelayer
	}
	return nil
}

// self returns a sub-call made by the marketplace itself
func (m *Marketplace) self(c *chain.Context) *chain.Context {
	return c.As(m.address)
}

// escrow moves a listed asset from seller into marketplace custody. share is 0 for a
// single-owner asset.
func (m *Marketplace) escrow(c *chain.Context, project domain.Project, seller common.Address, share uint64) error {
	if !project.IsShareToken() {
		if share != 0 {
			return domain.ErrInputShareNotAllowed
		}
		if project.Owner != seller {
			return domain.ErrIncorrectOwner
		}
		return m.ledger.TransferFullOwnership(c.As(seller), seller, m.address, project.TokenID)
	}
	if share == 0 {
		return domain.ErrInputShareZero
	}
	if share > m.ledger.ShareOf(project.TokenID, seller) {
		return domain.ErrInsufficientShare
	}
	return m.ledger.TransferShare(c.As(seller), seller, m.address, project.TokenID, share)
}

// release moves an asset out of marketplace custody to to
func (m *Marketplace) release(c *chain.Context, tokenID common.Hash, share uint64, to common.Address) error {
	if share == 0 {
		return m.ledger.TransferFullOwnership(m.self(c), m.address, to, tokenID)
	}
	return m.ledger.TransferShare(m.self(c), m.address, to, tokenID, share)
}
