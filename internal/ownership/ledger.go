// Package ownership implements the ownership ledger: project records, single-owner and
// share-mode holdings, approvals and operator delegation.
package ownership

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain/state"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/registry"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/signature"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/token"
)

const component = "ownership"

// Config describes the deployment of the ledger
type Config struct {
	Address            common.Address
	Owner              common.Address
	ChainID            int64
	FeeToken           common.Address // token the approver worth is paid in
	RoyaltyCap         uint8
	Relayer            common.Address
	DefaultMarketplace common.Address
	Minters            []common.Address
	Verifiers          []common.Address
}

// Domain returns the signing domain of a ledger deployed at address
func Domain(chainID int64, address common.Address) signature.Domain {
	return signature.Domain{
		Name:              "OSNFT",
		Version:           "1",
		ChainID:           chainID,
		VerifyingContract: address,
	}
}

type shareKey struct {
	TokenID common.Hash
	Holder  common.Address
}

type operatorKey struct {
	Owner    common.Address
	Operator common.Address
}

// Ledger is the ownership ledger
type Ledger struct {
	address  common.Address
	access   *chain.Ownable
	verifier *signature.Verifier
	approver registry.ApproverRegistry
	tokens   *token.Directory
	payable  *token.Registry

	feeToken           *state.Value[common.Address]
	royaltyCap         *state.Value[uint8]
	relayer            *state.Value[common.Address]
	defaultMarketplace *state.Value[common.Address]
	minters            *state.Map[common.Address, bool]
	verifiers          *state.Map[common.Address, bool]

	projects       *state.Map[common.Hash, domain.Project]
	retired        *state.Map[common.Hash, bool]
	shares         *state.Map[shareKey, uint64]
	tokenApprovals *state.Map[common.Hash, common.Address]
	shareApprovals *state.Map[shareKey, common.Address]
	operators      *state.Map[operatorKey, bool]
	usedSignatures *state.Map[common.Hash, bool]
}

// New creates the ledger on the host journal j
func New(j *state.Journal, cfg Config, approver registry.ApproverRegistry, tokens *token.Directory, payable *token.Registry) *Ledger {
	royaltyCap := cfg.RoyaltyCap
	if royaltyCap == 0 {
		royaltyCap = domain.DefaultRoyaltyCap
	}

	l := &Ledger{
		address:            cfg.Address,
		access:             chain.NewOwnable(j, component, cfg.Address, cfg.Owner),
		verifier:           signature.NewVerifier(Domain(cfg.ChainID, cfg.Address)),
		approver:           approver,
		tokens:             tokens,
		payable:            payable,
		feeToken:           state.NewValue(j, cfg.FeeToken),
		royaltyCap:         state.NewValue(j, royaltyCap),
		relayer:            state.NewValue(j, cfg.Relayer),
		defaultMarketplace: state.NewValue(j, cfg.DefaultMarketplace),
		minters:            state.NewMap[common.Address, bool](j),
		verifiers:          state.NewMap[common.Address, bool](j),
		projects:           state.NewMap[common.Hash, domain.Project](j),
		retired:            state.NewMap[common.Hash, bool](j),
		shares:             state.NewMap[shareKey, uint64](j),
		tokenApprovals:     state.NewMap[common.Hash, common.Address](j),
		shareApprovals:     state.NewMap[shareKey, common.Address](j),
		operators:          state.NewMap[operatorKey, bool](j),
		usedSignatures:     state.NewMap[common.Hash, bool](j),
	}

	// genesis roles are not part of any transaction
	minters := make(map[common.Address]bool, len(cfg.Minters))
	for _, m := range cfg.Minters {
		minters[m] = true
	}
	l.minters.Import(minters)
	verifiers := make(map[common.Address]bool, len(cfg.Verifiers))
	for _, v := range cfg.Verifiers {
		verifiers[v] = true
	}
	l.verifiers.Import(verifiers)

	return l
}

// Address returns the address of the ledger
func (l *Ledger) Address() common.Address {
	return l.address
}

// Ownable exposes the access control of the ledger
func (l *Ledger) Ownable() *chain.Ownable {
	return l.access
}

// Verifier returns the signature verifier bound to the ledger domain
func (l *Ledger) Verifier() *signature.Verifier {
	return l.verifier
}

// SetMinter grants or revokes the minter role
func (l *Ledger) SetMinter(c *chain.Context, account common.Address, granted bool) error {
	if err := l.access.OnlyOwner(c); err != nil {
		return err
	}
	return l.setRole(c, l.minters, domain.RoleMinter, account, granted)
}

// SetVerifier grants or revokes the right to sign tokenize requests
func (l *Ledger) SetVerifier(c *chain.Context, account common.Address, granted bool) error {
	if err := l.access.OnlyOwner(c); err != nil {
		return err
	}
	return l.setRole(c, l.verifiers, domain.RoleVerifier, account, granted)
}

func (l *Ledger) setRole(c *chain.Context, roles *state.Map[common.Address, bool], role string, account common.Address, granted bool) error {
	if domain.IsZeroAddress(account) {
		return domain.ErrZeroAddress
	}
	if granted {
		roles.Set(account, true)
	} else {
		roles.Delete(account)
	}
	c.Emit(l.address, domain.RoleUpdated{Role: role, Account: account, Granted: granted})
	return nil
}

// SetRoyaltyCap changes the royalty limit of tokenized projects
func (l *Ledger) SetRoyaltyCap(c *chain.Context, limit uint8) error {
	if err := l.access.OnlyOwner(c); err != nil {
		return err
	}
	if limit >= domain.CreatorCutLimit {
		return domain.ErrCreatorCutLimit
	}
	l.royaltyCap.Set(limit)
	c.Emit(l.address, domain.ConfigUpdated{Component: component, Key: "royalty_cap", Value: strconv.Itoa(int(limit))})
	return nil
}

// SetRelayer changes the only address allowed to call the meta entry points
func (l *Ledger) SetRelayer(c *chain.Context, relayer common.Address) error {
	if err := l.access.OnlyOwner(c); err != nil {
		return err
	}
	l.relayer.Set(relayer)
	c.Emit(l.address, domain.ConfigUpdated{Component: component, Key: "relayer", Value: relayer.Hex()})
	return nil
}

// SetDefaultMarketplace makes marketplace an operator of every holder
func (l *Ledger) SetDefaultMarketplace(c *chain.Context, marketplace common.Address) error {
	if err := l.access.OnlyOwner(c); err != nil {
		return err
	}
	l.defaultMarketplace.Set(marketplace)
	c.Emit(l.address, domain.ConfigUpdated{Component: component, Key: "default_marketplace", Value: marketplace.Hex()})
	return nil
}

func (l *Ledger) onlyRelayer(c *chain.Context) error {
	relayer := l.relayer.Get()
	if domain.IsZeroAddress(relayer) || c.Caller() != relayer {
		return domain.ErrInvalidRelayer
	}
	return nil
}

func (l *Ledger) onlyMinter(c *chain.Context) error {
	if !l.minters.Has(c.Caller()) {
		return domain.ErrOnlyMinters
	}
	return nil
}
