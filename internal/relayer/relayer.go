// Package relayer forwards signed mint, sell and buy requests into the ownership ledger
// and the marketplace on behalf of their signers.
package relayer

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain/state"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/marketplace"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/ownership"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/signature"
)

// Minter is the meta mint entry point of the ownership ledger
type Minter interface {
	MintMeta(c *chain.Context, to common.Address, in ownership.MintInput) (common.Hash, error)
}

// Trader is the meta entry points of the marketplace
type Trader interface {
	SellMeta(c *chain.Context, seller common.Address, in marketplace.SellInput) (common.Hash, error)
	BuyMeta(c *chain.Context, buyer common.Address, saleID common.Hash, share uint64, maxPrice *uint256.Int) error
}

// Domain returns the signing domain of a relayer deployed at address
func Domain(chainID int64, address common.Address) signature.Domain {
	return signature.Domain{
		Name:              "OSNFT_RELAYER",
		Version:           "1",
		ChainID:           chainID,
		VerifyingContract: address,
	}
}

// Relayer verifies signed requests and forwards them as the relayer address
type Relayer struct {
	address  common.Address
	verifier *signature.Verifier
	minter   Minter
	trader   Trader
	used     *state.Map[common.Hash, bool]
}

// New creates a relayer deployed at address
func New(j *state.Journal, chainID int64, address common.Address, minter Minter, trader Trader) *Relayer {
	return &Relayer{
		address:  address,
		verifier: signature.NewVerifier(Domain(chainID, address)),
		minter:   minter,
		trader:   trader,
		used:     state.NewMap[common.Hash, bool](j),
	}
}

// Address returns the address the relayer forwards calls from
func (r *Relayer) Address() common.Address {
	return r.address
}

// Verifier returns the signature verifier bound to the relayer domain
func (r *Relayer) Verifier() *signature.Verifier {
	return r.verifier
}

// Mint mints a project to msg.To
func (r *Relayer) Mint(c *chain.Context, msg signature.MintMessage, sig []byte) (common.Hash, error) {
	if err := r.consume(c, msg, sig, msg.To); err != nil {
		return common.Hash{}, err
	}
	return r.minter.MintMeta(c.As(r.address), msg.To, ownership.MintInput{
		ProjectURL: msg.ProjectURL,
		NFTType:    msg.NFTType,
		CreatorCut: msg.CreatorCut,
		TotalShare: msg.TotalShare,
	})
}

// Sell lists an asset of msg.To
func (r *Relayer) Sell(c *chain.Context, msg signature.SellMessage, sig []byte) (common.Hash, error) {
	if err := r.consume(c, msg, sig, msg.To); err != nil {
		return common.Hash{}, err
	}
	return r.trader.SellMeta(c.As(r.address), msg.To, marketplace.SellInput{
		TokenID:      msg.TokenID,
		Share:        msg.Share,
		Price:        msg.Price,
		PaymentToken: msg.PaymentToken,
		SellPriority: msg.SellPriority,
	})
}

// Buy buys from a listing for msg.To
func (r *Relayer) Buy(c *chain.Context, msg signature.BuyMessage, sig []byte) error {
	if err := r.consume(c, msg, sig, msg.To); err != nil {
		return err
	}
	return r.trader.BuyMeta(c.As(r.address), msg.To, msg.SellID, msg.Share, msg.MaxPrice)
}

// IsUsed reports whether the signed request with digest was already executed
func (r *Relayer) IsUsed(digest common.Hash) bool {
	return r.used.Has(digest)
}

// consume verifies that principal signed msg and marks it executed
func (r *Relayer) consume(c *chain.Context, msg signature.Message, sig []byte, principal common.Address) error {
	digest, err := r.verifier.Verify(c.Now(), msg, sig, principal)
	if err != nil {
		return err
	}
	if r.used.Has(digest) {
		return domain.ErrSignatureUsed
	}
	r.used.Set(digest, true)
	return nil
}

// Snapshot is the serializable state of the relayer
type Snapshot struct {
	Used []common.Hash `json:"used"`
}

// Export returns the current state
func (r *Relayer) Export() Snapshot {
	s := Snapshot{Used: make([]common.Hash, 0, r.used.Len())}
	r.used.Range(func(k common.Hash, _ bool) bool {
		s.Used = append(s.Used, k)
		return true
	})
	return s
}

// Import replaces the state with s
func (r *Relayer) Import(s Snapshot) {
	used := make(map[common.Hash]bool, len(s.Used))
	for _, d := range s.Used {
		used[d] = true
	}
	r.used.Import(used)
}
