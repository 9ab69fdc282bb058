package token

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain/state"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// Registry is the owner-curated allow-list of tokens accepted as sale and auction currency
type Registry struct {
	address   common.Address
	access    *chain.Ownable
	directory *Directory
	payable   *state.Map[common.Address, bool]
}

// NewRegistry creates an empty allow-list over the tokens known to directory
func NewRegistry(j *state.Journal, address, owner common.Address, directory *Directory) *Registry {
	return &Registry{
		address:   address,
		access:    chain.NewOwnable(j, "payment_token_registry", address, owner),
		directory: directory,
		payable:   state.NewMap[common.Address, bool](j),
	}
}

// Address returns the address of the registry
func (r *Registry) Address() common.Address {
	return r.address
}

// Ownable exposes the access control of the registry
func (r *Registry) Ownable() *chain.Ownable {
	return r.access
}

// AddPayableTokens allows every token in tokens as currency
func (r *Registry) AddPayableTokens(c *chain.Context, tokens []common.Address) error {
	if err := r.access.OnlyOwner(c); err != nil {
		return err
	}
	for _, addr := range tokens {
		if !r.directory.Has(addr) {
			return domain.ErrPaymentTokenNotAllowed
		}
		if r.payable.Has(addr) {
			continue
		}
		r.payable.Set(addr, true)
		c.Emit(r.address, domain.PayableTokenUpdated{Token: addr, Allowed: true})
	}
	return nil
}

// RemovePayableToken stops accepting token as currency. Existing listings keep their token.
func (r *Registry) RemovePayableToken(c *chain.Context, token common.Address) error {
	if err := r.access.OnlyOwner(c); err != nil {
		return err
	}
	if !r.payable.Has(token) {
		return nil
	}
	r.payable.Delete(token)
	c.Emit(r.address, domain.PayableTokenUpdated{Token: token, Allowed: false})
	return nil
}

// IsPayableToken reports whether token is accepted as currency
func (r *Registry) IsPayableToken(token common.Address) bool {
	return r.payable.Has(token)
}

// RequirePayable returns the payment token at addr if it is allow-listed
func (r *Registry) RequirePayable(addr common.Address) (PaymentToken, error) {
	if !r.IsPayableToken(addr) {
		return nil, domain.ErrPaymentTokenNotAllowed
	}
	return r.directory.Payment(addr)
}

// PayableTokens returns the allow-listed tokens ordered by address
func (r *Registry) PayableTokens() []common.Address {
	out := make([]common.Address, 0, r.payable.Len())
	r.payable.Range(func(k common.Address, _ bool) bool {
		out = append(out, k)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Cmp(out[j]) < 0
	})
	return out
}

// RegistrySnapshot is the serializable state of the registry
type RegistrySnapshot struct {
	Owner   common.Address   `json:"owner"`
	Payable []common.Address `json:"payable"`
}

// Export returns the current state
func (r *Registry) Export() RegistrySnapshot {
	return RegistrySnapshot{Owner: r.access.Owner(), Payable: r.PayableTokens()}
}

// Import replaces the state with s
func (r *Registry) Import(s RegistrySnapshot) {
	r.access.Import(s.Owner)
	payable := make(map[common.Address]bool, len(s.Payable))
	for _, addr := range s.Payable {
		payable[addr] = true
	}
	r.payable.Import(payable)
}
