// Package token implements the fungible payment-token ledgers the marketplace
// settles in, and the owner-curated allow-list of tokens accepted as currency.
package token

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain/state"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// PaymentToken is the fungible-token surface consumed by the ledger components
type PaymentToken interface {
	// Address returns the token contract address
	Address() common.Address
	// BalanceOf returns the balance of account
	BalanceOf(account common.Address) *uint256.Int
	// Allowance returns how much spender may still move on behalf of owner
	Allowance(owner, spender common.Address) *uint256.Int
	// Transfer moves amount from the caller to to
	Transfer(c *chain.Context, to common.Address, amount *uint256.Int) error
	// TransferFrom moves amount from from to to, spending the caller's allowance
	TransferFrom(c *chain.Context, from, to common.Address, amount *uint256.Int) error
}

type allowanceKey struct {
	Owner   common.Address
	Spender common.Address
}

// Token is an ERC20-style ledger living on the host
type Token struct {
	address    common.Address
	symbol     string
	decimals   uint8
	access     *chain.Ownable
	balances   *state.Map[common.Address, *uint256.Int]
	allowances *state.Map[allowanceKey, *uint256.Int]
	supply     *state.Value[*uint256.Int]
}

// Config describes a token deployment
type Config struct {
	Address  common.Address
	Symbol   string
	Decimals uint8
	Owner    common.Address
}

// New creates a token writing to the host journal
func New(j *state.Journal, cfg Config) *Token {
	return &Token{
		address:    cfg.Address,
		symbol:     cfg.Symbol,
		decimals:   cfg.Decimals,
		access:     chain.NewOwnable(j, "token:"+cfg.Symbol, cfg.Address, cfg.Owner),
		balances:   state.NewMap[common.Address, *uint256.Int](j),
		allowances: state.NewMap[allowanceKey, *uint256.Int](j),
		supply:     state.NewValue(j, new(uint256.Int)),
	}
}

func (t *Token) Address() common.Address {
	return t.address
}

func (t *Token) Symbol() string {
	return t.symbol
}

func (t *Token) Decimals() uint8 {
	return t.decimals
}

// Owner returns the address allowed to mint
func (t *Token) Owner() common.Address {
	return t.access.Owner()
}

// TotalSupply returns the amount in circulation
func (t *Token) TotalSupply() *uint256.Int {
	return new(uint256.Int).Set(t.supply.Get())
}

func (t *Token) BalanceOf(account common.Address) *uint256.Int {
	if b, ok := t.balances.Get(account); ok {
		return new(uint256.Int).Set(b)
	}
	return new(uint256.Int)
}

func (t *Token) Allowance(owner, spender common.Address) *uint256.Int {
	if a, ok := t.allowances.Get(allowanceKey{Owner: owner, Spender: spender}); ok {
		return new(uint256.Int).Set(a)
	}
	return new(uint256.Int)
}

// Approve sets the caller's allowance for spender
func (t *Token) Approve(c *chain.Context, spender common.Address, amount *uint256.Int) error {
	if domain.IsZeroAddress(spender) {
		return domain.ErrApproveToZero
	}
	t.setAllowance(c.Caller(), spender, amount)
	c.Emit(t.address, domain.TokenApproval{
		Token:   t.address,
		Owner:   c.Caller(),
		Spender: spender,
		Amount:  new(uint256.Int).Set(amount),
	})
	return nil
}

func (t *Token) Transfer(c *chain.Context, to common.Address, amount *uint256.Int) error {
	return t.move(c, c.Caller(), to, amount)
}

func (t *Token) TransferFrom(c *chain.Context, from, to common.Address, amount *uint256.Int) error {
	if err := t.spendAllowance(from, c.Caller(), amount); err != nil {
		return err
	}
	return t.move(c, from, to, amount)
}

// Mint creates amount new tokens for to. Owner only.
func (t *Token) Mint(c *chain.Context, to common.Address, amount *uint256.Int) error {
	if err := t.access.OnlyOwner(c); err != nil {
		return err
	}
	if domain.IsZeroAddress(to) {
		return domain.ErrTokenTransferToZero
	}
	supply, overflow := new(uint256.Int).AddOverflow(t.supply.Get(), amount)
	if overflow {
		return domain.ErrArithmeticOverflow
	}
	t.supply.Set(supply)
	t.balances.Set(to, new(uint256.Int).Add(t.BalanceOf(to), amount))
	c.Emit(t.address, domain.TokenTransfer{
		Token:  t.address,
		To:     to,
		Amount: new(uint256.Int).Set(amount),
	})
	return nil
}

// Burn destroys amount of the caller's tokens
func (t *Token) Burn(c *chain.Context, amount *uint256.Int) error {
	from := c.Caller()
	balance := t.BalanceOf(from)
	if balance.Lt(amount) {
		return domain.ErrBurnExceedsBalance
	}
	t.setBalance(from, new(uint256.Int).Sub(balance, amount))
	t.supply.Set(new(uint256.Int).Sub(t.supply.Get(), amount))
	c.Emit(t.address, domain.TokenTransfer{
		Token:  t.address,
		From:   from,
		Amount: new(uint256.Int).Set(amount),
	})
	return nil
}

func (t *Token) move(c *chain.Context, from, to common.Address, amount *uint256.Int) error {
	if domain.IsZeroAddress(to) {
		return domain.ErrTokenTransferToZero
	}
	balance := t.BalanceOf(from)
	if balance.Lt(amount) {
		return domain.ErrInsufficientBalance
	}
	if amount.IsZero() || from == to {
		return nil
	}
	t.setBalance(from, new(uint256.Int).Sub(balance, amount))
	// cannot overflow: the sum of balances equals the supply
	t.setBalance(to, new(uint256.Int).Add(t.BalanceOf(to), amount))
	c.Emit(t.address, domain.TokenTransfer{
		Token:  t.address,
		From:   from,
		To:     to,
		Amount: new(uint256.Int).Set(amount),
	})
	return nil
}

func (t *Token) spendAllowance(owner, spender common.Address, amount *uint256.Int) error {
	current := t.Allowance(owner, spender)
	if current.Eq(maxAllowance) {
		return nil
	}
	if current.Lt(amount) {
		return domain.ErrInsufficientAllowance
	}
	t.setAllowance(owner, spender, new(uint256.Int).Sub(current, amount))
	return nil
}

func (t *Token) setBalance(account common.Address, amount *uint256.Int) {
	if amount.IsZero() {
		t.balances.Delete(account)
		return
	}
	t.balances.Set(account, amount)
}

func (t *Token) setAllowance(owner, spender common.Address, amount *uint256.Int) {
	key := allowanceKey{Owner: owner, Spender: spender}
	if amount.IsZero() {
		t.allowances.Delete(key)
		return
	}
	t.allowances.Set(key, new(uint256.Int).Set(amount))
}

var maxAllowance = new(uint256.Int).SetAllOne()

// AllowanceEntry is one allowance in a snapshot
type AllowanceEntry struct {
	Owner   common.Address `json:"owner"`
	Spender common.Address `json:"spender"`
	Amount  *uint256.Int   `json:"amount"`
}

// Snapshot is the serializable state of a token
type Snapshot struct {
	Owner      common.Address                  `json:"owner"`
	Supply     *uint256.Int                    `json:"supply"`
	Balances   map[common.Address]*uint256.Int `json:"balances"`
	Allowances []AllowanceEntry                `json:"allowances"`
}

// Export returns the current state
func (t *Token) Export() Snapshot {
	s := Snapshot{
		Owner:    t.access.Owner(),
		Supply:   t.TotalSupply(),
		Balances: t.balances.Export(),
	}
	t.allowances.Range(func(k allowanceKey, v *uint256.Int) bool {
		s.Allowances = append(s.Allowances, AllowanceEntry{Owner: k.Owner, Spender: k.Spender, Amount: v})
		return true
	})
	return s
}

// Import replaces the state with s
func (t *Token) Import(s Snapshot) {
	t.access.Import(s.Owner)
	supply := new(uint256.Int)
	if s.Supply != nil {
		supply.Set(s.Supply)
	}
	t.supply.Import(supply)
	t.balances.Import(s.Balances)
	allowances := make(map[allowanceKey]*uint256.Int, len(s.Allowances))
	for _, a := range s.Allowances {
		allowances[allowanceKey{Owner: a.Owner, Spender: a.Spender}] = a.Amount
	}
	t.allowances.Import(allowances)
}
