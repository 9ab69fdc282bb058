// Package nodetest builds a funded in-memory ledger for tests.
package nodetest

import (
	"context"
	"crypto/ecdsa"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/mocks"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/node"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/registry"
)

// Genesis time of every fixture
const GenesisTime int64 = 1_700_000_000

// Deployment addresses
var (
	Owner       = common.HexToAddress("0x0000000000000000000000000000000000000001")
	Ownership   = common.HexToAddress("0x0000000000000000000000000000000000001001")
	Marketplace = common.HexToAddress("0x0000000000000000000000000000000000001002")
	Relayer     = common.HexToAddress("0x0000000000000000000000000000000000001003")
	Registry    = common.HexToAddress("0x0000000000000000000000000000000000001004")
	PayToken    = common.HexToAddress("0x0000000000000000000000000000000000002001")
	FeeToken    = common.HexToAddress("0x0000000000000000000000000000000000002002")
	OtherToken  = common.HexToAddress("0x0000000000000000000000000000000000002003")
)

// InitialBalance is the genesis balance of every account in every token
var InitialBalance = uint256.MustFromDecimal("1000000000000000000000000")

// Account is a funded key pair
type Account struct {
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// Fixture is a ledger with funded accounts and a controllable clock
type Fixture struct {
	Node     *node.Node
	Approver *registry.Registry
	Alice    Account
	Bob      Account
	Carol    Account
	Dave     Account
	Verifier Account
	Minter   Account

	now time.Time
}

// New builds a ledger at GenesisTime. Alice, Bob, Carol and Dave hold InitialBalance of
// PayToken, FeeToken and OtherToken; PayToken and FeeToken are payable.
func New(t *testing.T) *Fixture {
	t.Helper()

	f := &Fixture{now: time.Unix(GenesisTime, 0)}
	f.Alice = newAccount(t)
	f.Bob = newAccount(t)
	f.Carol = newAccount(t)
	f.Dave = newAccount(t)
	f.Verifier = newAccount(t)
	f.Minter = newAccount(t)

	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return f.now }).AnyTimes()

	balances := func() map[common.Address]*uint256.Int {
		out := make(map[common.Address]*uint256.Int)
		for _, a := range []Account{f.Alice, f.Bob, f.Carol, f.Dave} {
			out[a.Address] = new(uint256.Int).Set(InitialBalance)
		}
		return out
	}

	f.Approver = registry.NewRegistry(nil, adapter.NewJSON(), "")
	n, err := node.New(node.Config{
		ChainID:            31337,
		Owner:              Owner,
		OwnershipAddress:   Ownership,
		MarketplaceAddress: Marketplace,
		RelayerAddress:     Relayer,
		RegistryAddress:    Registry,
		FeeToken:           FeeToken,
		Tokens: []node.TokenConfig{
			{Address: PayToken, Symbol: "PAY", Decimals: 18, Payable: true, Balances: balances()},
			{Address: FeeToken, Symbol: "FEE", Decimals: 18, Payable: true, Balances: balances()},
			{Address: OtherToken, Symbol: "OTH", Decimals: 18, Balances: balances()},
		},
		Minters:   []common.Address{f.Minter.Address},
		Verifiers: []common.Address{f.Verifier.Address},
	}, clock, adapter.NewJSON(), f.Approver)
	require.NoError(t, err)

	_, err = n.Genesis(context.Background())
	require.NoError(t, err)

	f.Node = n
	return f
}

func newAccount(t *testing.T) Account {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return Account{Key: key, Address: crypto.PubkeyToAddress(key.PublicKey)}
}

// Now returns the current fixture time in unix seconds
func (f *Fixture) Now() uint64 {
	return uint64(f.now.Unix()) //nolint:gosec,G115
}

// Advance moves the clock forward
func (f *Fixture) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// Exec runs fn as a transaction of caller
func (f *Fixture) Exec(caller common.Address, fn func(c *chain.Context) error) (*chain.Receipt, error) {
	return f.Node.Execute(context.Background(), caller, fn)
}

// MustExec runs fn as a transaction of caller and fails the test on error
func (f *Fixture) MustExec(t *testing.T, caller common.Address, fn func(c *chain.Context) error) *chain.Receipt {
	t.Helper()
	receipt, err := f.Exec(caller, fn)
	require.NoError(t, err)
	return receipt
}

// Balance returns the balance of holder in tokenAddr
func (f *Fixture) Balance(t *testing.T, tokenAddr, holder common.Address) *uint256.Int {
	t.Helper()
	tok, err := f.Node.Tokens.Token(tokenAddr)
	require.NoError(t, err)
	return tok.BalanceOf(holder)
}

// Allow sets the allowance of spender over holder's tokenAddr balance
func (f *Fixture) Allow(t *testing.T, tokenAddr, holder, spender common.Address, amount *uint256.Int) {
	t.Helper()
	tok, err := f.Node.Tokens.Token(tokenAddr)
	require.NoError(t, err)
	f.MustExec(t, holder, func(c *chain.Context) error {
		return tok.Approve(c, spender, amount)
	})
}

// AllowMax gives spender an unlimited allowance over holder's tokenAddr balance
func (f *Fixture) AllowMax(t *testing.T, tokenAddr, holder, spender common.Address) {
	t.Helper()
	f.Allow(t, tokenAddr, holder, spender, new(uint256.Int).SetAllOne())
}
