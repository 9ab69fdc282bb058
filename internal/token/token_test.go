package token_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/mocks"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/token"
)

var (
	owner   = common.HexToAddress("0x0000000000000000000000000000000000000001")
	alice   = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob     = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	spender = common.HexToAddress("0x0000000000000000000000000000000000005bed")
	payAddr = common.HexToAddress("0x0000000000000000000000000000000000002001")
	regAddr = common.HexToAddress("0x0000000000000000000000000000000000001004")
)

type env struct {
	host     *chain.Host
	token    *token.Token
	registry *token.Registry
}

func newEnv(t *testing.T) *env {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1_700_000_000, 0)).AnyTimes()

	host := chain.NewHost(clock)
	tok := token.New(host.Journal(), token.Config{Address: payAddr, Symbol: "PAY", Decimals: 18, Owner: owner})
	reg := token.NewRegistry(host.Journal(), regAddr, owner, token.NewDirectory(tok))

	e := &env{host: host, token: tok, registry: reg}
	e.exec(t, owner, func(c *chain.Context) error {
		return tok.Mint(c, alice, uint256.NewInt(1000))
	})
	return e
}

func (e *env) exec(t *testing.T, caller common.Address, fn func(c *chain.Context) error) *chain.Receipt {
	t.Helper()
	receipt, err := e.host.Execute(context.Background(), caller, fn)
	require.NoError(t, err)
	return receipt
}

func (e *env) try(caller common.Address, fn func(c *chain.Context) error) error {
	_, err := e.host.Execute(context.Background(), caller, fn)
	return err
}

func TestTransfer(t *testing.T) {
	e := newEnv(t)

	receipt := e.exec(t, alice, func(c *chain.Context) error {
		return e.token.Transfer(c, bob, uint256.NewInt(400))
	})
	assert.Equal(t, uint64(600), e.token.BalanceOf(alice).Uint64())
	assert.Equal(t, uint64(400), e.token.BalanceOf(bob).Uint64())
	assert.Equal(t, uint64(1000), e.token.TotalSupply().Uint64())
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, domain.EventTokenTransfer, receipt.Events[0].Type)

	err := e.try(bob, func(c *chain.Context) error {
		return e.token.Transfer(c, alice, uint256.NewInt(401))
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	err = e.try(bob, func(c *chain.Context) error {
		return e.token.Transfer(c, common.Address{}, uint256.NewInt(1))
	})
	assert.ErrorIs(t, err, domain.ErrTokenTransferToZero)
}

func TestTransferFrom(t *testing.T) {
	tests := []struct {
		name      string
		allowance *uint256.Int
		amount    uint64
		wantErr   error
		remaining *uint256.Int
	}{
		{name: "within allowance", allowance: uint256.NewInt(500), amount: 300, remaining: uint256.NewInt(200)},
		{name: "exact allowance", allowance: uint256.NewInt(300), amount: 300, remaining: uint256.NewInt(0)},
		{name: "above allowance", allowance: uint256.NewInt(299), amount: 300, wantErr: domain.ErrInsufficientAllowance},
		{name: "infinite allowance is not spent", allowance: new(uint256.Int).SetAllOne(), amount: 300, remaining: new(uint256.Int).SetAllOne()},
		{name: "allowance checked before balance", allowance: uint256.NewInt(0), amount: 5000, wantErr: domain.ErrInsufficientAllowance},
		{name: "balance too low", allowance: uint256.NewInt(5000), amount: 5000, wantErr: domain.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			e.exec(t, alice, func(c *chain.Context) error {
				return e.token.Approve(c, spender, tt.allowance)
			})

			err := e.try(spender, func(c *chain.Context) error {
				return e.token.TransferFrom(c, alice, bob, uint256.NewInt(tt.amount))
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uint64(1000), e.token.BalanceOf(alice).Uint64())
				assert.Equal(t, tt.allowance, e.token.Allowance(alice, spender))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, e.token.BalanceOf(bob).Uint64())
			assert.Equal(t, tt.remaining, e.token.Allowance(alice, spender))
		})
	}
}

func TestMintAndBurn(t *testing.T) {
	e := newEnv(t)

	err := e.try(alice, func(c *chain.Context) error {
		return e.token.Mint(c, alice, uint256.NewInt(1))
	})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	e.exec(t, alice, func(c *chain.Context) error {
		return e.token.Burn(c, uint256.NewInt(100))
	})
	assert.Equal(t, uint64(900), e.token.TotalSupply().Uint64())

	err = e.try(alice, func(c *chain.Context) error {
		return e.token.Burn(c, uint256.NewInt(901))
	})
	assert.ErrorIs(t, err, domain.ErrBurnExceedsBalance)

	err = e.try(owner, func(c *chain.Context) error {
		return e.token.Mint(c, bob, new(uint256.Int).SetAllOne())
	})
	assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := newEnv(t)
	e.exec(t, alice, func(c *chain.Context) error {
		return e.token.Approve(c, spender, uint256.NewInt(77))
	})

	snapshot := e.token.Export()

	restored := newEnv(t)
	restored.token.Import(snapshot)
	assert.Equal(t, uint64(1000), restored.token.BalanceOf(alice).Uint64())
	assert.Equal(t, uint64(77), restored.token.Allowance(alice, spender).Uint64())
	assert.Equal(t, owner, restored.token.Owner())
}

func TestRegistry(t *testing.T) {
	e := newEnv(t)
	unknown := common.HexToAddress("0xdead")

	err := e.try(alice, func(c *chain.Context) error {
		return e.registry.AddPayableTokens(c, []common.Address{payAddr})
	})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	err = e.try(owner, func(c *chain.Context) error {
		return e.registry.AddPayableTokens(c, []common.Address{payAddr, unknown})
	})
	assert.ErrorIs(t, err, domain.ErrPaymentTokenNotAllowed)
	assert.False(t, e.registry.IsPayableToken(payAddr), "a failed batch adds nothing")

	e.exec(t, owner, func(c *chain.Context) error {
		return e.registry.AddPayableTokens(c, []common.Address{payAddr})
	})
	assert.True(t, e.registry.IsPayableToken(payAddr))
	assert.Equal(t, []common.Address{payAddr}, e.registry.PayableTokens())

	pay, err := e.registry.RequirePayable(payAddr)
	require.NoError(t, err)
	assert.Equal(t, payAddr, pay.Address())

	e.exec(t, owner, func(c *chain.Context) error {
		return e.registry.RemovePayableToken(c, payAddr)
	})
	assert.False(t, e.registry.IsPayableToken(payAddr))
	_, err = e.registry.RequirePayable(payAddr)
	assert.ErrorIs(t, err, domain.ErrPaymentTokenNotAllowed)
}
