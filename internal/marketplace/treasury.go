package marketplace

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// MarketplaceEarning returns the accrued treasury balance in tokenAddr
func (m *Marketplace) MarketplaceEarning(tokenAddr common.Address) *uint256.Int {
	if v, ok := m.earnings.Get(tokenAddr); ok {
		return new(uint256.Int).Set(v)
	}
	return new(uint256.Int)
}

// Earnings returns every non-zero treasury balance
func (m *Marketplace) Earnings() map[common.Address]*uint256.Int {
	return m.earnings.Export()
}

// WithdrawEarning sends amount of the treasury balance in tokenAddr to to. Owner only.
func (m *Marketplace) WithdrawEarning(c *chain.Context, tokenAddr, to common.Address, amount *uint256.Int) error {
	if err := m.access.OnlyOwner(c); err != nil {
		return err
	}
	if domain.IsZeroAddress(to) {
		return domain.ErrTokenTransferToZero
	}
	balance := m.MarketplaceEarning(tokenAddr)
	if amount.Gt(balance) {
		return domain.ErrAmountExceedEarning
	}

	remaining := new(uint256.Int).Sub(balance, amount)
	if remaining.IsZero() {
		m.earnings.Delete(tokenAddr)
	} else {
		m.earnings.Set(tokenAddr, remaining)
	}

	pay, err := m.tokens.Payment(tokenAddr)
	if err != nil {
		return err
	}
	if err := pay.Transfer(m.self(c), to, amount); err != nil {
		return err
	}

	c.Emit(m.address, domain.EarningWithdrawn{PaymentToken: tokenAddr, To: to, Amount: new(uint256.Int).Set(amount)})
	return nil
}
