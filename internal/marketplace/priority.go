package marketplace

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// ChargeDelta returns the fee of raising sell priority from old to new.
// Priority never decreases; keeping it unchanged is free.
func ChargeDelta(oldPriority, newPriority uint32) (*uint256.Int, error) {
	if newPriority < oldPriority {
		return nil, domain.ErrPriorityDecrease
	}
	delta := uint256.NewInt(uint64(newPriority - oldPriority))
	// at most 2^32 * 10^15, far below 2^256
	return delta.Mul(delta, uint256.NewInt(domain.PriorityUnitFee)), nil
}

// chargePriority collects the fee of raising a listing's priority from payer
func (m *Marketplace) chargePriority(c *chain.Context, payer common.Address, listingID, tokenID common.Hash, kind domain.ListingKind, oldPriority, newPriority uint32) error {
	fee, err := ChargeDelta(oldPriority, newPriority)
	if err != nil {
		return err
	}
	if fee.IsZero() {
		return nil
	}

	feeToken := m.feeToken.Get()
	pay, err := m.tokens.Payment(feeToken)
	if err != nil {
		return err
	}
	if err := pay.TransferFrom(m.self(c), payer, m.address, fee); err != nil {
		return err
	}
	if err := m.credit(feeToken, fee); err != nil {
		return err
	}

	c.Emit(m.address, domain.PriorityUpdated{
		ListingID:   listingID,
		TokenID:     tokenID,
		Kind:        kind,
		OldPriority: oldPriority,
		NewPriority: newPriority,
		Fee:         fee,
	})
	return nil
}
