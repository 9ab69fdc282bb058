package marketplace

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/token"
)

var hundred = uint256.NewInt(100)

// ComputeSplit divides total into the marketplace fee, the creator cut and the seller
// proceeds. Division remainders stay with the seller so the parts always sum to total.
func ComputeSplit(total *uint256.Int, creatorCutPercent uint8) domain.Split {
	marketCut, _ := new(uint256.Int).MulDivOverflow(total, uint256.NewInt(domain.MarketplaceFeePercent), hundred)
	creatorCut, _ := new(uint256.Int).MulDivOverflow(total, uint256.NewInt(uint64(creatorCutPercent)), hundred)

	seller := new(uint256.Int).Sub(total, marketCut)
	seller.Sub(seller, creatorCut)

	return domain.Split{
		Total:          new(uint256.Int).Set(total),
		MarketplaceCut: marketCut,
		CreatorCut:     creatorCut,
		SellerProceeds: seller,
	}
}

// totalPrice returns price * units
func totalPrice(price *uint256.Int, units uint64) (*uint256.Int, error) {
	total, overflow := new(uint256.Int).MulOverflow(price, uint256.NewInt(units))
	if overflow {
		return nil, domain.ErrArithmeticOverflow
	}
	return total, nil
}

// distribute pays out a settlement the marketplace already holds in custody
func (m *Marketplace) distribute(c *chain.Context, pay token.PaymentToken, split domain.Split, creator, seller common.Address) error {
	if err := m.credit(pay.Address(), split.MarketplaceCut); err != nil {
		return err
	}
	if !split.CreatorCut.IsZero() {
		if err := pay.Transfer(m.self(c), creator, split.CreatorCut); err != nil {
			return err
		}
	}
	if !split.SellerProceeds.IsZero() {
		if err := pay.Transfer(m.self(c), seller, split.SellerProceeds); err != nil {
			return err
		}
	}
	return nil
}

// credit adds amount to the treasury balance of tokenAddr
func (m *Marketplace) credit(tokenAddr common.Address, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	balance, overflow := new(uint256.Int).AddOverflow(m.MarketplaceEarning(tokenAddr), amount)
	if overflow {
		return domain.ErrArithmeticOverflow
	}
	m.earnings.Set(tokenAddr, balance)
	return nil
}
