package marketplace

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// SellInput describes a new sale listing
type SellInput struct {
	TokenID      common.Hash    `json:"token_id"`
	Share        uint64         `json:"share"` // 0 lists a whole single-owner asset
	Price        *uint256.Int   `json:"price"`
	PaymentToken common.Address `json:"payment_token"`
	SellPriority uint32         `json:"sell_priority"`
}

// UpdateSaleInput describes the new terms of a sale listing
type UpdateSaleInput struct {
	Price        *uint256.Int   `json:"price"`
	PaymentToken common.Address `json:"payment_token"`
	SellPriority uint32         `json:"sell_priority"`
}

// Sell lists an asset of the caller for sale
func (m *Marketplace) Sell(c *chain.Context, in SellInput) (common.Hash, error) {
	return m.sell(c, c.Caller(), in)
}

// SellMeta lists an asset of seller on behalf of a relayed signer. Relayer only.
func (m *Marketplace) SellMeta(c *chain.Context, seller common.Address, in SellInput) (common.Hash, error) {
	if err := m.onlyRelayer(c); err != nil {
		return common.Hash{}, err
	}
	return m.sell(c.As(seller), seller, in)
}

func (m *Marketplace) sell(c *chain.Context, seller common.Address, in SellInput) (common.Hash, error) {
	if in.Price == nil || in.Price.IsZero() {
		return common.Hash{}, domain.ErrPriceZero
	}
	if !m.payable.IsPayableToken(in.PaymentToken) {
		return common.Hash{}, domain.ErrPaymentTokenNotAllowed
	}
	project, err := m.ledger.Project(in.TokenID)
	if err != nil {
		return common.Hash{}, err
	}

	saleID := domain.ListingID(in.TokenID, seller)
	if m.sales.Has(saleID) || m.auctions.Has(saleID) {
		return common.Hash{}, domain.ErrAlreadyOnSale
	}

	if err := m.escrow(c, project, seller, in.Share); err != nil {
		return common.Hash{}, err
	}

	sale := domain.Sale{
		ID:           saleID,
		TokenID:      in.TokenID,
		Seller:       seller,
		Share:        in.Share,
		Price:        new(uint256.Int).Set(in.Price),
		PaymentToken: in.PaymentToken,
		SellPriority: in.SellPriority,
		CreatedAt:    c.Now(),
	}
	m.sales.Set(saleID, sale)

	if err := m.chargePriority(c, seller, saleID, in.TokenID, domain.ListingKindSale, 0, in.SellPriority); err != nil {
		return common.Hash{}, err
	}

	c.Emit(m.address, domain.SaleCreated{Sale: sale})
	return saleID, nil
}

// UpdateSale changes the price, payment token and priority of a listing. Seller only.
func (m *Marketplace) UpdateSale(c *chain.Context, saleID common.Hash, in UpdateSaleInput) error {
	sale, err := m.sellerSale(c, saleID)
	if err != nil {
		return err
	}
	if in.Price == nil || in.Price.IsZero() {
		return domain.ErrPriceZero
	}
	if !m.payable.IsPayableToken(in.PaymentToken) {
		return domain.ErrPaymentTokenNotAllowed
	}
	if err := m.chargePriority(c, sale.Seller, saleID, sale.TokenID, domain.ListingKindSale, sale.SellPriority, in.SellPriority); err != nil {
		return err
	}

	sale.Price = new(uint256.Int).Set(in.Price)
	sale.PaymentToken = in.PaymentToken
	sale.SellPriority = in.SellPriority
	m.sales.Set(saleID, sale)

	c.Emit(m.address, domain.SaleUpdated{Sale: sale})
	return nil
}

// SetSellPriority raises the priority of a listing. Seller only.
func (m *Marketplace) SetSellPriority(c *chain.Context, saleID common.Hash, priority uint32) error {
	sale, err := m.sellerSale(c, saleID)
	if err != nil {
		return err
	}
	if err := m.chargePriority(c, sale.Seller, saleID, sale.TokenID, domain.ListingKindSale, sale.SellPriority, priority); err != nil {
		return err
	}
	sale.SellPriority = priority
	m.sales.Set(saleID, sale)
	return nil
}

// RemoveSale delists an asset and returns it to the seller. Seller only.
func (m *Marketplace) RemoveSale(c *chain.Context, saleID common.Hash) error {
	sale, err := m.sellerSale(c, saleID)
	if err != nil {
		return err
	}
	m.sales.Delete(saleID)
	if err := m.release(c, sale.TokenID, sale.Share, sale.Seller); err != nil {
		return err
	}
	c.Emit(m.address, domain.SaleRemoved{SaleID: saleID, TokenID: sale.TokenID, Seller: sale.Seller, Share: sale.Share})
	return nil
}

// Buy buys share units of a listing, or the whole asset when share is 0. The buyer pays
// the listed price; maxPrice only guards against a price raised after the buyer looked.
func (m *Marketplace) Buy(c *chain.Context, saleID common.Hash, share uint64, maxPrice *uint256.Int) error {
	return m.buy(c, c.Caller(), saleID, share, maxPrice)
}

// BuyMeta buys on behalf of a relayed signer. Relayer only.
func (m *Marketplace) BuyMeta(c *chain.Context, buyer common.Address, saleID common.Hash, share uint64, maxPrice *uint256.Int) error {
	if err := m.onlyRelayer(c); err != nil {
		return err
	}
	return m.buy(c.As(buyer), buyer, saleID, share, maxPrice)
}

func (m *Marketplace) buy(c *chain.Context, buyer common.Address, saleID common.Hash, share uint64, maxPrice *uint256.Int) error {
	sale, ok := m.sales.Get(saleID)
	if !ok {
		return domain.ErrNoSaleFound
	}
	if maxPrice == nil || maxPrice.Lt(sale.Price) {
		return domain.ErrMaxPriceBelowPrice
	}

	units := uint64(1)
	if sale.Share == 0 {
		if share != 0 {
			return domain.ErrInputShareNotAllowed
		}
	} else {
		if share == 0 {
			return domain.ErrInputShareZero
		}
		if share > sale.Share {
			return domain.ErrShareExceedsListed
		}
		units = share
	}

	project, err := m.ledger.Project(sale.TokenID)
	if err != nil {
		return err
	}
	total, err := totalPrice(sale.Price, units)
	if err != nil {
		return err
	}
	pay, err := m.tokens.Payment(sale.PaymentToken)
	if err != nil {
		return err
	}

	// bookkeeping before any token moves
	remaining := uint64(0)
	if sale.Share > 0 {
		remaining = sale.Share - share
	}
	if remaining == 0 {
		m.sales.Delete(saleID)
	} else {
		sale.Share = remaining
		m.sales.Set(saleID, sale)
	}

	if err := pay.TransferFrom(m.self(c), buyer, m.address, total); err != nil {
		return err
	}
	split := ComputeSplit(total, project.CreatorCut)
	if err := m.distribute(c, pay, split, project.Creator, sale.Seller); err != nil {
		return err
	}
	if err := m.release(c, sale.TokenID, share, buyer); err != nil {
		return err
	}

	c.Emit(m.address, domain.SaleBought{
		SaleID:         saleID,
		TokenID:        sale.TokenID,
		Seller:         sale.Seller,
		Buyer:          buyer,
		Creator:        project.Creator,
		Share:          share,
		Price:          new(uint256.Int).Set(sale.Price),
		PaymentToken:   sale.PaymentToken,
		Split:          split,
		RemainingShare: remaining,
	})
	return nil
}

// GetSale returns the listing stored at saleID
func (m *Marketplace) GetSale(saleID common.Hash) (domain.Sale, error) {
	sale, ok := m.sales.Get(saleID)
	if !ok {
		return domain.Sale{}, domain.ErrNoSaleFound
	}
	return sale, nil
}

// IsSellActive reports whether a listing exists at saleID
func (m *Marketplace) IsSellActive(saleID common.Hash) bool {
	return m.sales.Has(saleID)
}

// Sales returns every listing, highest priority first
func (m *Marketplace) Sales() []domain.Sale {
	out := make([]domain.Sale, 0, m.sales.Len())
	m.sales.Range(func(_ common.Hash, s domain.Sale) bool {
		out = append(out, s)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].SellPriority != out[j].SellPriority {
			return out[i].SellPriority > out[j].SellPriority
		}
		return out[i].ID.Cmp(out[j].ID) < 0
	})
	return out
}

func (m *Marketplace) sellerSale(c *chain.Context, saleID common.Hash) (domain.Sale, error) {
	sale, ok := m.sales.Get(saleID)
	if !ok {
		return domain.Sale{}, domain.ErrNoSaleFound
	}
	if sale.Seller != c.Caller() {
		return domain.Sale{}, domain.ErrRequireSeller
	}
	return sale, nil
}
