package marketplace

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// AuctionInput describes a new auction
type AuctionInput struct {
	TokenID      common.Hash    `json:"token_id"`
	Share        uint64         `json:"share"` // 0 auctions a whole single-owner asset
	InitialBid   *uint256.Int   `json:"initial_bid"`
	PaymentToken common.Address `json:"payment_token"`
	EndAuction   uint64         `json:"end_auction"`
	SellPriority uint32         `json:"sell_priority"`
}

// CreateAuction puts an asset of the caller up for auction
func (m *Marketplace) CreateAuction(c *chain.Context, in AuctionInput) (common.Hash, error) {
	seller := c.Caller()
	if in.EndAuction <= c.Now() {
		return common.Hash{}, domain.ErrAuctionEndInPast
	}
	if in.InitialBid == nil || in.InitialBid.IsZero() {
		return common.Hash{}, domain.ErrPriceZero
	}
	if !m.payable.IsPayableToken(in.PaymentToken) {
		return common.Hash{}, domain.ErrPaymentTokenNotAllowed
	}
	project, err := m.ledger.Project(in.TokenID)
	if err != nil {
		return common.Hash{}, err
	}

	auctionID := domain.ListingID(in.TokenID, seller)
	if m.sales.Has(auctionID) || m.auctions.Has(auctionID) {
		return common.Hash{}, domain.ErrAlreadyOnSale
	}

	if err := m.escrow(c, project, seller, in.Share); err != nil {
		return common.Hash{}, err
	}

	auction := domain.Auction{
		ID:              auctionID,
		TokenID:         in.TokenID,
		Seller:          seller,
		Share:           in.Share,
		CurrentBidPrice: new(uint256.Int).Set(in.InitialBid),
		PaymentToken:    in.PaymentToken,
		EndAuction:      in.EndAuction,
		SellPriority:    in.SellPriority,
		CreatedAt:       c.Now(),
	}
	m.auctions.Set(auctionID, auction)

	if err := m.chargePriority(c, seller, auctionID, in.TokenID, domain.ListingKindAuction, 0, in.SellPriority); err != nil {
		return common.Hash{}, err
	}

	c.Emit(m.address, domain.AuctionCreated{Auction: auction})
	return auctionID, nil
}

// PlaceBid outbids the current bid of an open auction. The previous bidder is refunded.
func (m *Marketplace) PlaceBid(c *chain.Context, auctionID common.Hash, amount *uint256.Int) error {
	auction, ok := m.auctions.Get(auctionID)
	if !ok {
		return domain.ErrNoAuctionFound
	}
	if !auction.IsOpen(c.Now()) {
		return domain.ErrAuctionClosed
	}
	bidder := c.Caller()
	if bidder == auction.Seller {
		return domain.ErrBidderIsSeller
	}
	project, err := m.ledger.Project(auction.TokenID)
	if err != nil {
		return err
	}
	if bidder == project.Creator {
		return domain.ErrBidderIsCreator
	}
	if amount == nil || !amount.Gt(auction.CurrentBidPrice) {
		return domain.ErrBidTooLow
	}
	pay, err := m.tokens.Payment(auction.PaymentToken)
	if err != nil {
		return err
	}

	previousBidder := auction.CurrentBidOwner
	previousBid := auction.CurrentBidPrice

	auction.CurrentBidOwner = bidder
	auction.CurrentBidPrice = new(uint256.Int).Set(amount)
	m.auctions.Set(auctionID, auction)

	if err := pay.TransferFrom(m.self(c), bidder, m.address, amount); err != nil {
		return err
	}
	var refunded *uint256.Int
	if !domain.IsZeroAddress(previousBidder) {
		if err := pay.Transfer(m.self(c), previousBidder, previousBid); err != nil {
			return err
		}
		refunded = new(uint256.Int).Set(previousBid)
	}

	c.Emit(m.address, domain.BidPlaced{
		AuctionID:      auctionID,
		TokenID:        auction.TokenID,
		Bidder:         bidder,
		Amount:         new(uint256.Int).Set(amount),
		PreviousBidder: previousBidder,
		Refunded:       refunded,
	})
	return nil
}

// ClaimNFT settles an ended auction with a winning bid. Anyone may call it.
func (m *Marketplace) ClaimNFT(c *chain.Context, auctionID common.Hash) error {
	auction, ok := m.auctions.Get(auctionID)
	if !ok {
		return domain.ErrNoAuctionFound
	}
	if auction.IsOpen(c.Now()) {
		return domain.ErrRequireAuctionClose
	}
	if !auction.HasBidder() {
		return domain.ErrRequireBidder
	}
	project, err := m.ledger.Project(auction.TokenID)
	if err != nil {
		return err
	}
	pay, err := m.tokens.Payment(auction.PaymentToken)
	if err != nil {
		return err
	}

	m.auctions.Delete(auctionID)

	split := ComputeSplit(auction.CurrentBidPrice, project.CreatorCut)
	if err := m.distribute(c, pay, split, project.Creator, auction.Seller); err != nil {
		return err
	}
	if err := m.release(c, auction.TokenID, auction.Share, auction.CurrentBidOwner); err != nil {
		return err
	}

	c.Emit(m.address, domain.AuctionClaimed{
		AuctionID:    auctionID,
		TokenID:      auction.TokenID,
		Seller:       auction.Seller,
		Winner:       auction.CurrentBidOwner,
		Creator:      project.Creator,
		Share:        auction.Share,
		PaymentToken: auction.PaymentToken,
		Split:        split,
	})
	return nil
}

// RefundAuction returns the asset of an ended auction nobody bid on. Anyone may call it.
func (m *Marketplace) RefundAuction(c *chain.Context, auctionID common.Hash) error {
	auction, ok := m.auctions.Get(auctionID)
	if !ok {
		return domain.ErrNoAuctionFound
	}
	if auction.IsOpen(c.Now()) {
		return domain.ErrRequireAuctionClose
	}
	if auction.HasBidder() {
		return domain.ErrRequireNoBidder
	}

	m.auctions.Delete(auctionID)
	if err := m.release(c, auction.TokenID, auction.Share, auction.Seller); err != nil {
		return err
	}

	c.Emit(m.address, domain.AuctionRefunded{
		AuctionID: auctionID,
		TokenID:   auction.TokenID,
		Seller:    auction.Seller,
		Share:     auction.Share,
	})
	return nil
}

// SetAuctionSellPriority raises the priority of an open auction. Seller only.
func (m *Marketplace) SetAuctionSellPriority(c *chain.Context, auctionID common.Hash, priority uint32) error {
	auction, ok := m.auctions.Get(auctionID)
	if !ok {
		return domain.ErrNoAuctionFound
	}
	if auction.Seller != c.Caller() {
		return domain.ErrRequireSeller
	}
	if !auction.IsOpen(c.Now()) {
		return domain.ErrAuctionClosed
	}
	if err := m.chargePriority(c, auction.Seller, auctionID, auction.TokenID, domain.ListingKindAuction, auction.SellPriority, priority); err != nil {
		return err
	}
	auction.SellPriority = priority
	m.auctions.Set(auctionID, auction)
	return nil
}

// GetAuction returns the auction stored at auctionID
func (m *Marketplace) GetAuction(auctionID common.Hash) (domain.Auction, error) {
	auction, ok := m.auctions.Get(auctionID)
	if !ok {
		return domain.Auction{}, domain.ErrNoAuctionFound
	}
	return auction, nil
}

// IsAuctionOpen reports whether an auction at auctionID still accepts bids at now
func (m *Marketplace) IsAuctionOpen(auctionID common.Hash, now uint64) bool {
	auction, ok := m.auctions.Get(auctionID)
	return ok && auction.IsOpen(now)
}

// Auctions returns every auction, highest priority first
func (m *Marketplace) Auctions() []domain.Auction {
	out := make([]domain.Auction, 0, m.auctions.Len())
	m.auctions.Range(func(_ common.Hash, a domain.Auction) bool {
		out = append(out, a)
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

// ExpiredAuctions returns the auctions that ended at or before now, oldest first
func (m *Marketplace) ExpiredAuctions(now uint64) []domain.Auction {
	var out []domain.Auction
	m.auctions.Range(func(_ common.Hash, a domain.Auction) bool {
		if !a.IsOpen(now) {
			out = append(out, a)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].EndAuction != out[j].EndAuction {
			return out[i].EndAuction < out[j].EndAuction
		}
		return out[i].ID.Cmp(out[j].ID) < 0
	})
	return out
}
