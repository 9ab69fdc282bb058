package node

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// ExpiredAuctions returns the auctions that ended at the current ledger time
func (n *Node) ExpiredAuctions(ctx context.Context) ([]domain.Auction, error) {
	var out []domain.Auction
	err := n.host.View(ctx, func(c *chain.Context) error {
		out = n.Marketplace.ExpiredAuctions(c.Now())
		return nil
	})
	return out, err
}

// SettleAuction closes an ended auction as caller: the winner claims when a bid
// exists, otherwise the asset goes back to the seller. The choice is made inside the
// transaction so it always matches the auction's committed state.
func (n *Node) SettleAuction(ctx context.Context, caller common.Address, auctionID common.Hash) (*chain.Receipt, error) {
	return n.host.Execute(ctx, caller, func(c *chain.Context) error {
		auction, err := n.Marketplace.GetAuction(auctionID)
		if err != nil {
			return err
		}
		if auction.HasBidder() {
			return n.Marketplace.ClaimNFT(c, auctionID)
		}
		return n.Marketplace.RefundAuction(c, auctionID)
	})
}
