package node_test

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/marketplace"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/node/nodetest"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/ownership"
)

func TestSettleAuction(t *testing.T) {
	f := nodetest.New(t)
	ctx := context.Background()
	alice, bob := f.Alice.Address, f.Bob.Address
	keeper := common.HexToAddress("0x00000000000000000000000000000000000000ee")

	auctionFor := func(url string) (common.Hash, common.Hash) {
		tokenID := domain.TokenIDFromURL(url)
		var auctionID common.Hash
		f.MustExec(t, alice, func(c *chain.Context) error {
			if _, err := f.Node.Ownership.Mint(c, ownership.MintInput{ProjectURL: url, NFTType: domain.NFTTypePercentageCut, CreatorCut: 10}); err != nil {
				return err
			}
			var err error
			auctionID, err = f.Node.Marketplace.CreateAuction(c, marketplace.AuctionInput{
				TokenID:      tokenID,
				InitialBid:   uint256.NewInt(100),
				PaymentToken: nodetest.PayToken,
				EndAuction:   f.Now() + 60,
			})
			return err
		})
		return tokenID, auctionID
	}

	wonToken, won := auctionFor("https://github.com/example/won")
	unsoldToken, unsold := auctionFor("https://github.com/example/unsold")

	f.AllowMax(t, nodetest.PayToken, bob, nodetest.Marketplace)
	f.MustExec(t, bob, func(c *chain.Context) error {
		return f.Node.Marketplace.PlaceBid(c, won, uint256.NewInt(150))
	})

	expired, err := f.Node.ExpiredAuctions(ctx)
	require.NoError(t, err)
	assert.Empty(t, expired)

	_, err = f.Node.SettleAuction(ctx, keeper, won)
	assert.ErrorIs(t, err, domain.ErrRequireAuctionClose)

	f.Advance(time.Minute)
	expired, err = f.Node.ExpiredAuctions(ctx)
	require.NoError(t, err)
	assert.Len(t, expired, 2)

	receipt, err := f.Node.SettleAuction(ctx, keeper, won)
	require.NoError(t, err)
	assert.Equal(t, keeper, receipt.Caller)
	assert.Equal(t, domain.EventAuctionClaimed, receipt.Events[len(receipt.Events)-1].Type)
	owner, err := f.Node.Ownership.OwnerOf(wonToken)
	require.NoError(t, err)
	assert.Equal(t, bob, owner)

	receipt, err = f.Node.SettleAuction(ctx, keeper, unsold)
	require.NoError(t, err)
	assert.Equal(t, domain.EventAuctionRefunded, receipt.Events[len(receipt.Events)-1].Type)
	owner, err = f.Node.Ownership.OwnerOf(unsoldToken)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	_, err = f.Node.SettleAuction(ctx, keeper, won)
	assert.ErrorIs(t, err, domain.ErrNoAuctionFound)

	expired, err = f.Node.ExpiredAuctions(ctx)
	require.NoError(t, err)
	assert.Empty(t, expired)
}
