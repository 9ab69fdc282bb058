package ownership_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/node/nodetest"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/ownership"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/signature"
)

const projectURL = "https://github.com/ujjwalguptaofficial/jsstore"

var tokenID = domain.TokenIDFromURL(projectURL)

func mintSingle(t *testing.T, f *nodetest.Fixture, to common.Address, cut uint8) {
	t.Helper()
	f.MustExec(t, to, func(c *chain.Context) error {
		_, err := f.Node.Ownership.Mint(c, ownership.MintInput{
			ProjectURL: projectURL,
			NFTType:    domain.NFTTypePercentageCut,
			CreatorCut: cut,
		})
		return err
	})
}

func mintShares(t *testing.T, f *nodetest.Fixture, to common.Address) {
	t.Helper()
	require.NoError(t, f.Approver.SetVerifier(to, true))
	f.MustExec(t, to, func(c *chain.Context) error {
		_, err := f.Node.Ownership.Mint(c, ownership.MintInput{
			ProjectURL: projectURL,
			NFTType:    domain.NFTTypeShare,
			CreatorCut: 10,
			TotalShare: domain.TotalShares,
		})
		return err
	})
}

func sumShares(l *ownership.Ledger, id common.Hash) uint64 {
	var sum uint64
	for _, h := range l.HoldersOf(id) {
		sum += h.Share
	}
	return sum
}

func TestMintSingleOwner(t *testing.T) {
	f := nodetest.New(t)
	alice := f.Alice.Address
	l := f.Node.Ownership

	receipt := f.MustExec(t, alice, func(c *chain.Context) error {
		id, err := l.Mint(c, ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTTypePercentageCut, CreatorCut: 30})
		assert.Equal(t, tokenID, id)
		return err
	})

	project, err := l.Project(tokenID)
	require.NoError(t, err)
	assert.Equal(t, alice, project.Owner)
	assert.Equal(t, alice, project.Creator)
	assert.Equal(t, uint8(30), project.CreatorCut)
	assert.Equal(t, "github.com/ujjwalguptaofficial/jsstore", project.URL)
	assert.False(t, project.IsShareToken())

	require.Len(t, receipt.Events, 2)
	assert.Equal(t, domain.EventProjectMinted, receipt.Events[0].Type)
	assert.Equal(t, domain.Transfer{TokenID: tokenID, To: alice}, receipt.Events[1].Payload)
	require.NotNil(t, receipt.Events[0].TokenID)
	assert.Equal(t, tokenID, *receipt.Events[0].TokenID)
}

func TestMintValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      ownership.MintInput
		wantErr error
	}{
		{"empty url", ownership.MintInput{ProjectURL: " "}, domain.ErrEmptyProjectURL},
		{"creator cut at limit", ownership.MintInput{ProjectURL: projectURL, CreatorCut: 50}, domain.ErrCreatorCutLimit},
		{"unknown type", ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTType(9)}, domain.ErrInvalidNFTType},
		{"tokenized type", ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTTypeTokenized}, domain.ErrInvalidNFTType},
		{"share type without shares", ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTTypeShare}, domain.ErrInvalidTotalShare},
		{"shares on single-owner type", ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTTypeEquity, TotalShare: domain.TotalShares}, domain.ErrInvalidNFTType},
		{"wrong share total", ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTTypeShare, TotalShare: 100}, domain.ErrInvalidTotalShare},
		{"unapproved share project", ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTTypeShare, TotalShare: domain.TotalShares}, domain.ErrProjectNotApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := nodetest.New(t)
			_, err := f.Exec(f.Alice.Address, func(c *chain.Context) error {
				_, err := f.Node.Ownership.Mint(c, tt.in)
				return err
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, f.Node.Ownership.Exists(tokenID))
		})
	}
}

func TestDirectTypeForcesZeroCut(t *testing.T) {
	f := nodetest.New(t)
	f.MustExec(t, f.Alice.Address, func(c *chain.Context) error {
		_, err := f.Node.Ownership.Mint(c, ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTTypeDirect, CreatorCut: 20})
		return err
	})
	project, err := f.Node.Ownership.Project(tokenID)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), project.CreatorCut)
}

func TestMintTwiceAndBurnPermanence(t *testing.T) {
	f := nodetest.New(t)
	alice := f.Alice.Address
	l := f.Node.Ownership
	mintSingle(t, f, alice, 10)

	mintAgain := func(c *chain.Context) error {
		_, err := l.Mint(c, ownership.MintInput{ProjectURL: "github.com/UjjwalGuptaOfficial/jsstore/", NFTType: domain.NFTTypeEquity})
		return err
	}

	_, err := f.Exec(f.Bob.Address, mintAgain)
	assert.ErrorIs(t, err, domain.ErrAlreadyMinted)

	_, err = f.Exec(f.Bob.Address, func(c *chain.Context) error {
		return l.Burn(c, tokenID)
	})
	assert.ErrorIs(t, err, domain.ErrIncorrectOwner)

	receipt := f.MustExec(t, alice, func(c *chain.Context) error {
		return l.Burn(c, tokenID)
	})
	assert.Equal(t, domain.EventProjectBurned, receipt.Events[len(receipt.Events)-1].Type)
	assert.False(t, l.Exists(tokenID))
	assert.True(t, l.IsRetired(tokenID))

	_, err = l.OwnerOf(tokenID)
	assert.ErrorIs(t, err, domain.ErrInvalidTokenID)

	_, err = f.Exec(alice, mintAgain)
	assert.ErrorIs(t, err, domain.ErrAlreadyMinted)
	_, err = f.Exec(f.Minter.Address, func(c *chain.Context) error {
		_, err := l.MintTo(c, alice, ownership.MintInput{ProjectURL: projectURL})
		return err
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyMinted)
}

func TestMintTo(t *testing.T) {
	f := nodetest.New(t)
	l := f.Node.Ownership
	in := ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTTypeEquity, CreatorCut: 5}

	_, err := f.Exec(f.Alice.Address, func(c *chain.Context) error {
		_, err := l.MintTo(c, f.Bob.Address, in)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrOnlyMinters)

	f.MustExec(t, f.Minter.Address, func(c *chain.Context) error {
		_, err := l.MintTo(c, f.Bob.Address, in)
		return err
	})
	owner, err := l.OwnerOf(tokenID)
	require.NoError(t, err)
	assert.Equal(t, f.Bob.Address, owner)
}

func TestMintMetaRequiresRelayer(t *testing.T) {
	f := nodetest.New(t)
	_, err := f.Exec(f.Alice.Address, func(c *chain.Context) error {
		_, err := f.Node.Ownership.MintMeta(c, f.Alice.Address, ownership.MintInput{ProjectURL: projectURL})
		return err
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRelayer)
}

func TestApprovedShareMintChargesWorth(t *testing.T) {
	f := nodetest.New(t)
	alice := f.Alice.Address
	l := f.Node.Ownership
	worth := uint256.NewInt(5_000)
	require.NoError(t, f.Approver.ApproveProject(projectURL, alice, worth))

	in := ownership.MintInput{ProjectURL: projectURL, NFTType: domain.NFTTypeShare, CreatorCut: 10, TotalShare: domain.TotalShares}

	// someone other than the approved minter
	_, err := f.Exec(f.Bob.Address, func(c *chain.Context) error {
		_, err := l.Mint(c, in)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotApproved)

	// no allowance for the worth fee
	_, err = f.Exec(alice, func(c *chain.Context) error {
		_, err := l.Mint(c, in)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientAllowance)
	assert.False(t, l.Exists(tokenID))

	f.Allow(t, nodetest.FeeToken, alice, nodetest.Ownership, worth)
	before := f.Balance(t, nodetest.FeeToken, alice)
	f.MustExec(t, alice, func(c *chain.Context) error {
		_, err := l.Mint(c, in)
		return err
	})

	assert.Equal(t, domain.TotalShares, l.ShareOf(tokenID, alice))
	assert.Equal(t, domain.TotalShares, l.TotalShareOf(tokenID))
	assert.Equal(t, new(uint256.Int).Sub(before, worth), f.Balance(t, nodetest.FeeToken, alice))
	assert.Equal(t, worth, f.Balance(t, nodetest.FeeToken, nodetest.Ownership))

	// burning an approved project needs the approver role and refunds the worth
	_, err = f.Exec(alice, func(c *chain.Context) error {
		return l.Burn(c, tokenID)
	})
	assert.ErrorIs(t, err, domain.ErrOnlyApprover)

	require.NoError(t, f.Approver.SetApprover(alice, true))
	receipt := f.MustExec(t, alice, func(c *chain.Context) error {
		return l.Burn(c, tokenID)
	})
	assert.Equal(t, before, f.Balance(t, nodetest.FeeToken, alice))
	assert.Empty(t, l.HoldersOf(tokenID))
	burned := receipt.Events[len(receipt.Events)-1].Payload.(domain.ProjectBurned)
	assert.Equal(t, worth, burned.Refund)
}

func TestShareBurnRequiresEveryUnit(t *testing.T) {
	f := nodetest.New(t)
	alice := f.Alice.Address
	l := f.Node.Ownership
	mintShares(t, f, alice)

	f.MustExec(t, alice, func(c *chain.Context) error {
		return l.TransferShare(c, alice, f.Bob.Address, tokenID, 1)
	})
	_, err := f.Exec(alice, func(c *chain.Context) error {
		return l.Burn(c, tokenID)
	})
	assert.ErrorIs(t, err, domain.ErrIncorrectOwner)
}

func TestTransferShare(t *testing.T) {
	f := nodetest.New(t)
	alice, bob, carol := f.Alice.Address, f.Bob.Address, f.Carol.Address
	l := f.Node.Ownership
	mintShares(t, f, alice)

	receipt := f.MustExec(t, alice, func(c *chain.Context) error {
		return l.TransferShare(c, alice, bob, tokenID, 2_500)
	})
	assert.Equal(t, domain.Transfer{TokenID: tokenID, From: alice, To: bob, Share: 2_500}, receipt.Events[0].Payload)
	assert.Equal(t, uint64(7_500), l.ShareOf(tokenID, alice))
	assert.Equal(t, uint64(2_500), l.ShareOf(tokenID, bob))
	assert.Equal(t, domain.TotalShares, sumShares(l, tokenID))
	owner, _ := l.OwnerOf(tokenID)
	assert.Equal(t, common.Address{}, owner, "no holder has every unit")

	tests := []struct {
		name    string
		caller  common.Address
		from    common.Address
		to      common.Address
		share   uint64
		wantErr error
	}{
		{"zero share", alice, alice, bob, 0, domain.ErrInputShareZero},
		{"more than owned", bob, bob, alice, 2_501, domain.ErrInsufficientShare},
		{"to zero address", alice, alice, common.Address{}, 1, domain.ErrZeroAddress},
		{"unauthorized caller", carol, alice, carol, 1, domain.ErrNotApprovedOrOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Exec(tt.caller, func(c *chain.Context) error {
				return l.TransferShare(c, tt.from, tt.to, tokenID, tt.share)
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.TotalShares, sumShares(l, tokenID))
		})
	}

	// bob collects every unit and becomes the owner
	f.MustExec(t, alice, func(c *chain.Context) error {
		return l.TransferShare(c, alice, bob, tokenID, 7_500)
	})
	owner, _ = l.OwnerOf(tokenID)
	assert.Equal(t, bob, owner)
	assert.Equal(t, []ownership.Holding{{Holder: bob, Share: domain.TotalShares}}, l.HoldersOf(tokenID))
}

func TestShareApprovalIsConsumedPerHolder(t *testing.T) {
	f := nodetest.New(t)
	alice, bob, carol, dave := f.Alice.Address, f.Bob.Address, f.Carol.Address, f.Dave.Address
	l := f.Node.Ownership
	mintShares(t, f, alice)

	f.MustExec(t, alice, func(c *chain.Context) error {
		return l.TransferShare(c, alice, bob, tokenID, 1_000)
	})
	f.MustExec(t, alice, func(c *chain.Context) error {
		return l.ApproveShare(c, carol, tokenID, alice)
	})
	f.MustExec(t, bob, func(c *chain.Context) error {
		return l.ApproveShare(c, carol, tokenID, bob)
	})

	f.MustExec(t, carol, func(c *chain.Context) error {
		return l.TransferShare(c, alice, dave, tokenID, 100)
	})
	assert.Equal(t, common.Address{}, l.GetApprovedForShare(tokenID, alice))
	assert.Equal(t, carol, l.GetApprovedForShare(tokenID, bob), "other holders keep their approvals")

	_, err := f.Exec(carol, func(c *chain.Context) error {
		return l.TransferShare(c, alice, dave, tokenID, 100)
	})
	assert.ErrorIs(t, err, domain.ErrNotApprovedOrOwner)

	_, err = f.Exec(dave, func(c *chain.Context) error {
		return l.ApproveShare(c, carol, tokenID, bob)
	})
	assert.ErrorIs(t, err, domain.ErrApproveCallerMissing)
}

func TestTransferFullOwnership(t *testing.T) {
	f := nodetest.New(t)
	alice, bob, carol := f.Alice.Address, f.Bob.Address, f.Carol.Address
	l := f.Node.Ownership
	mintSingle(t, f, alice, 10)

	_, err := f.Exec(bob, func(c *chain.Context) error {
		return l.TransferFullOwnership(c, bob, carol, tokenID)
	})
	assert.ErrorIs(t, err, domain.ErrIncorrectOwner)

	_, err = f.Exec(bob, func(c *chain.Context) error {
		return l.TransferFullOwnership(c, alice, bob, tokenID)
	})
	assert.ErrorIs(t, err, domain.ErrNotApprovedOrOwner)

	_, err = f.Exec(bob, func(c *chain.Context) error {
		return l.TransferShare(c, alice, bob, tokenID, 1)
	})
	assert.ErrorIs(t, err, domain.ErrNotShareToken)

	_, err = f.Exec(alice, func(c *chain.Context) error {
		return l.Approve(c, alice, tokenID)
	})
	assert.ErrorIs(t, err, domain.ErrApproveToOwner)

	f.MustExec(t, alice, func(c *chain.Context) error {
		return l.Approve(c, bob, tokenID)
	})
	assert.Equal(t, bob, l.GetApproved(tokenID))

	f.MustExec(t, bob, func(c *chain.Context) error {
		return l.TransferFullOwnership(c, alice, carol, tokenID)
	})
	owner, _ := l.OwnerOf(tokenID)
	assert.Equal(t, carol, owner)
	assert.Equal(t, common.Address{}, l.GetApproved(tokenID))
	creator, _ := l.CreatorOf(tokenID)
	assert.Equal(t, alice, creator)
}

func TestOperators(t *testing.T) {
	f := nodetest.New(t)
	alice, bob, carol := f.Alice.Address, f.Bob.Address, f.Carol.Address
	l := f.Node.Ownership
	mintSingle(t, f, alice, 10)

	_, err := f.Exec(alice, func(c *chain.Context) error {
		return l.SetApprovalForAll(c, alice, true)
	})
	assert.ErrorIs(t, err, domain.ErrApproveToCaller)

	f.MustExec(t, alice, func(c *chain.Context) error {
		return l.SetApprovalForAll(c, bob, true)
	})
	assert.True(t, l.IsApprovedForAll(alice, bob))
	assert.True(t, l.IsApprovedForAll(alice, nodetest.Marketplace), "default marketplace operates for everyone")

	// an operator may approve on behalf of the owner
	f.MustExec(t, bob, func(c *chain.Context) error {
		return l.Approve(c, carol, tokenID)
	})
	f.MustExec(t, bob, func(c *chain.Context) error {
		return l.TransferFullOwnership(c, alice, carol, tokenID)
	})
	owner, _ := l.OwnerOf(tokenID)
	assert.Equal(t, carol, owner)
}

func TestFullTransferOfShareProjectMovesWholeBalance(t *testing.T) {
	f := nodetest.New(t)
	alice, bob, carol := f.Alice.Address, f.Bob.Address, f.Carol.Address
	l := f.Node.Ownership
	mintShares(t, f, alice)

	f.MustExec(t, alice, func(c *chain.Context) error {
		return l.TransferShare(c, alice, bob, tokenID, 4_000)
	})
	_, err := f.Exec(alice, func(c *chain.Context) error {
		return l.TransferFullOwnership(c, alice, carol, tokenID)
	})
	assert.ErrorIs(t, err, domain.ErrIncorrectOwner, "alice holds only part of the units")
	assert.Equal(t, uint64(6_000), l.ShareOf(tokenID, alice))

	f.MustExec(t, bob, func(c *chain.Context) error {
		return l.TransferShare(c, bob, alice, tokenID, 4_000)
	})
	f.MustExec(t, alice, func(c *chain.Context) error {
		return l.TransferFullOwnership(c, alice, carol, tokenID)
	})
	assert.Equal(t, uint64(0), l.ShareOf(tokenID, alice))
	assert.Equal(t, domain.TotalShares, l.ShareOf(tokenID, carol))
	owner, _ := l.OwnerOf(tokenID)
	assert.Equal(t, carol, owner)
}

func TestShareOwnerFollowsUnits(t *testing.T) {
	f := nodetest.New(t)
	alice, bob, carol := f.Alice.Address, f.Bob.Address, f.Carol.Address
	l := f.Node.Ownership
	mintShares(t, f, alice)

	f.MustExec(t, alice, func(c *chain.Context) error {
		return l.Approve(c, carol, tokenID)
	})
	f.MustExec(t, alice, func(c *chain.Context) error {
		if err := l.TransferShare(c, alice, bob, tokenID, 5_000); err != nil {
			return err
		}
		return l.TransferShare(c, alice, carol, tokenID, 5_000)
	})
	assert.Equal(t, uint64(0), l.ShareOf(tokenID, alice))
	owner, err := l.OwnerOf(tokenID)
	require.NoError(t, err)
	assert.Equal(t, common.Address{}, owner)
	assert.Equal(t, common.Address{}, l.GetApproved(tokenID), "whole-asset approval ends with the owner")

	tests := []struct {
		name   string
		caller common.Address
		fn     func(c *chain.Context) error
	}{
		{"drained owner approves", alice, func(c *chain.Context) error { return l.Approve(c, bob, tokenID) }},
		{"drained owner transfers the asset", alice, func(c *chain.Context) error {
			return l.TransferFullOwnership(c, alice, bob, tokenID)
		}},
		{"partial holder transfers the asset", bob, func(c *chain.Context) error {
			return l.TransferFullOwnership(c, bob, carol, tokenID)
		}},
		{"nobody transfers the asset", nodetest.Marketplace, func(c *chain.Context) error {
			return l.TransferFullOwnership(c, common.Address{}, carol, tokenID)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Exec(tt.caller, tt.fn)
			assert.ErrorIs(t, err, domain.ErrIncorrectOwner)
		})
	}

	f.MustExec(t, carol, func(c *chain.Context) error {
		return l.TransferShare(c, carol, bob, tokenID, 5_000)
	})
	owner, _ = l.OwnerOf(tokenID)
	assert.Equal(t, bob, owner)
	assert.Equal(t, domain.TotalShares, sumShares(l, tokenID))
}

func signTokenize(t *testing.T, f *nodetest.Fixture, msg signature.TokenizeMessage) []byte {
	t.Helper()
	sig, err := signature.Sign(ownership.Domain(31337, nodetest.Ownership), msg, f.Verifier.Key)
	require.NoError(t, err)
	return sig
}

func TestTokenize(t *testing.T) {
	f := nodetest.New(t)
	alice := f.Alice.Address
	l := f.Node.Ownership

	msg := signature.TokenizeMessage{
		To:                    alice,
		ProjectURL:            projectURL,
		BasePrice:             uint256.NewInt(100),
		PopularityFactorPrice: uint256.NewInt(3),
		PaymentToken:          nodetest.PayToken,
		Royalty:               8,
		Deadline:              f.Now() + 3600,
	}
	sig := signTokenize(t, f, msg)

	// tampered royalty
	tampered := msg
	tampered.Royalty = 9
	_, err := f.Exec(f.Bob.Address, func(c *chain.Context) error {
		_, err := l.Tokenize(c, tampered, sig)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrRequireVerifier, "a tampered message recovers a stranger")

	receipt := f.MustExec(t, f.Bob.Address, func(c *chain.Context) error {
		_, err := l.Tokenize(c, msg, sig)
		return err
	})
	assert.Equal(t, domain.EventProjectTokenized, receipt.Events[0].Type)

	project, err := l.Project(tokenID)
	require.NoError(t, err)
	assert.Equal(t, domain.NFTTypeTokenized, project.Type)
	assert.Equal(t, alice, project.Owner)
	assert.Equal(t, uint8(8), project.CreatorCut)
	assert.Equal(t, uint64(100), project.BasePrice.Uint64())

	_, err = f.Exec(f.Bob.Address, func(c *chain.Context) error {
		_, err := l.Tokenize(c, msg, sig)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrSignatureUsed)
}

func TestTokenizeValidation(t *testing.T) {
	base := func(f *nodetest.Fixture) signature.TokenizeMessage {
		return signature.TokenizeMessage{
			To:           f.Alice.Address,
			ProjectURL:   projectURL,
			BasePrice:    uint256.NewInt(1),
			PaymentToken: nodetest.PayToken,
			Royalty:      10,
			Deadline:     f.Now() + 60,
		}
	}

	tests := []struct {
		name    string
		setup   func(t *testing.T, f *nodetest.Fixture, msg *signature.TokenizeMessage)
		wantErr error
	}{
		{"royalty above cap", func(_ *testing.T, _ *nodetest.Fixture, m *signature.TokenizeMessage) { m.Royalty = 11 }, domain.ErrRoyaltyLimitExceeded},
		{"payment token not payable", func(_ *testing.T, _ *nodetest.Fixture, m *signature.TokenizeMessage) {
			m.PaymentToken = nodetest.OtherToken
		}, domain.ErrPaymentTokenNotAllowed},
		{"expired", func(_ *testing.T, f *nodetest.Fixture, _ *signature.TokenizeMessage) { f.Advance(2 * time.Minute) }, domain.ErrSignatureExpired},
		{"project exists", func(t *testing.T, f *nodetest.Fixture, _ *signature.TokenizeMessage) { mintSingle(t, f, f.Bob.Address, 1) }, domain.ErrProjectExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := nodetest.New(t)
			msg := base(f)
			tt.setup(t, f, &msg)
			sig := signTokenize(t, f, msg)
			_, err := f.Exec(f.Alice.Address, func(c *chain.Context) error {
				_, err := f.Node.Ownership.Tokenize(c, msg, sig)
				return err
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdmin(t *testing.T) {
	f := nodetest.New(t)
	l := f.Node.Ownership

	_, err := f.Exec(f.Alice.Address, func(c *chain.Context) error {
		return l.SetMinter(c, f.Alice.Address, true)
	})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	f.MustExec(t, nodetest.Owner, func(c *chain.Context) error {
		if err := l.SetMinter(c, f.Alice.Address, true); err != nil {
			return err
		}
		if err := l.SetVerifier(c, f.Minter.Address, false); err != nil {
			return err
		}
		return l.SetRoyaltyCap(c, 20)
	})
	assert.True(t, l.IsMinter(f.Alice.Address))
	assert.False(t, l.IsVerifier(f.Minter.Address))
	assert.Equal(t, uint8(20), l.RoyaltyCap())

	_, err = f.Exec(nodetest.Owner, func(c *chain.Context) error {
		return l.SetRoyaltyCap(c, 50)
	})
	assert.ErrorIs(t, err, domain.ErrCreatorCutLimit)

	f.MustExec(t, nodetest.Owner, func(c *chain.Context) error {
		return l.SetDefaultMarketplace(c, f.Carol.Address)
	})
	assert.Equal(t, f.Carol.Address, l.DefaultMarketplace())
	assert.True(t, l.IsApprovedForAll(f.Alice.Address, f.Carol.Address))
	assert.False(t, l.IsApprovedForAll(f.Alice.Address, nodetest.Marketplace))
}

func TestSnapshotRoundTrip(t *testing.T) {
	f := nodetest.New(t)
	mintShares(t, f, f.Alice.Address)
	f.MustExec(t, f.Alice.Address, func(c *chain.Context) error {
		return f.Node.Ownership.TransferShare(c, f.Alice.Address, f.Bob.Address, tokenID, 10)
	})

	other := nodetest.New(t)
	other.Node.Ownership.Import(f.Node.Ownership.Export())
	assert.Equal(t, f.Node.Ownership.HoldersOf(tokenID), other.Node.Ownership.HoldersOf(tokenID))
	assert.Equal(t, f.Node.Ownership.Projects(), other.Node.Ownership.Projects())
}
