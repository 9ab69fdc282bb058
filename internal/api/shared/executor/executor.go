package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/dto"
	apierrors "github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/errors"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/marketplace"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/node"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/ownership"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetProject retrieves a project with its holders
	GetProject(ctx context.Context, tokenID common.Hash) (*dto.ProjectResponse, error)
	// GetShare retrieves the units one holder owns in a project
	GetShare(ctx context.Context, tokenID common.Hash, holder common.Address) (*dto.ShareResponse, error)
	// GetProjectEvents retrieves the committed events of a project, oldest first
	GetProjectEvents(ctx context.Context, tokenID common.Hash, limit int, offset uint64) (*dto.EventListResponse, error)
	// GetSale retrieves a sale listing
	GetSale(ctx context.Context, saleID common.Hash) (*dto.SaleResponse, error)
	// GetAuction retrieves an auction
	GetAuction(ctx context.Context, auctionID common.Hash) (*dto.AuctionResponse, error)
	// ListTokens retrieves the payment tokens
	ListTokens(ctx context.Context) (*dto.TokenListResponse, error)
	// GetTokenBalance retrieves a balance, and the allowance of spender when given
	GetTokenBalance(ctx context.Context, tokenAddr, holder common.Address, spender *common.Address) (*dto.BalanceResponse, error)
	// GetEarnings retrieves the marketplace treasury
	GetEarnings(ctx context.Context) (*dto.EarningsResponse, error)

	Mint(ctx context.Context, caller common.Address, req dto.MintRequest) (*dto.TxResponse, error)
	MintTo(ctx context.Context, caller common.Address, req dto.MintToRequest) (*dto.TxResponse, error)
	Tokenize(ctx context.Context, caller common.Address, req dto.TokenizeRequest) (*dto.TxResponse, error)
	Burn(ctx context.Context, caller common.Address, tokenID common.Hash) (*dto.TxResponse, error)
	Transfer(ctx context.Context, caller common.Address, req dto.TransferRequest) (*dto.TxResponse, error)
	Approve(ctx context.Context, caller common.Address, req dto.ApprovalRequest) (*dto.TxResponse, error)
	SetOperator(ctx context.Context, caller common.Address, req dto.OperatorRequest) (*dto.TxResponse, error)

	Sell(ctx context.Context, caller common.Address, req dto.SellRequest) (*dto.TxResponse, error)
	UpdateSale(ctx context.Context, caller common.Address, saleID common.Hash, req dto.UpdateSaleRequest) (*dto.TxResponse, error)
	SetSalePriority(ctx context.Context, caller common.Address, saleID common.Hash, priority uint32) (*dto.TxResponse, error)
	RemoveSale(ctx context.Context, caller common.Address, saleID common.Hash) (*dto.TxResponse, error)
	Buy(ctx context.Context, caller common.Address, saleID common.Hash, req dto.BuyRequest) (*dto.TxResponse, error)

	CreateAuction(ctx context.Context, caller common.Address, req dto.AuctionRequest) (*dto.TxResponse, error)
	PlaceBid(ctx context.Context, caller common.Address, auctionID common.Hash, req dto.BidRequest) (*dto.TxResponse, error)
	ClaimAuction(ctx context.Context, caller common.Address, auctionID common.Hash) (*dto.TxResponse, error)
	RefundAuction(ctx context.Context, caller common.Address, auctionID common.Hash) (*dto.TxResponse, error)
	SetAuctionPriority(ctx context.Context, caller common.Address, auctionID common.Hash, priority uint32) (*dto.TxResponse, error)

	MetaMint(ctx context.Context, caller common.Address, req dto.MetaMintRequest) (*dto.TxResponse, error)
	MetaSell(ctx context.Context, caller common.Address, req dto.MetaSellRequest) (*dto.TxResponse, error)
	MetaBuy(ctx context.Context, caller common.Address, req dto.MetaBuyRequest) (*dto.TxResponse, error)

	ApproveToken(ctx context.Context, caller common.Address, tokenAddr common.Address, req dto.TokenApproveRequest) (*dto.TxResponse, error)

	// Admin operations run as the ledger owner
	AddPayableTokens(ctx context.Context, req dto.PayableTokensRequest) (*dto.TxResponse, error)
	RemovePayableToken(ctx context.Context, tokenAddr common.Address) (*dto.TxResponse, error)
	SetMinter(ctx context.Context, req dto.RoleRequest) (*dto.TxResponse, error)
	SetVerifier(ctx context.Context, req dto.RoleRequest) (*dto.TxResponse, error)
	WithdrawEarning(ctx context.Context, req dto.WithdrawRequest) (*dto.TxResponse, error)
	ApproveProject(ctx context.Context, req dto.ApproveProjectRequest) (*dto.ProjectApprovalResponse, error)
	SetApprover(ctx context.Context, req dto.RoleRequest) error
}

// ApproverAdmin mutates the approver registry
type ApproverAdmin interface {
	ApproveProject(projectURL string, minter common.Address, worth *uint256.Int) error
	SetApprover(addr common.Address, granted bool) error
}

// EventReader reads committed ledger events
type EventReader interface {
	GetEventsByToken(ctx context.Context, tokenID string, limit int, offset uint64) ([]*domain.EventRecord, uint64, error)
}

type executor struct {
	ledger    *node.Node
	approvers ApproverAdmin
	events    EventReader
}

// NewExecutor creates an executor over ledger. events may be nil when the ledger runs without a store.
func NewExecutor(ledger *node.Node, approvers ApproverAdmin, events EventReader) Executor {
	return &executor{ledger: ledger, approvers: approvers, events: events}
}

func (e *executor) view(ctx context.Context, fn func(c *chain.Context) error) error {
	return e.ledger.View(ctx, fn)
}

func (e *executor) exec(ctx context.Context, caller common.Address, fn func(c *chain.Context) error) (*dto.TxResponse, error) {
	receipt, err := e.ledger.Execute(ctx, caller, fn)
	if err != nil {
		return nil, err
	}
	return dto.NewTxResponse(receipt, nil), nil
}

// execID runs fn and reports the id it created
func (e *executor) execID(ctx context.Context, caller common.Address, fn func(c *chain.Context) (common.Hash, error)) (*dto.TxResponse, error) {
	var id common.Hash
	receipt, err := e.ledger.Execute(ctx, caller, func(c *chain.Context) error {
		var err error
		id, err = fn(c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.NewTxResponse(receipt, &id), nil
}

func (e *executor) owner() common.Address {
	return e.ledger.Config().Owner
}

func (e *executor) GetProject(ctx context.Context, tokenID common.Hash) (*dto.ProjectResponse, error) {
	var resp *dto.ProjectResponse
	err := e.view(ctx, func(c *chain.Context) error {
		project, err := e.ledger.Ownership.Project(tokenID)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTokenID) {
				return apierrors.NewNotFoundError("Project not found")
			}
			return err
		}
		resp = &dto.ProjectResponse{Project: project, Holders: []dto.HoldingResponse{}}
		if approved := e.ledger.Ownership.GetApproved(tokenID); !domain.IsZeroAddress(approved) {
			resp.Approved = &approved
		}
		for _, h := range e.ledger.Ownership.HoldersOf(tokenID) {
			resp.Holders = append(resp.Holders, dto.HoldingResponse{Holder: h.Holder, Share: h.Share})
		}
		return nil
	})
	return resp, err
}

func (e *executor) GetShare(ctx context.Context, tokenID common.Hash, holder common.Address) (*dto.ShareResponse, error) {
	var resp *dto.ShareResponse
	err := e.view(ctx, func(c *chain.Context) error {
		if !e.ledger.Ownership.Exists(tokenID) {
			return apierrors.NewNotFoundError("Project not found")
		}
		resp = &dto.ShareResponse{
			TokenID:    tokenID,
			Holder:     holder,
			Share:      e.ledger.Ownership.ShareOf(tokenID, holder),
			TotalShare: e.ledger.Ownership.TotalShareOf(tokenID),
		}
		if approved := e.ledger.Ownership.GetApprovedForShare(tokenID, holder); !domain.IsZeroAddress(approved) {
			resp.ApprovedForShare = &approved
		}
		return nil
	})
	return resp, err
}

func (e *executor) GetProjectEvents(ctx context.Context, tokenID common.Hash, limit int, offset uint64) (*dto.EventListResponse, error) {
	if e.events == nil {
		return nil, apierrors.NewUnavailableError("Event history is not available", "the ledger runs without a database")
	}
	records, total, err := e.events.GetEventsByToken(ctx, tokenID.Hex(), limit, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get events: %v", err))
	}
	if records == nil {
		records = []*domain.EventRecord{}
	}
	return &dto.EventListResponse{Events: records, Total: total, Offset: offset}, nil
}

func (e *executor) GetSale(ctx context.Context, saleID common.Hash) (*dto.SaleResponse, error) {
	var resp *dto.SaleResponse
	err := e.view(ctx, func(c *chain.Context) error {
		sale, err := e.ledger.Marketplace.GetSale(saleID)
		if err != nil {
			if errors.Is(err, domain.ErrNoSaleFound) {
				return apierrors.NewNotFoundError("Sale not found")
			}
			return err
		}
		resp = &dto.SaleResponse{Sale: sale, Active: e.ledger.Marketplace.IsSellActive(saleID)}
		return nil
	})
	return resp, err
}

func (e *executor) GetAuction(ctx context.Context, auctionID common.Hash) (*dto.AuctionResponse, error) {
	var resp *dto.AuctionResponse
	err := e.view(ctx, func(c *chain.Context) error {
		auction, err := e.ledger.Marketplace.GetAuction(auctionID)
		if err != nil {
			if errors.Is(err, domain.ErrNoAuctionFound) {
				return apierrors.NewNotFoundError("Auction not found")
			}
			return err
		}
		resp = &dto.AuctionResponse{Auction: auction, Open: e.ledger.Marketplace.IsAuctionOpen(auctionID, c.Now())}
		return nil
	})
	return resp, err
}

func (e *executor) ListTokens(ctx context.Context) (*dto.TokenListResponse, error) {
	resp := &dto.TokenListResponse{Tokens: []dto.TokenResponse{}}
	err := e.view(ctx, func(c *chain.Context) error {
		for _, t := range e.ledger.Tokens.All() {
			resp.Tokens = append(resp.Tokens, dto.TokenResponse{
				Address:     t.Address(),
				Symbol:      t.Symbol(),
				Decimals:    t.Decimals(),
				TotalSupply: t.TotalSupply(),
				Payable:     e.ledger.Payable.IsPayableToken(t.Address()),
			})
		}
		return nil
	})
	return resp, err
}

func (e *executor) GetTokenBalance(ctx context.Context, tokenAddr, holder common.Address, spender *common.Address) (*dto.BalanceResponse, error) {
	var resp *dto.BalanceResponse
	err := e.view(ctx, func(c *chain.Context) error {
		t, err := e.ledger.Tokens.Token(tokenAddr)
		if err != nil {
			return apierrors.NewNotFoundError("Token not found", tokenAddr.Hex())
		}
		resp = &dto.BalanceResponse{Token: tokenAddr, Holder: holder, Balance: t.BalanceOf(holder)}
		if spender != nil {
			resp.Spender = spender
			resp.Allowance = t.Allowance(holder, *spender)
		}
		return nil
	})
	return resp, err
}

func (e *executor) GetEarnings(ctx context.Context) (*dto.EarningsResponse, error) {
	var resp *dto.EarningsResponse
	err := e.view(ctx, func(c *chain.Context) error {
		resp = &dto.EarningsResponse{Earnings: e.ledger.Marketplace.Earnings()}
		return nil
	})
	return resp, err
}

func (e *executor) Mint(ctx context.Context, caller common.Address, req dto.MintRequest) (*dto.TxResponse, error) {
	return e.execID(ctx, caller, func(c *chain.Context) (common.Hash, error) {
		return e.ledger.Ownership.Mint(c, mintInput(req))
	})
}

func (e *executor) MintTo(ctx context.Context, caller common.Address, req dto.MintToRequest) (*dto.TxResponse, error) {
	return e.execID(ctx, caller, func(c *chain.Context) (common.Hash, error) {
		return e.ledger.Ownership.MintTo(c, req.To, mintInput(req.MintRequest))
	})
}

func mintInput(req dto.MintRequest) ownership.MintInput {
	return ownership.MintInput{
		ProjectURL: req.ProjectURL,
		NFTType:    req.NFTType,
		CreatorCut: req.CreatorCut,
		TotalShare: req.TotalShare,
	}
}

func (e *executor) Tokenize(ctx context.Context, caller common.Address, req dto.TokenizeRequest) (*dto.TxResponse, error) {
	return e.execID(ctx, caller, func(c *chain.Context) (common.Hash, error) {
		return e.ledger.Ownership.Tokenize(c, req.Message, req.Signature)
	})
}

func (e *executor) Burn(ctx context.Context, caller common.Address, tokenID common.Hash) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Ownership.Burn(c, tokenID)
	})
}

func (e *executor) Transfer(ctx context.Context, caller common.Address, req dto.TransferRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		if req.Share == 0 {
			return e.ledger.Ownership.TransferFullOwnership(c, req.From, req.To, req.TokenID)
		}
		return e.ledger.Ownership.TransferShare(c, req.From, req.To, req.TokenID, req.Share)
	})
}

func (e *executor) Approve(ctx context.Context, caller common.Address, req dto.ApprovalRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		if req.Holder != nil {
			return e.ledger.Ownership.ApproveShare(c, req.To, req.TokenID, *req.Holder)
		}
		return e.ledger.Ownership.Approve(c, req.To, req.TokenID)
	})
}

func (e *executor) SetOperator(ctx context.Context, caller common.Address, req dto.OperatorRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Ownership.SetApprovalForAll(c, req.Operator, req.Approved)
	})
}

func (e *executor) Sell(ctx context.Context, caller common.Address, req dto.SellRequest) (*dto.TxResponse, error) {
	return e.execID(ctx, caller, func(c *chain.Context) (common.Hash, error) {
		return e.ledger.Marketplace.Sell(c, marketplace.SellInput{
			TokenID:      req.TokenID,
			Share:        req.Share,
			Price:        req.Price,
			PaymentToken: req.PaymentToken,
			SellPriority: req.SellPriority,
		})
	})
}

func (e *executor) UpdateSale(ctx context.Context, caller common.Address, saleID common.Hash, req dto.UpdateSaleRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Marketplace.UpdateSale(c, saleID, marketplace.UpdateSaleInput{
			Price:        req.Price,
			PaymentToken: req.PaymentToken,
			SellPriority: req.SellPriority,
		})
	})
}

func (e *executor) SetSalePriority(ctx context.Context, caller common.Address, saleID common.Hash, priority uint32) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Marketplace.SetSellPriority(c, saleID, priority)
	})
}

func (e *executor) RemoveSale(ctx context.Context, caller common.Address, saleID common.Hash) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Marketplace.RemoveSale(c, saleID)
	})
}

func (e *executor) Buy(ctx context.Context, caller common.Address, saleID common.Hash, req dto.BuyRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Marketplace.Buy(c, saleID, req.Share, req.MaxPrice)
	})
}

func (e *executor) CreateAuction(ctx context.Context, caller common.Address, req dto.AuctionRequest) (*dto.TxResponse, error) {
	return e.execID(ctx, caller, func(c *chain.Context) (common.Hash, error) {
		return e.ledger.Marketplace.CreateAuction(c, marketplace.AuctionInput{
			TokenID:      req.TokenID,
			Share:        req.Share,
			InitialBid:   req.InitialBid,
			PaymentToken: req.PaymentToken,
			EndAuction:   req.EndAuction,
			SellPriority: req.SellPriority,
		})
	})
}

func (e *executor) PlaceBid(ctx context.Context, caller common.Address, auctionID common.Hash, req dto.BidRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Marketplace.PlaceBid(c, auctionID, req.Amount)
	})
}

func (e *executor) ClaimAuction(ctx context.Context, caller common.Address, auctionID common.Hash) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Marketplace.ClaimNFT(c, auctionID)
	})
}

func (e *executor) RefundAuction(ctx context.Context, caller common.Address, auctionID common.Hash) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Marketplace.RefundAuction(c, auctionID)
	})
}

func (e *executor) SetAuctionPriority(ctx context.Context, caller common.Address, auctionID common.Hash, priority uint32) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Marketplace.SetAuctionSellPriority(c, auctionID, priority)
	})
}

func (e *executor) MetaMint(ctx context.Context, caller common.Address, req dto.MetaMintRequest) (*dto.TxResponse, error) {
	return e.execID(ctx, caller, func(c *chain.Context) (common.Hash, error) {
		return e.ledger.Relayer.Mint(c, req.Message, req.Signature)
	})
}

func (e *executor) MetaSell(ctx context.Context, caller common.Address, req dto.MetaSellRequest) (*dto.TxResponse, error) {
	return e.execID(ctx, caller, func(c *chain.Context) (common.Hash, error) {
		return e.ledger.Relayer.Sell(c, req.Message, req.Signature)
	})
}

func (e *executor) MetaBuy(ctx context.Context, caller common.Address, req dto.MetaBuyRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		return e.ledger.Relayer.Buy(c, req.Message, req.Signature)
	})
}

func (e *executor) ApproveToken(ctx context.Context, caller common.Address, tokenAddr common.Address, req dto.TokenApproveRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, caller, func(c *chain.Context) error {
		t, err := e.ledger.Tokens.Token(tokenAddr)
		if err != nil {
			return err
		}
		return t.Approve(c, req.Spender, req.Amount)
	})
}

func (e *executor) AddPayableTokens(ctx context.Context, req dto.PayableTokensRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, e.owner(), func(c *chain.Context) error {
		return e.ledger.Payable.AddPayableTokens(c, req.Tokens)
	})
}

func (e *executor) RemovePayableToken(ctx context.Context, tokenAddr common.Address) (*dto.TxResponse, error) {
	return e.exec(ctx, e.owner(), func(c *chain.Context) error {
		return e.ledger.Payable.RemovePayableToken(c, tokenAddr)
	})
}

func (e *executor) SetMinter(ctx context.Context, req dto.RoleRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, e.owner(), func(c *chain.Context) error {
		return e.ledger.Ownership.SetMinter(c, req.Account, req.Granted)
	})
}

func (e *executor) SetVerifier(ctx context.Context, req dto.RoleRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, e.owner(), func(c *chain.Context) error {
		return e.ledger.Ownership.SetVerifier(c, req.Account, req.Granted)
	})
}

func (e *executor) WithdrawEarning(ctx context.Context, req dto.WithdrawRequest) (*dto.TxResponse, error) {
	return e.exec(ctx, e.owner(), func(c *chain.Context) error {
		return e.ledger.Marketplace.WithdrawEarning(c, req.Token, req.To, req.Amount)
	})
}

func (e *executor) ApproveProject(ctx context.Context, req dto.ApproveProjectRequest) (*dto.ProjectApprovalResponse, error) {
	if err := e.approvers.ApproveProject(req.ProjectURL, req.Minter, req.Worth); err != nil {
		return nil, err
	}
	return &dto.ProjectApprovalResponse{
		TokenID:    domain.TokenIDFromURL(req.ProjectURL),
		ProjectURL: domain.CanonicalProjectURL(req.ProjectURL),
		Minter:     req.Minter,
		Worth:      req.Worth,
	}, nil
}

func (e *executor) SetApprover(ctx context.Context, req dto.RoleRequest) error {
	return e.approvers.SetApprover(req.Account, req.Granted)
}
