package dto

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/constants"
	apierrors "github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/errors"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/signature"
)

func requireAddress(name string, addr common.Address) error {
	if domain.IsZeroAddress(addr) {
		return apierrors.NewValidationError(name + " is required")
	}
	return nil
}

func requireHash(name string, h common.Hash) error {
	if h == (common.Hash{}) {
		return apierrors.NewValidationError(name + " is required")
	}
	return nil
}

func requireAmount(name string, v *uint256.Int) error {
	if v == nil {
		return apierrors.NewValidationError(name + " is required")
	}
	return nil
}

func requireSignature(sig hexutil.Bytes) error {
	if len(sig) == 0 {
		return apierrors.NewValidationError("signature is required")
	}
	return nil
}

// MintRequest represents the request body for minting a project to the caller
type MintRequest struct {
	ProjectURL string         `json:"project_url"`
	NFTType    domain.NFTType `json:"nft_type"`
	CreatorCut uint8          `json:"creator_cut"`
	TotalShare uint64         `json:"total_share"`
}

// Validate validates the request body
func (r *MintRequest) Validate() error {
	if strings.TrimSpace(r.ProjectURL) == "" {
		return apierrors.NewValidationError("project_url is required")
	}
	return nil
}

// MintToRequest represents the request body for minting a project to another account
type MintToRequest struct {
	To common.Address `json:"to"`
	MintRequest
}

// Validate validates the request body
func (r *MintToRequest) Validate() error {
	if err := requireAddress("to", r.To); err != nil {
		return err
	}
	return r.MintRequest.Validate()
}

// TokenizeRequest carries a verifier-signed tokenize message
type TokenizeRequest struct {
	Message   signature.TokenizeMessage `json:"message"`
	Signature hexutil.Bytes             `json:"signature"`
}

// Validate validates the request body
func (r *TokenizeRequest) Validate() error {
	if strings.TrimSpace(r.Message.ProjectURL) == "" {
		return apierrors.NewValidationError("message.project_url is required")
	}
	if err := requireAmount("message.base_price", r.Message.BasePrice); err != nil {
		return err
	}
	if err := requireAmount("message.popularity_factor_price", r.Message.PopularityFactorPrice); err != nil {
		return err
	}
	return requireSignature(r.Signature)
}

// TransferRequest moves a whole asset (share 0) or share units between holders
type TransferRequest struct {
	From    common.Address `json:"from"`
	To      common.Address `json:"to"`
	TokenID common.Hash    `json:"token_id"`
	Share   uint64         `json:"share"`
}

// Validate validates the request body
func (r *TransferRequest) Validate() error {
	if err := requireAddress("from", r.From); err != nil {
		return err
	}
	return requireHash("token_id", r.TokenID)
}

// ApprovalRequest approves an account for a whole asset, or for one holder's units when holder is set
type ApprovalRequest struct {
	To      common.Address  `json:"to"`
	TokenID common.Hash     `json:"token_id"`
	Holder  *common.Address `json:"holder,omitempty"`
}

// Validate validates the request body
func (r *ApprovalRequest) Validate() error {
	return requireHash("token_id", r.TokenID)
}

// OperatorRequest grants or revokes an operator over all assets of the caller
type OperatorRequest struct {
	Operator common.Address `json:"operator"`
	Approved bool           `json:"approved"`
}

// Validate validates the request body
func (r *OperatorRequest) Validate() error {
	return requireAddress("operator", r.Operator)
}

// SellRequest lists an asset for sale
type SellRequest struct {
	TokenID      common.Hash    `json:"token_id"`
	Share        uint64         `json:"share"`
	Price        *uint256.Int   `json:"price"`
	PaymentToken common.Address `json:"payment_token"`
	SellPriority uint32         `json:"sell_priority"`
}

// Validate validates the request body
func (r *SellRequest) Validate() error {
	if err := requireHash("token_id", r.TokenID); err != nil {
		return err
	}
	if err := requireAmount("price", r.Price); err != nil {
		return err
	}
	return requireAddress("payment_token", r.PaymentToken)
}

// UpdateSaleRequest changes the terms of a listing
type UpdateSaleRequest struct {
	Price        *uint256.Int   `json:"price"`
	PaymentToken common.Address `json:"payment_token"`
	SellPriority uint32         `json:"sell_priority"`
}

// Validate validates the request body
func (r *UpdateSaleRequest) Validate() error {
	if err := requireAmount("price", r.Price); err != nil {
		return err
	}
	return requireAddress("payment_token", r.PaymentToken)
}

// BuyRequest buys from a listing
type BuyRequest struct {
	Share    uint64       `json:"share"`
	MaxPrice *uint256.Int `json:"max_price"`
}

// Validate validates the request body
func (r *BuyRequest) Validate() error {
	return requireAmount("max_price", r.MaxPrice)
}

// AuctionRequest puts an asset up for auction
type AuctionRequest struct {
	TokenID      common.Hash    `json:"token_id"`
	Share        uint64         `json:"share"`
	InitialBid   *uint256.Int   `json:"initial_bid"`
	PaymentToken common.Address `json:"payment_token"`
	EndAuction   uint64         `json:"end_auction"`
	SellPriority uint32         `json:"sell_priority"`
}

// Validate validates the request body
func (r *AuctionRequest) Validate() error {
	if err := requireHash("token_id", r.TokenID); err != nil {
		return err
	}
	if err := requireAmount("initial_bid", r.InitialBid); err != nil {
		return err
	}
	if r.EndAuction == 0 {
		return apierrors.NewValidationError("end_auction is required")
	}
	return requireAddress("payment_token", r.PaymentToken)
}

// BidRequest places a bid
type BidRequest struct {
	Amount *uint256.Int `json:"amount"`
}

// Validate validates the request body
func (r *BidRequest) Validate() error {
	return requireAmount("amount", r.Amount)
}

// PriorityRequest raises the sell priority of a listing
type PriorityRequest struct {
	SellPriority uint32 `json:"sell_priority"`
}

// MetaMintRequest relays a signed mint
type MetaMintRequest struct {
	Message   signature.MintMessage `json:"message"`
	Signature hexutil.Bytes         `json:"signature"`
}

// Validate validates the request body
func (r *MetaMintRequest) Validate() error {
	if err := requireAddress("message.to", r.Message.To); err != nil {
		return err
	}
	if strings.TrimSpace(r.Message.ProjectURL) == "" {
		return apierrors.NewValidationError("message.project_url is required")
	}
	return requireSignature(r.Signature)
}

// MetaSellRequest relays a signed listing
type MetaSellRequest struct {
	Message   signature.SellMessage `json:"message"`
	Signature hexutil.Bytes         `json:"signature"`
}

// Validate validates the request body
func (r *MetaSellRequest) Validate() error {
	if err := requireAddress("message.to", r.Message.To); err != nil {
		return err
	}
	if err := requireAmount("message.price", r.Message.Price); err != nil {
		return err
	}
	return requireSignature(r.Signature)
}

// MetaBuyRequest relays a signed purchase
type MetaBuyRequest struct {
	Message   signature.BuyMessage `json:"message"`
	Signature hexutil.Bytes        `json:"signature"`
}

// Validate validates the request body
func (r *MetaBuyRequest) Validate() error {
	if err := requireAddress("message.to", r.Message.To); err != nil {
		return err
	}
	if err := requireAmount("message.max_price", r.Message.MaxPrice); err != nil {
		return err
	}
	return requireSignature(r.Signature)
}

// TokenApproveRequest sets a payment-token allowance of the caller
type TokenApproveRequest struct {
	Spender common.Address `json:"spender"`
	Amount  *uint256.Int   `json:"amount"`
}

// Validate validates the request body
func (r *TokenApproveRequest) Validate() error {
	return requireAmount("amount", r.Amount)
}

// PayableTokensRequest allow-lists payment tokens
type PayableTokensRequest struct {
	Tokens []common.Address `json:"tokens"`
}

// Validate validates the request body
func (r *PayableTokensRequest) Validate() error {
	if len(r.Tokens) == 0 {
		return apierrors.NewValidationError("tokens is required")
	}
	if len(r.Tokens) > constants.MAX_PAYABLE_TOKENS_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d tokens allowed", constants.MAX_PAYABLE_TOKENS_PER_REQUEST))
	}
	return nil
}

// RoleRequest grants or revokes a role
type RoleRequest struct {
	Account common.Address `json:"account"`
	Granted bool           `json:"granted"`
}

// Validate validates the request body
func (r *RoleRequest) Validate() error {
	return requireAddress("account", r.Account)
}

// WithdrawRequest withdraws marketplace earnings
type WithdrawRequest struct {
	Token  common.Address `json:"token"`
	To     common.Address `json:"to"`
	Amount *uint256.Int   `json:"amount"`
}

// Validate validates the request body
func (r *WithdrawRequest) Validate() error {
	if err := requireAddress("token", r.Token); err != nil {
		return err
	}
	if err := requireAddress("to", r.To); err != nil {
		return err
	}
	return requireAmount("amount", r.Amount)
}

// ApproveProjectRequest records a project approval in the approver registry
type ApproveProjectRequest struct {
	ProjectURL string         `json:"project_url"`
	Minter     common.Address `json:"minter"`
	Worth      *uint256.Int   `json:"worth"`
}

// Validate validates the request body
func (r *ApproveProjectRequest) Validate() error {
	if strings.TrimSpace(r.ProjectURL) == "" {
		return apierrors.NewValidationError("project_url is required")
	}
	if err := requireAddress("minter", r.Minter); err != nil {
		return err
	}
	return requireAmount("worth", r.Worth)
}
