package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// TxResponse represents a committed ledger transaction
type TxResponse struct {
	ID        *common.Hash   `json:"id,omitempty"` // token, sale or auction id created by the transaction
	Height    uint64         `json:"height"`
	Timestamp uint64         `json:"timestamp"`
	Caller    common.Address `json:"caller"`
	Events    []domain.Event `json:"events"`
}

// NewTxResponse builds the response of a committed transaction
func NewTxResponse(receipt *chain.Receipt, id *common.Hash) *TxResponse {
	events := receipt.Events
	if events == nil {
		events = []domain.Event{}
	}
	return &TxResponse{
		ID:        id,
		Height:    receipt.Height,
		Timestamp: receipt.Timestamp,
		Caller:    receipt.Caller,
		Events:    events,
	}
}

// HoldingResponse is one holder of a share project
type HoldingResponse struct {
	Holder common.Address `json:"holder"`
	Share  uint64         `json:"share"`
}

// ProjectResponse represents a project with its holders
type ProjectResponse struct {
	domain.Project
	Approved *common.Address  `json:"approved,omitempty"`
	Holders  []HoldingResponse `json:"holders"`
}

// ShareResponse represents one holder's position in a project
type ShareResponse struct {
	TokenID          common.Hash     `json:"token_id"`
	Holder           common.Address  `json:"holder"`
	Share            uint64          `json:"share"`
	TotalShare       uint64          `json:"total_share"`
	ApprovedForShare *common.Address `json:"approved_for_share,omitempty"`
}

// SaleResponse represents a sale listing
type SaleResponse struct {
	domain.Sale
	Active bool `json:"active"`
}

// AuctionResponse represents an auction
type AuctionResponse struct {
	domain.Auction
	Open bool `json:"open"`
}

// TokenResponse represents a payment token
type TokenResponse struct {
	Address     common.Address `json:"address"`
	Symbol      string         `json:"symbol"`
	Decimals    uint8          `json:"decimals"`
	TotalSupply *uint256.Int   `json:"total_supply"`
	Payable     bool           `json:"payable"`
}

// TokenListResponse represents the payment tokens of the ledger
type TokenListResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

// BalanceResponse represents a payment-token balance, with the allowance of spender when requested
type BalanceResponse struct {
	Token     common.Address  `json:"token"`
	Holder    common.Address  `json:"holder"`
	Balance   *uint256.Int    `json:"balance"`
	Spender   *common.Address `json:"spender,omitempty"`
	Allowance *uint256.Int    `json:"allowance,omitempty"`
}

// EarningsResponse represents the marketplace treasury
type EarningsResponse struct {
	Earnings map[common.Address]*uint256.Int `json:"earnings"`
}

// ProjectApprovalResponse represents an approver registry entry
type ProjectApprovalResponse struct {
	TokenID    common.Hash    `json:"token_id"`
	ProjectURL string         `json:"project_url"`
	Minter     common.Address `json:"minter"`
	Worth      *uint256.Int   `json:"worth"`
}

// EventListResponse represents a page of committed ledger events
type EventListResponse struct {
	Events []*domain.EventRecord `json:"events"`
	Total  uint64                `json:"total"`
	Offset uint64                `json:"offset"`
}
