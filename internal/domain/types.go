package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// NFTType is the ownership model of a project
type NFTType uint8

const (
	// NFTTypePercentageCut is a single-owner project paying the creator a percentage of every sale
	NFTTypePercentageCut NFTType = iota
	// NFTTypeShare is a project split into TotalShares units
	NFTTypeShare
	// NFTTypeEquity is a single-owner project representing equity
	NFTTypeEquity
	// NFTTypeDirect is a single-owner project without creator cut
	NFTTypeDirect
	// NFTTypeTokenized is a project created through a verifier-signed tokenize request
	NFTTypeTokenized
)

var nftTypeNames = map[NFTType]string{
	NFTTypePercentageCut: "percentage_cut",
	NFTTypeShare:         "share",
	NFTTypeEquity:        "equity",
	NFTTypeDirect:        "direct",
	NFTTypeTokenized:     "tokenized",
}

// Valid checks if the type is a known NFT type
func (t NFTType) Valid() bool {
	_, ok := nftTypeNames[t]
	return ok
}

// SingleOwner reports whether the type is held by exactly one address
func (t NFTType) SingleOwner() bool {
	return t != NFTTypeShare
}

func (t NFTType) String() string {
	if name, ok := nftTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("nft_type(%d)", uint8(t))
}

func (t NFTType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid nft type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *NFTType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for k, name := range nftTypeNames {
		if name == s {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("invalid nft type %q", s)
}

// Project is the ownership record of a tokenized open-source project
type Project struct {
	TokenID    common.Hash    `json:"token_id"`
	URL        string         `json:"url"`
	Creator    common.Address `json:"creator"`
	Owner      common.Address `json:"owner"` // holder of the whole asset; zero for a share project whose units are spread over several holders
	Type       NFTType        `json:"type"`
	CreatorCut uint8          `json:"creator_cut"` // percentage, also the royalty of share and tokenized projects
	TotalShare uint64         `json:"total_share"` // 0 for single-owner projects
	MintedAt   uint64         `json:"minted_at"`

	// Tokenized projects
	BasePrice             *uint256.Int   `json:"base_price,omitempty"`
	PopularityFactorPrice *uint256.Int   `json:"popularity_factor_price,omitempty"`
	PaymentToken          common.Address `json:"payment_token"`

	// Worth is the approver fee paid at share mint, refunded to the approver on burn
	Worth *uint256.Int `json:"worth,omitempty"`
}

// IsShareToken reports whether the project is held in share mode
func (p Project) IsShareToken() bool {
	return p.TotalShare > 0
}

// ProjectApproval is the approver oracle's answer for a project
type ProjectApproval struct {
	Minter common.Address `json:"minter"`
	Worth  *uint256.Int   `json:"worth"`
}

// Approved reports whether the approval names a minter
func (a ProjectApproval) Approved() bool {
	return !IsZeroAddress(a.Minter)
}

// Sale is a fixed-price listing keyed by ListingID(tokenId, seller)
type Sale struct {
	ID           common.Hash    `json:"id"`
	TokenID      common.Hash    `json:"token_id"`
	Seller       common.Address `json:"seller"`
	Share        uint64         `json:"share"` // 0 means the entire single-owner asset
	Price        *uint256.Int   `json:"price"` // per share unit, or for the whole asset
	PaymentToken common.Address `json:"payment_token"`
	SellPriority uint32         `json:"sell_priority"`
	CreatedAt    uint64         `json:"created_at"`
}

// Auction is a timed auction keyed by ListingID(tokenId, seller)
type Auction struct {
	ID              common.Hash    `json:"id"`
	TokenID         common.Hash    `json:"token_id"`
	Seller          common.Address `json:"seller"`
	Share           uint64         `json:"share"`
	CurrentBidPrice *uint256.Int   `json:"current_bid_price"`
	CurrentBidOwner common.Address `json:"current_bid_owner"`
	PaymentToken    common.Address `json:"payment_token"`
	EndAuction      uint64         `json:"end_auction"`
	SellPriority    uint32         `json:"sell_priority"`
	CreatedAt       uint64         `json:"created_at"`
}

// HasBidder reports whether anyone has bid on the auction
func (a Auction) HasBidder() bool {
	return !IsZeroAddress(a.CurrentBidOwner)
}

// IsOpen reports whether bids are still accepted at now
func (a Auction) IsOpen(now uint64) bool {
	return now < a.EndAuction
}

// Split is the distribution of one settlement
type Split struct {
	Total          *uint256.Int `json:"total"`
	MarketplaceCut *uint256.Int `json:"marketplace_cut"`
	CreatorCut     *uint256.Int `json:"creator_cut"`
	SellerProceeds *uint256.Int `json:"seller_proceeds"`
}
