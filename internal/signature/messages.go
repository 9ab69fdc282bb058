package signature

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// MintMessage authorizes minting a project for To
type MintMessage struct {
	To         common.Address `json:"to"`
	ProjectURL string         `json:"project_url"`
	NFTType    domain.NFTType `json:"nft_type"`
	CreatorCut uint8          `json:"creator_cut"`
	TotalShare uint64         `json:"total_share"`
	Deadline   uint64         `json:"deadline"`
}

func (MintMessage) PrimaryType() string { return "NFTMintData" }

func (MintMessage) Fields() []apitypes.Type {
	return []apitypes.Type{
		{Name: "to", Type: "address"},
		{Name: "projectUrl", Type: "string"},
		{Name: "nftType", Type: "uint8"},
		{Name: "creatorCut", Type: "uint8"},
		{Name: "totalShare", Type: "uint256"},
		{Name: "deadline", Type: "uint256"},
	}
}

func (m MintMessage) Values() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"to":         m.To.Hex(),
		"projectUrl": m.ProjectURL,
		"nftType":    uintValue(uint64(m.NFTType)),
		"creatorCut": uintValue(uint64(m.CreatorCut)),
		"totalShare": uintValue(m.TotalShare),
		"deadline":   uintValue(m.Deadline),
	}
}

func (m MintMessage) ExpiresAt() uint64 { return m.Deadline }

// SellMessage authorizes listing a project for sale on behalf of To
type SellMessage struct {
	To           common.Address `json:"to"`
	TokenID      common.Hash    `json:"token_id"`
	Share        uint64         `json:"share"`
	Price        *uint256.Int   `json:"price"`
	PaymentToken common.Address `json:"payment_token"`
	SellPriority uint32         `json:"sell_priority"`
	Deadline     uint64         `json:"deadline"`
}

func (SellMessage) PrimaryType() string { return "NFTSellData" }

func (SellMessage) Fields() []apitypes.Type {
	return []apitypes.Type{
		{Name: "to", Type: "address"},
		{Name: "tokenId", Type: "bytes32"},
		{Name: "share", Type: "uint256"},
		{Name: "price", Type: "uint256"},
		{Name: "paymentToken", Type: "address"},
		{Name: "sellPriority", Type: "uint32"},
		{Name: "deadline", Type: "uint256"},
	}
}

func (m SellMessage) Values() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"to":           m.To.Hex(),
		"tokenId":      m.TokenID.Hex(),
		"share":        uintValue(m.Share),
		"price":        bigValue(amount(m.Price)),
		"paymentToken": m.PaymentToken.Hex(),
		"sellPriority": uintValue(uint64(m.SellPriority)),
		"deadline":     uintValue(m.Deadline),
	}
}

func (m SellMessage) ExpiresAt() uint64 { return m.Deadline }

// BuyMessage authorizes buying from a sale listing on behalf of To
type BuyMessage struct {
	To       common.Address `json:"to"`
	SellID   common.Hash    `json:"sell_id"`
	Share    uint64         `json:"share"`
	MaxPrice *uint256.Int   `json:"max_price"`
	Deadline uint64         `json:"deadline"`
}

func (BuyMessage) PrimaryType() string { return "NFTBuyData" }

func (BuyMessage) Fields() []apitypes.Type {
	return []apitypes.Type{
		{Name: "to", Type: "address"},
		{Name: "sellId", Type: "bytes32"},
		{Name: "share", Type: "uint256"},
		{Name: "price", Type: "uint256"},
		{Name: "deadline", Type: "uint256"},
	}
}

func (m BuyMessage) Values() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"to":       m.To.Hex(),
		"sellId":   m.SellID.Hex(),
		"share":    uintValue(m.Share),
		"price":    bigValue(amount(m.MaxPrice)),
		"deadline": uintValue(m.Deadline),
	}
}

func (m BuyMessage) ExpiresAt() uint64 { return m.Deadline }

// TokenizeMessage is a verifier's approval to tokenize a project for To
type TokenizeMessage struct {
	To                    common.Address `json:"to"`
	ProjectURL            string         `json:"project_url"`
	BasePrice             *uint256.Int   `json:"base_price"`
	PopularityFactorPrice *uint256.Int   `json:"popularity_factor_price"`
	PaymentToken          common.Address `json:"payment_token"`
	Royalty               uint8          `json:"royalty"`
	Deadline              uint64         `json:"deadline"`
}

func (TokenizeMessage) PrimaryType() string { return "ProjectTokenizeData" }

func (TokenizeMessage) Fields() []apitypes.Type {
	return []apitypes.Type{
		{Name: "to", Type: "address"},
		{Name: "projectUrl", Type: "string"},
		{Name: "basePrice", Type: "uint256"},
		{Name: "popularityFactorPrice", Type: "uint256"},
		{Name: "paymentToken", Type: "address"},
		{Name: "royalty", Type: "uint8"},
		{Name: "deadline", Type: "uint256"},
	}
}

func (m TokenizeMessage) Values() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"to":                    m.To.Hex(),
		"projectUrl":            m.ProjectURL,
		"basePrice":             bigValue(amount(m.BasePrice)),
		"popularityFactorPrice": bigValue(amount(m.PopularityFactorPrice)),
		"paymentToken":          m.PaymentToken.Hex(),
		"royalty":               uintValue(uint64(m.Royalty)),
		"deadline":              uintValue(m.Deadline),
	}
}

func (m TokenizeMessage) ExpiresAt() uint64 { return m.Deadline }
