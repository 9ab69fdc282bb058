package marketplace

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// Snapshot is the serializable state of the marketplace
type Snapshot struct {
	Owner    common.Address                  `json:"owner"`
	FeeToken common.Address                  `json:"fee_token"`
	Relayer  common.Address                  `json:"relayer"`
	Sales    []domain.Sale                   `json:"sales"`
	Auctions []domain.Auction                `json:"auctions"`
	Earnings map[common.Address]*uint256.Int `json:"earnings"`
}

// Export returns the current state
func (m *Marketplace) Export() Snapshot {
	return Snapshot{
		Owner:    m.access.Owner(),
		FeeToken: m.feeToken.Get(),
		Relayer:  m.relayer.Get(),
		Sales:    m.Sales(),
		Auctions: m.Auctions(),
		Earnings: m.earnings.Export(),
	}
}

// Import replaces the state with s
func (m *Marketplace) Import(s Snapshot) {
	m.access.Import(s.Owner)
	m.feeToken.Import(s.FeeToken)
	m.relayer.Import(s.Relayer)

	sales := make(map[common.Hash]domain.Sale, len(s.Sales))
	for _, sale := range s.Sales {
		sales[sale.ID] = sale
	}
	m.sales.Import(sales)

	auctions := make(map[common.Hash]domain.Auction, len(s.Auctions))
	for _, auction := range s.Auctions {
		auctions[auction.ID] = auction
	}
	m.auctions.Import(auctions)

	m.earnings.Import(s.Earnings)
}
