package ownership

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// Holding is the share balance of one holder
type Holding struct {
	Holder common.Address `json:"holder"`
	Share  uint64         `json:"share"`
}

// Exists reports whether tokenID is a live project
func (l *Ledger) Exists(tokenID common.Hash) bool {
	return l.projects.Has(tokenID)
}

// IsRetired reports whether tokenID was burned
func (l *Ledger) IsRetired(tokenID common.Hash) bool {
	return l.retired.Has(tokenID)
}

// Project returns the project record of tokenID
func (l *Ledger) Project(tokenID common.Hash) (domain.Project, error) {
	project, ok := l.projects.Get(tokenID)
	if !ok {
		return domain.Project{}, domain.ErrInvalidTokenID
	}
	return project, nil
}

// OwnerOf returns the holder of the whole asset
func (l *Ledger) OwnerOf(tokenID common.Hash) (common.Address, error) {
	project, err := l.Project(tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return project.Owner, nil
}

// CreatorOf returns the creator of the project
func (l *Ledger) CreatorOf(tokenID common.Hash) (common.Address, error) {
	project, err := l.Project(tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return project.Creator, nil
}

// ShareOf returns the share units holder owns. Always 0 for single-owner projects.
func (l *Ledger) ShareOf(tokenID common.Hash, holder common.Address) uint64 {
	return l.shares.Value(shareKey{TokenID: tokenID, Holder: holder})
}

// TotalShareOf returns the total share units of tokenID, 0 for single-owner projects
func (l *Ledger) TotalShareOf(tokenID common.Hash) uint64 {
	return l.projects.Value(tokenID).TotalShare
}

// HoldersOf returns every holder of a share project ordered by address
func (l *Ledger) HoldersOf(tokenID common.Hash) []Holding {
	var out []Holding
	l.shares.Range(func(k shareKey, v uint64) bool {
		if k.TokenID == tokenID {
			out = append(out, Holding{Holder: k.Holder, Share: v})
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Holder.Cmp(out[j].Holder) < 0
	})
	return out
}

// GetApproved returns the address approved for the whole asset
func (l *Ledger) GetApproved(tokenID common.Hash) common.Address {
	return l.tokenApprovals.Value(tokenID)
}

// GetApprovedForShare returns the address approved for the shares of holder
func (l *Ledger) GetApprovedForShare(tokenID common.Hash, holder common.Address) common.Address {
	return l.shareApprovals.Value(shareKey{TokenID: tokenID, Holder: holder})
}

// IsApprovedForAll reports whether operator acts for owner. The default marketplace
// is an operator of everyone.
func (l *Ledger) IsApprovedForAll(owner, operator common.Address) bool {
	if market := l.defaultMarketplace.Get(); !domain.IsZeroAddress(market) && operator == market {
		return true
	}
	return l.operators.Has(operatorKey{Owner: owner, Operator: operator})
}

func (l *Ledger) IsMinter(account common.Address) bool {
	return l.minters.Has(account)
}

func (l *Ledger) IsVerifier(account common.Address) bool {
	return l.verifiers.Has(account)
}

func (l *Ledger) RoyaltyCap() uint8 {
	return l.royaltyCap.Get()
}

func (l *Ledger) Relayer() common.Address {
	return l.relayer.Get()
}

func (l *Ledger) DefaultMarketplace() common.Address {
	return l.defaultMarketplace.Get()
}

func (l *Ledger) FeeToken() common.Address {
	return l.feeToken.Get()
}

// Projects returns every live project ordered by token id
func (l *Ledger) Projects() []domain.Project {
	out := make([]domain.Project, 0, l.projects.Len())
	l.projects.Range(func(_ common.Hash, p domain.Project) bool {
		out = append(out, p)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].TokenID.Cmp(out[j].TokenID) < 0
	})
	return out
}
