package ownership

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// ShareEntry is one share balance in a snapshot
type ShareEntry struct {
	TokenID common.Hash    `json:"token_id"`
	Holder  common.Address `json:"holder"`
	Share   uint64         `json:"share"`
}

// ShareApprovalEntry is one share-scoped approval in a snapshot
type ShareApprovalEntry struct {
	TokenID  common.Hash    `json:"token_id"`
	Holder   common.Address `json:"holder"`
	Approved common.Address `json:"approved"`
}

// OperatorEntry is one operator approval in a snapshot
type OperatorEntry struct {
	Owner    common.Address `json:"owner"`
	Operator common.Address `json:"operator"`
}

// Snapshot is the serializable state of the ledger
type Snapshot struct {
	Owner              common.Address                 `json:"owner"`
	FeeToken           common.Address                 `json:"fee_token"`
	RoyaltyCap         uint8                          `json:"royalty_cap"`
	Relayer            common.Address                 `json:"relayer"`
	DefaultMarketplace common.Address                 `json:"default_marketplace"`
	Minters            []common.Address               `json:"minters"`
	Verifiers          []common.Address               `json:"verifiers"`
	Projects           []domain.Project               `json:"projects"`
	Retired            []common.Hash                  `json:"retired"`
	Shares             []ShareEntry                   `json:"shares"`
	TokenApprovals     map[common.Hash]common.Address `json:"token_approvals"`
	ShareApprovals     []ShareApprovalEntry           `json:"share_approvals"`
	Operators          []OperatorEntry                `json:"operators"`
	UsedSignatures     []common.Hash                  `json:"used_signatures"`
}

// Export returns the current state
func (l *Ledger) Export() Snapshot {
	s := Snapshot{
		Owner:              l.access.Owner(),
		FeeToken:           l.feeToken.Get(),
		RoyaltyCap:         l.royaltyCap.Get(),
		Relayer:            l.relayer.Get(),
		DefaultMarketplace: l.defaultMarketplace.Get(),
		Minters:            keys(l.minters.Export()),
		Verifiers:          keys(l.verifiers.Export()),
		Projects:           l.Projects(),
		Retired:            keys(l.retired.Export()),
		TokenApprovals:     l.tokenApprovals.Export(),
		UsedSignatures:     keys(l.usedSignatures.Export()),
	}
	l.shares.Range(func(k shareKey, v uint64) bool {
		s.Shares = append(s.Shares, ShareEntry{TokenID: k.TokenID, Holder: k.Holder, Share: v})
		return true
	})
	l.shareApprovals.Range(func(k shareKey, v common.Address) bool {
		s.ShareApprovals = append(s.ShareApprovals, ShareApprovalEntry{TokenID: k.TokenID, Holder: k.Holder, Approved: v})
		return true
	})
	l.operators.Range(func(k operatorKey, _ bool) bool {
		s.Operators = append(s.Operators, OperatorEntry{Owner: k.Owner, Operator: k.Operator})
		return true
	})
	return s
}

// Import replaces the state with s
func (l *Ledger) Import(s Snapshot) {
	l.access.Import(s.Owner)
	l.feeToken.Import(s.FeeToken)
	l.royaltyCap.Import(s.RoyaltyCap)
	l.relayer.Import(s.Relayer)
	l.defaultMarketplace.Import(s.DefaultMarketplace)
	l.minters.Import(set(s.Minters))
	l.verifiers.Import(set(s.Verifiers))
	l.retired.Import(set(s.Retired))
	l.usedSignatures.Import(set(s.UsedSignatures))
	l.tokenApprovals.Import(s.TokenApprovals)

	projects := make(map[common.Hash]domain.Project, len(s.Projects))
	for _, p := range s.Projects {
		projects[p.TokenID] = p
	}
	l.projects.Import(projects)

	shares := make(map[shareKey]uint64, len(s.Shares))
	for _, e := range s.Shares {
		shares[shareKey{TokenID: e.TokenID, Holder: e.Holder}] = e.Share
	}
	l.shares.Import(shares)

	approvals := make(map[shareKey]common.Address, len(s.ShareApprovals))
	for _, e := range s.ShareApprovals {
		approvals[shareKey{TokenID: e.TokenID, Holder: e.Holder}] = e.Approved
	}
	l.shareApprovals.Import(approvals)

	operators := make(map[operatorKey]bool, len(s.Operators))
	for _, e := range s.Operators {
		operators[operatorKey{Owner: e.Owner, Operator: e.Operator}] = true
	}
	l.operators.Import(operators)
}

func keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func set[K comparable](items []K) map[K]bool {
	out := make(map[K]bool, len(items))
	for _, k := range items {
		out[k] = true
	}
	return out
}
