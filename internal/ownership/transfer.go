package ownership

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// Approve lets to move the whole asset of tokenID on behalf of its owner
func (l *Ledger) Approve(c *chain.Context, to common.Address, tokenID common.Hash) error {
	project, err := l.Project(tokenID)
	if err != nil {
		return err
	}
	owner := project.Owner
	if domain.IsZeroAddress(owner) {
		return domain.ErrIncorrectOwner
	}
	if to == owner {
		return domain.ErrApproveToOwner
	}
	if c.Caller() != owner && !l.IsApprovedForAll(owner, c.Caller()) {
		return domain.ErrApproveCallerMissing
	}

	l.setTokenApproval(tokenID, to)
	c.Emit(l.address, domain.Approval{TokenID: tokenID, Holder: owner, Approved: to})
	return nil
}

// ApproveShare lets to move the shares holder owns of tokenID
func (l *Ledger) ApproveShare(c *chain.Context, to common.Address, tokenID common.Hash, holder common.Address) error {
	project, err := l.Project(tokenID)
	if err != nil {
		return err
	}
	if !project.IsShareToken() {
		return domain.ErrNotShareToken
	}
	if to == holder {
		return domain.ErrApproveToOwner
	}
	if c.Caller() != holder && !l.IsApprovedForAll(holder, c.Caller()) {
		return domain.ErrApproveCallerMissing
	}
	if l.ShareOf(tokenID, holder) == 0 {
		return domain.ErrInsufficientShare
	}

	key := shareKey{TokenID: tokenID, Holder: holder}
	if domain.IsZeroAddress(to) {
		l.shareApprovals.Delete(key)
	} else {
		l.shareApprovals.Set(key, to)
	}
	c.Emit(l.address, domain.Approval{TokenID: tokenID, Holder: holder, Approved: to, ShareScoped: true})
	return nil
}

// SetApprovalForAll lets operator move every asset of the caller
func (l *Ledger) SetApprovalForAll(c *chain.Context, operator common.Address, approved bool) error {
	if operator == c.Caller() {
		return domain.ErrApproveToCaller
	}
	key := operatorKey{Owner: c.Caller(), Operator: operator}
	if approved {
		l.operators.Set(key, true)
	} else {
		l.operators.Delete(key)
	}
	c.Emit(l.address, domain.ApprovalForAll{Owner: c.Caller(), Operator: operator, Approved: approved})
	return nil
}

// TransferFullOwnership moves the whole asset from from to to. For share projects from
// must hold every unit.
func (l *Ledger) TransferFullOwnership(c *chain.Context, from, to common.Address, tokenID common.Hash) error {
	project, err := l.Project(tokenID)
	if err != nil {
		return err
	}
	if domain.IsZeroAddress(to) {
		return domain.ErrZeroAddress
	}
	if domain.IsZeroAddress(from) || project.Owner != from {
		return domain.ErrIncorrectOwner
	}
	caller := c.Caller()
	if caller != from && l.GetApproved(tokenID) != caller && !l.IsApprovedForAll(from, caller) {
		return domain.ErrNotApprovedOrOwner
	}

	var moved uint64
	if project.IsShareToken() {
		moved = l.ShareOf(tokenID, from)
		if moved != project.TotalShare {
			return domain.ErrIncorrectOwner
		}
		l.moveShares(tokenID, from, to, moved)
		l.shareApprovals.Delete(shareKey{TokenID: tokenID, Holder: from})
	}

	project.Owner = to
	l.projects.Set(tokenID, project)
	l.tokenApprovals.Delete(tokenID)

	c.Emit(l.address, domain.Transfer{TokenID: tokenID, From: from, To: to, Share: moved})
	return nil
}

// TransferShare moves share units of a share project from from to to
func (l *Ledger) TransferShare(c *chain.Context, from, to common.Address, tokenID common.Hash, share uint64) error {
	project, err := l.Project(tokenID)
	if err != nil {
		return err
	}
	if !project.IsShareToken() {
		return domain.ErrNotShareToken
	}
	if domain.IsZeroAddress(to) {
		return domain.ErrZeroAddress
	}
	if share == 0 {
		return domain.ErrInputShareZero
	}
	if share > l.ShareOf(tokenID, from) {
		return domain.ErrInsufficientShare
	}

	caller := c.Caller()
	holderKey := shareKey{TokenID: tokenID, Holder: from}
	consumeShareApproval, consumeTokenApproval := false, false
	switch {
	case caller == from:
	case l.shareApprovals.Value(holderKey) == caller:
		consumeShareApproval = true
	case project.Owner == from && l.GetApproved(tokenID) == caller:
		consumeTokenApproval = true
	case l.IsApprovedForAll(from, caller):
	default:
		return domain.ErrNotApprovedOrOwner
	}

	l.moveShares(tokenID, from, to, share)

	if consumeShareApproval || l.ShareOf(tokenID, from) == 0 {
		l.shareApprovals.Delete(holderKey)
	}
	if consumeTokenApproval {
		l.tokenApprovals.Delete(tokenID)
	}
	l.syncShareOwner(tokenID, project, to)

	c.Emit(l.address, domain.Transfer{TokenID: tokenID, From: from, To: to, Share: share})
	return nil
}

// syncShareOwner points the owner of a share project at the holder of every unit, or at
// nobody once the units are spread. A whole-asset approval does not survive an owner change.
func (l *Ledger) syncShareOwner(tokenID common.Hash, project domain.Project, to common.Address) {
	var owner common.Address
	switch {
	case l.ShareOf(tokenID, to) == project.TotalShare:
		owner = to
	case !domain.IsZeroAddress(project.Owner) && l.ShareOf(tokenID, project.Owner) == project.TotalShare:
		owner = project.Owner
	}
	if owner == project.Owner {
		return
	}
	project.Owner = owner
	l.projects.Set(tokenID, project)
	l.tokenApprovals.Delete(tokenID)
}

// moveShares debits from and credits to. The caller has checked the balance of from.
func (l *Ledger) moveShares(tokenID common.Hash, from, to common.Address, share uint64) {
	if from == to {
		return
	}
	fromKey := shareKey{TokenID: tokenID, Holder: from}
	toKey := shareKey{TokenID: tokenID, Holder: to}

	remaining := l.shares.Value(fromKey) - share
	if remaining == 0 {
		l.shares.Delete(fromKey)
	} else {
		l.shares.Set(fromKey, remaining)
	}
	l.shares.Set(toKey, l.shares.Value(toKey)+share)
}

func (l *Ledger) setTokenApproval(tokenID common.Hash, to common.Address) {
	if domain.IsZeroAddress(to) {
		l.tokenApprovals.Delete(tokenID)
		return
	}
	l.tokenApprovals.Set(tokenID, to)
}
