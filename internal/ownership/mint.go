package ownership

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/chain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/signature"
)

// MintInput describes the project to mint
type MintInput struct {
	ProjectURL string         `json:"project_url"`
	NFTType    domain.NFTType `json:"nft_type"`
	CreatorCut uint8          `json:"creator_cut"`
	TotalShare uint64         `json:"total_share"` // 0 mints a single-owner project
}

// Tokenize creates a tokenized project for msg.To from a verifier-signed request
func (l *Ledger) Tokenize(c *chain.Context, msg signature.TokenizeMessage, sig []byte) (common.Hash, error) {
	signer, digest, err := l.verifier.Signer(c.Now(), msg, sig)
	if err != nil {
		return common.Hash{}, err
	}
	if !l.verifiers.Has(signer) {
		return common.Hash{}, domain.ErrRequireVerifier
	}
	if l.usedSignatures.Has(digest) {
		return common.Hash{}, domain.ErrSignatureUsed
	}
	if msg.Royalty > l.royaltyCap.Get() {
		return common.Hash{}, domain.ErrRoyaltyLimitExceeded
	}
	if !l.payable.IsPayableToken(msg.PaymentToken) {
		return common.Hash{}, domain.ErrPaymentTokenNotAllowed
	}
	if domain.IsZeroAddress(msg.To) {
		return common.Hash{}, domain.ErrZeroAddress
	}
	if strings.TrimSpace(msg.ProjectURL) == "" {
		return common.Hash{}, domain.ErrEmptyProjectURL
	}

	tokenID := domain.TokenIDFromURL(msg.ProjectURL)
	if l.projects.Has(tokenID) || l.retired.Has(tokenID) {
		return common.Hash{}, domain.ErrProjectExist
	}

	l.usedSignatures.Set(digest, true)
	project := domain.Project{
		TokenID:               tokenID,
		URL:                   domain.CanonicalProjectURL(msg.ProjectURL),
		Creator:               msg.To,
		Owner:                 msg.To,
		Type:                  domain.NFTTypeTokenized,
		CreatorCut:            msg.Royalty,
		MintedAt:              c.Now(),
		BasePrice:             amountOrZero(msg.BasePrice),
		PopularityFactorPrice: amountOrZero(msg.PopularityFactorPrice),
		PaymentToken:          msg.PaymentToken,
	}
	l.projects.Set(tokenID, project)

	c.Emit(l.address, domain.ProjectTokenized{
		TokenID:               tokenID,
		URL:                   project.URL,
		Creator:               project.Creator,
		BasePrice:             project.BasePrice,
		PopularityFactorPrice: project.PopularityFactorPrice,
		PaymentToken:          project.PaymentToken,
		Royalty:               project.CreatorCut,
	})
	c.Emit(l.address, domain.Transfer{TokenID: tokenID, To: msg.To})

	return tokenID, nil
}

// Mint mints a project to the caller
func (l *Ledger) Mint(c *chain.Context, in MintInput) (common.Hash, error) {
	return l.mint(c, c.Caller(), in)
}

// MintTo mints a project to to. Minters only.
func (l *Ledger) MintTo(c *chain.Context, to common.Address, in MintInput) (common.Hash, error) {
	if err := l.onlyMinter(c); err != nil {
		return common.Hash{}, err
	}
	return l.mint(c, to, in)
}

// MintMeta mints a project to to on behalf of a relayed signer. Relayer only.
func (l *Ledger) MintMeta(c *chain.Context, to common.Address, in MintInput) (common.Hash, error) {
	if err := l.onlyRelayer(c); err != nil {
		return common.Hash{}, err
	}
	return l.mint(c.As(to), to, in)
}

func (l *Ledger) mint(c *chain.Context, to common.Address, in MintInput) (common.Hash, error) {
	if strings.TrimSpace(in.ProjectURL) == "" {
		return common.Hash{}, domain.ErrEmptyProjectURL
	}
	if domain.IsZeroAddress(to) {
		return common.Hash{}, domain.ErrZeroAddress
	}

	tokenID := domain.TokenIDFromURL(in.ProjectURL)
	if l.projects.Has(tokenID) || l.retired.Has(tokenID) {
		return common.Hash{}, domain.ErrAlreadyMinted
	}
	if !in.NFTType.Valid() || in.NFTType == domain.NFTTypeTokenized {
		return common.Hash{}, domain.ErrInvalidNFTType
	}
	if in.CreatorCut >= domain.CreatorCutLimit {
		return common.Hash{}, domain.ErrCreatorCutLimit
	}

	project := domain.Project{
		TokenID:    tokenID,
		URL:        domain.CanonicalProjectURL(in.ProjectURL),
		Creator:    to,
		Owner:      to,
		Type:       in.NFTType,
		CreatorCut: in.CreatorCut,
		MintedAt:   c.Now(),
	}

	if in.TotalShare == 0 {
		if !in.NFTType.SingleOwner() {
			return common.Hash{}, domain.ErrInvalidTotalShare
		}
		if in.NFTType == domain.NFTTypeDirect {
			project.CreatorCut = 0
		}
	} else {
		if in.NFTType != domain.NFTTypeShare {
			return common.Hash{}, domain.ErrInvalidNFTType
		}
		if in.TotalShare != domain.TotalShares {
			return common.Hash{}, domain.ErrInvalidTotalShare
		}
		worth, err := l.chargeApproval(c, tokenID, to)
		if err != nil {
			return common.Hash{}, err
		}
		project.TotalShare = in.TotalShare
		project.Worth = worth
		l.shares.Set(shareKey{TokenID: tokenID, Holder: to}, in.TotalShare)
	}

	l.projects.Set(tokenID, project)

	c.Emit(l.address, domain.ProjectMinted{
		TokenID:    tokenID,
		URL:        project.URL,
		To:         to,
		Type:       project.Type,
		CreatorCut: project.CreatorCut,
		TotalShare: project.TotalShare,
		Worth:      project.Worth,
	})
	c.Emit(l.address, domain.Transfer{TokenID: tokenID, To: to, Share: project.TotalShare})

	return tokenID, nil
}

// chargeApproval enforces the approver oracle for share projects and collects the
// approved worth from the minter. Unapproved projects may only be minted to verifiers.
func (l *Ledger) chargeApproval(c *chain.Context, tokenID common.Hash, minter common.Address) (*uint256.Int, error) {
	approval := l.approver.IsApprovedProject(tokenID)
	if !approval.Approved() {
		if !l.approver.IsVerifier(minter) {
			return nil, domain.ErrProjectNotApproved
		}
		return new(uint256.Int), nil
	}
	if approval.Minter != minter {
		return nil, domain.ErrProjectNotApproved
	}

	worth := amountOrZero(approval.Worth)
	if worth.IsZero() {
		return worth, nil
	}
	feeToken, err := l.tokens.Payment(l.feeToken.Get())
	if err != nil {
		return nil, err
	}
	if err := feeToken.TransferFrom(c.As(l.address), minter, l.address, worth); err != nil {
		return nil, err
	}
	return worth, nil
}

// Burn destroys a project. Its token id can never be minted again.
func (l *Ledger) Burn(c *chain.Context, tokenID common.Hash) error {
	project, err := l.Project(tokenID)
	if err != nil {
		return err
	}
	caller := c.Caller()

	var refund *uint256.Int
	var burned uint64
	if project.IsShareToken() {
		burned = l.ShareOf(tokenID, caller)
		if burned != project.TotalShare {
			return domain.ErrIncorrectOwner
		}
		if l.approver.IsApprovedProject(tokenID).Approved() && !l.approver.IsApprover(caller) {
			return domain.ErrOnlyApprover
		}
		refund = amountOrZero(project.Worth)
	} else if project.Owner != caller {
		return domain.ErrIncorrectOwner
	}

	l.clear(tokenID)
	l.retired.Set(tokenID, true)

	if refund != nil && !refund.IsZero() {
		feeToken, err := l.tokens.Payment(l.feeToken.Get())
		if err != nil {
			return err
		}
		if err := feeToken.Transfer(c.As(l.address), caller, refund); err != nil {
			return err
		}
	}

	c.Emit(l.address, domain.Transfer{TokenID: tokenID, From: caller, Share: burned})
	c.Emit(l.address, domain.ProjectBurned{TokenID: tokenID, By: caller, Refund: refund})
	return nil
}

// clear removes every record of tokenID
func (l *Ledger) clear(tokenID common.Hash) {
	l.projects.Delete(tokenID)
	l.tokenApprovals.Delete(tokenID)

	var holders []shareKey
	l.shares.Range(func(k shareKey, _ uint64) bool {
		if k.TokenID == tokenID {
			holders = append(holders, k)
		}
		return true
	})
	for _, k := range holders {
		l.shares.Delete(k)
	}

	var approvals []shareKey
	l.shareApprovals.Range(func(k shareKey, _ common.Address) bool {
		if k.TokenID == tokenID {
			approvals = append(approvals, k)
		}
		return true
	})
	for _, k := range approvals {
		l.shareApprovals.Delete(k)
	}
}

func amountOrZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(v)
}
