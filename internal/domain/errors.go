package domain

import "errors"

// ErrorKind classifies a ledger revert
type ErrorKind string

const (
	KindAuthorization     ErrorKind = "authorization"
	KindStatePrecondition ErrorKind = "state_precondition"
	KindInputValidation   ErrorKind = "input_validation"
	KindSignature         ErrorKind = "signature"
	KindEconomic          ErrorKind = "economic"
	KindInternal          ErrorKind = "internal"
)

// Error is a ledger revert. Reason is the exact revert string reported to callers.
type Error struct {
	Kind   ErrorKind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func newError(kind ErrorKind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// KindOf returns the kind of a (possibly wrapped) ledger error, or KindInternal
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsRevert reports whether err is a ledger revert rather than an infrastructure failure
func IsRevert(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// Authorization failures
var (
	ErrNotOwner             = newError(KindAuthorization, "Ownable: caller is not the owner")
	ErrOnlyMinters          = newError(KindAuthorization, "only minters allowed")
	ErrOnlyApprover         = newError(KindAuthorization, "only_approver_allowed")
	ErrInvalidRelayer       = newError(KindAuthorization, "invalid_relayer")
	ErrRequireVerifier      = newError(KindAuthorization, "RequireVerifier")
	ErrNotApprovedOrOwner   = newError(KindAuthorization, "ERC721: caller is not token owner or approved")
	ErrIncorrectOwner       = newError(KindAuthorization, "IncorrectOwner")
	ErrRequireSeller        = newError(KindAuthorization, "require_caller_tobe_seller")
	ErrBidderIsSeller       = newError(KindAuthorization, "require_bidder_not_seller")
	ErrBidderIsCreator      = newError(KindAuthorization, "require_bidder_not_creator")
	ErrProjectNotApproved   = newError(KindAuthorization, "ProjectNotApproved")
	ErrApproveCallerMissing = newError(KindAuthorization, "ERC721: approve caller is not token owner or approved for all")
)

// State-precondition failures
var (
	ErrAlreadyOnSale       = newError(KindStatePrecondition, "already_on_sale")
	ErrNoSaleFound         = newError(KindStatePrecondition, "no_sale_found")
	ErrNoAuctionFound      = newError(KindStatePrecondition, "no_auction_found")
	ErrAuctionClosed       = newError(KindStatePrecondition, "auction_is_closed")
	ErrRequireAuctionClose = newError(KindStatePrecondition, "require_auction_close")
	ErrRequireNoBidder     = newError(KindStatePrecondition, "require_no_bidder")
	ErrRequireBidder       = newError(KindStatePrecondition, "require_bidder")
	ErrInvalidTokenID      = newError(KindStatePrecondition, "ERC721: invalid token ID")
	ErrProjectExist        = newError(KindStatePrecondition, "ProjectExist")
	ErrAlreadyMinted       = newError(KindStatePrecondition, "AlreadyMinted")
	ErrNotShareToken       = newError(KindStatePrecondition, "require_share_token")
	ErrSignatureUsed       = newError(KindStatePrecondition, "SignatureAlreadyUsed")
)

// Input-validation failures
var (
	ErrPriceZero              = newError(KindInputValidation, "require_price_above_zero")
	ErrInputShareZero         = newError(KindInputValidation, "require_input_share_above_zero")
	ErrInputShareNotAllowed   = newError(KindInputValidation, "require_input_share_zero")
	ErrInsufficientShare      = newError(KindInputValidation, "require_input_share_less_than_owned")
	ErrShareExceedsListed     = newError(KindInputValidation, "require_input_share_less_than_listed")
	ErrRoyaltyLimitExceeded   = newError(KindInputValidation, "RoyalityLimitExceeded")
	ErrCreatorCutLimit        = newError(KindInputValidation, "CreatorCutLimitExceeded")
	ErrPaymentTokenNotAllowed = newError(KindInputValidation, "PaymentTokenNotAllowed")
	ErrInvalidNFTType         = newError(KindInputValidation, "InvalidNFTType")
	ErrInvalidTotalShare      = newError(KindInputValidation, "InvalidTotalShare")
	ErrZeroAddress            = newError(KindInputValidation, "ERC721: transfer to the zero address")
	ErrApproveToOwner         = newError(KindInputValidation, "ERC721: approval to current owner")
	ErrApproveToCaller        = newError(KindInputValidation, "ERC721: approve to caller")
	ErrMaxPriceBelowPrice     = newError(KindInputValidation, "require_price_less_than_max_price")
	ErrAuctionEndInPast       = newError(KindInputValidation, "require_endauction_above_current_time")
	ErrBidTooLow              = newError(KindInputValidation, "require_bid_above_current_bid")
	ErrPriorityDecrease       = newError(KindInputValidation, "require_priority_above_current")
	ErrEmptyProjectURL        = newError(KindInputValidation, "require_project_url")
	ErrArithmeticOverflow     = newError(KindInputValidation, "arithmetic_overflow")
)

// Signature failures
var (
	ErrInvalidSignature = newError(KindSignature, "InvalidSignature")
	ErrSignatureExpired = newError(KindSignature, "SignatureExpired")
)

// Economic failures
var (
	ErrInsufficientAllowance = newError(KindEconomic, "ERC20: insufficient allowance")
	ErrInsufficientBalance   = newError(KindEconomic, "ERC20: transfer amount exceeds balance")
	ErrAmountExceedEarning   = newError(KindEconomic, "Amount exceed earning")
	ErrUnknownToken          = newError(KindEconomic, "ERC20: unknown token")
	ErrTokenTransferToZero   = newError(KindEconomic, "ERC20: transfer to the zero address")
	ErrApproveToZero         = newError(KindEconomic, "ERC20: approve to the zero address")
	ErrBurnExceedsBalance    = newError(KindEconomic, "ERC20: burn amount exceeds balance")
)
