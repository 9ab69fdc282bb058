package domain

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// EventType represents the type of a ledger event
type EventType string

const (
	EventProjectTokenized     EventType = "project_tokenized"
	EventProjectMinted        EventType = "project_minted"
	EventProjectBurned        EventType = "project_burned"
	EventTransfer             EventType = "transfer"
	EventApproval             EventType = "approval"
	EventApprovalForAll       EventType = "approval_for_all"
	EventSaleCreated          EventType = "sale_created"
	EventSaleUpdated          EventType = "sale_updated"
	EventSaleRemoved          EventType = "sale_removed"
	EventSaleBought           EventType = "sale_bought"
	EventAuctionCreated       EventType = "auction_created"
	EventBidPlaced            EventType = "bid_placed"
	EventAuctionClaimed       EventType = "auction_claimed"
	EventAuctionRefunded      EventType = "auction_refunded"
	EventPriorityUpdated      EventType = "priority_updated"
	EventEarningWithdrawn     EventType = "earning_withdrawn"
	EventTokenTransfer        EventType = "token_transfer"
	EventTokenApproval        EventType = "token_approval"
	EventPayableTokenUpdated  EventType = "payable_token_updated"
	EventRoleUpdated          EventType = "role_updated"
	EventOwnershipTransferred EventType = "ownership_transferred"
	EventConfigUpdated        EventType = "config_updated"
)

// Payload is the typed body of a ledger event
type Payload interface {
	EventType() EventType
}

// TokenRef is implemented by payloads that concern a single project
type TokenRef interface {
	EventTokenID() common.Hash
}

// Event is a ledger event emitted by a committed transaction
type Event struct {
	Height    uint64         `json:"height"`
	Index     int            `json:"index"`
	Timestamp uint64         `json:"timestamp"`
	Type      EventType      `json:"type"`
	Source    common.Address `json:"source"` // address of the emitting component
	TokenID   *common.Hash   `json:"token_id,omitempty"`
	Payload   Payload        `json:"payload"`
}

// EventRecord is the persisted and published form of an Event
type EventRecord struct {
	ID        string          `json:"id"`
	Height    uint64          `json:"height"`
	Index     int             `json:"index"`
	Timestamp uint64          `json:"timestamp"`
	Type      EventType       `json:"type"`
	Source    string          `json:"source"`
	TokenID   *string         `json:"token_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	Checksum  string          `json:"checksum"`
}

type ProjectTokenized struct {
	TokenID               common.Hash    `json:"token_id"`
	URL                   string         `json:"url"`
	Creator               common.Address `json:"creator"`
	BasePrice             *uint256.Int   `json:"base_price"`
	PopularityFactorPrice *uint256.Int   `json:"popularity_factor_price"`
	PaymentToken          common.Address `json:"payment_token"`
	Royalty               uint8          `json:"royalty"`
}

func (ProjectTokenized) EventType() EventType { return EventProjectTokenized }
func (e ProjectTokenized) EventTokenID() common.Hash { return e.TokenID }

type ProjectMinted struct {
	TokenID    common.Hash    `json:"token_id"`
	URL        string         `json:"url"`
	To         common.Address `json:"to"`
	Type       NFTType        `json:"type"`
	CreatorCut uint8          `json:"creator_cut"`
	TotalShare uint64         `json:"total_share"`
	Worth      *uint256.Int   `json:"worth,omitempty"`
}

func (ProjectMinted) EventType() EventType { return EventProjectMinted }
func (e ProjectMinted) EventTokenID() common.Hash { return e.TokenID }

type ProjectBurned struct {
	TokenID common.Hash    `json:"token_id"`
	By      common.Address `json:"by"`
	Refund  *uint256.Int   `json:"refund,omitempty"`
}

func (ProjectBurned) EventType() EventType { return EventProjectBurned }
func (e ProjectBurned) EventTokenID() common.Hash { return e.TokenID }

// Transfer moves a whole asset (Share == 0) or Share units of a share project
type Transfer struct {
	TokenID common.Hash    `json:"token_id"`
	From    common.Address `json:"from"`
	To      common.Address `json:"to"`
	Share   uint64         `json:"share"`
}

func (Transfer) EventType() EventType { return EventTransfer }
func (e Transfer) EventTokenID() common.Hash { return e.TokenID }

type Approval struct {
	TokenID     common.Hash    `json:"token_id"`
	Holder      common.Address `json:"holder"`
	Approved    common.Address `json:"approved"`
	ShareScoped bool           `json:"share_scoped"`
}

func (Approval) EventType() EventType { return EventApproval }
func (e Approval) EventTokenID() common.Hash { return e.TokenID }

type ApprovalForAll struct {
	Owner    common.Address `json:"owner"`
	Operator common.Address `json:"operator"`
	Approved bool           `json:"approved"`
}

func (ApprovalForAll) EventType() EventType { return EventApprovalForAll }

type SaleCreated struct {
	Sale Sale `json:"sale"`
}

func (SaleCreated) EventType() EventType { return EventSaleCreated }
func (e SaleCreated) EventTokenID() common.Hash { return e.Sale.TokenID }

type SaleUpdated struct {
	Sale Sale `json:"sale"`
}

func (SaleUpdated) EventType() EventType { return EventSaleUpdated }
func (e SaleUpdated) EventTokenID() common.Hash { return e.Sale.TokenID }

type SaleRemoved struct {
	SaleID  common.Hash    `json:"sale_id"`
	TokenID common.Hash    `json:"token_id"`
	Seller  common.Address `json:"seller"`
	Share   uint64         `json:"share"`
}

func (SaleRemoved) EventType() EventType { return EventSaleRemoved }
func (e SaleRemoved) EventTokenID() common.Hash { return e.TokenID }

type SaleBought struct {
	SaleID         common.Hash    `json:"sale_id"`
	TokenID        common.Hash    `json:"token_id"`
	Seller         common.Address `json:"seller"`
	Buyer          common.Address `json:"buyer"`
	Creator        common.Address `json:"creator"`
	Share          uint64         `json:"share"`
	Price          *uint256.Int   `json:"price"`
	PaymentToken   common.Address `json:"payment_token"`
	Split          Split          `json:"split"`
	RemainingShare uint64         `json:"remaining_share"`
}

func (SaleBought) EventType() EventType { return EventSaleBought }
func (e SaleBought) EventTokenID() common.Hash { return e.TokenID }

type AuctionCreated struct {
	Auction Auction `json:"auction"`
}

func (AuctionCreated) EventType() EventType { return EventAuctionCreated }
func (e AuctionCreated) EventTokenID() common.Hash { return e.Auction.TokenID }

type BidPlaced struct {
	AuctionID      common.Hash    `json:"auction_id"`
	TokenID        common.Hash    `json:"token_id"`
	Bidder         common.Address `json:"bidder"`
	Amount         *uint256.Int   `json:"amount"`
	PreviousBidder common.Address `json:"previous_bidder"`
	Refunded       *uint256.Int   `json:"refunded,omitempty"`
}

func (BidPlaced) EventType() EventType { return EventBidPlaced }
func (e BidPlaced) EventTokenID() common.Hash { return e.TokenID }

type AuctionClaimed struct {
	AuctionID    common.Hash    `json:"auction_id"`
	TokenID      common.Hash    `json:"token_id"`
	Seller       common.Address `json:"seller"`
	Winner       common.Address `json:"winner"`
	Creator      common.Address `json:"creator"`
	Share        uint64         `json:"share"`
	PaymentToken common.Address `json:"payment_token"`
	Split        Split          `json:"split"`
}

func (AuctionClaimed) EventType() EventType { return EventAuctionClaimed }
func (e AuctionClaimed) EventTokenID() common.Hash { return e.TokenID }

type AuctionRefunded struct {
	AuctionID common.Hash    `json:"auction_id"`
	TokenID   common.Hash    `json:"token_id"`
	Seller    common.Address `json:"seller"`
	Share     uint64         `json:"share"`
}

func (AuctionRefunded) EventType() EventType { return EventAuctionRefunded }
func (e AuctionRefunded) EventTokenID() common.Hash { return e.TokenID }

// ListingKind distinguishes sales from auctions in shared events
type ListingKind string

const (
	ListingKindSale    ListingKind = "sale"
	ListingKindAuction ListingKind = "auction"
)

type PriorityUpdated struct {
	ListingID   common.Hash  `json:"listing_id"`
	TokenID     common.Hash  `json:"token_id"`
	Kind        ListingKind  `json:"kind"`
	OldPriority uint32       `json:"old_priority"`
	NewPriority uint32       `json:"new_priority"`
	Fee         *uint256.Int `json:"fee"`
}

func (PriorityUpdated) EventType() EventType { return EventPriorityUpdated }
func (e PriorityUpdated) EventTokenID() common.Hash { return e.TokenID }

type EarningWithdrawn struct {
	PaymentToken common.Address `json:"payment_token"`
	To           common.Address `json:"to"`
	Amount       *uint256.Int   `json:"amount"`
}

func (EarningWithdrawn) EventType() EventType { return EventEarningWithdrawn }

type TokenTransfer struct {
	Token  common.Address `json:"token"`
	From   common.Address `json:"from"`
	To     common.Address `json:"to"`
	Amount *uint256.Int   `json:"amount"`
}

func (TokenTransfer) EventType() EventType { return EventTokenTransfer }

type TokenApproval struct {
	Token   common.Address `json:"token"`
	Owner   common.Address `json:"owner"`
	Spender common.Address `json:"spender"`
	Amount  *uint256.Int   `json:"amount"`
}

func (TokenApproval) EventType() EventType { return EventTokenApproval }

type PayableTokenUpdated struct {
	Token   common.Address `json:"token"`
	Allowed bool           `json:"allowed"`
}

func (PayableTokenUpdated) EventType() EventType { return EventPayableTokenUpdated }

// Role names used in RoleUpdated events
const (
	RoleMinter   = "minter"
	RoleVerifier = "verifier"
)

type RoleUpdated struct {
	Role    string         `json:"role"`
	Account common.Address `json:"account"`
	Granted bool           `json:"granted"`
}

func (RoleUpdated) EventType() EventType { return EventRoleUpdated }

type OwnershipTransferred struct {
	Component     string         `json:"component"`
	PreviousOwner common.Address `json:"previous_owner"`
	NewOwner      common.Address `json:"new_owner"`
}

func (OwnershipTransferred) EventType() EventType { return EventOwnershipTransferred }

type ConfigUpdated struct {
	Component string `json:"component"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

func (ConfigUpdated) EventType() EventType { return EventConfigUpdated }
