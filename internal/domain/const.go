package domain

const (
	// TotalShares is the fixed number of share units a share-mode project is split into
	TotalShares uint64 = 10000

	// MarketplaceFeePercent is the platform cut taken from every settlement
	MarketplaceFeePercent uint64 = 2

	// CreatorCutLimit is the exclusive upper bound of a creator cut percentage
	CreatorCutLimit uint8 = 50

	// DefaultRoyaltyCap is the default royalty limit for tokenized projects
	DefaultRoyaltyCap uint8 = 10

	// PriorityUnitFee is the fee-token cost of one unit of sell priority (10^15)
	PriorityUnitFee uint64 = 1_000_000_000_000_000

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
)
