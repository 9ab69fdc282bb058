package constants

const (
	MAX_PAYABLE_TOKENS_PER_REQUEST = 20
	MAX_PAGE_SIZE                  = 100
	DEFAULT_OFFSET                 = uint64(0)
	DEFAULT_EVENTS_LIMIT           = 20
	DEFAULT_HOLDERS_LIMIT          = 100
)
