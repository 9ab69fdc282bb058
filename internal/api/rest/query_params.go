package rest

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/constants"
)

// ListEventsQueryParams holds query parameters for GET /projects/:id/events
type ListEventsQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListEventsQuery parses query parameters for GET /projects/:id/events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_EVENTS_LIMIT
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}
	return &params, nil
}

// parseHash parses a 32-byte 0x-hex path parameter
func parseHash(name, value string) (common.Hash, error) {
	raw, err := hexutil.Decode(strings.TrimSpace(value))
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	if len(raw) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid %s: expected %d bytes, got %d", name, common.HashLength, len(raw))
	}
	return common.BytesToHash(raw), nil
}

// parseAddress parses a 0x-hex address parameter
func parseAddress(name, value string) (common.Address, error) {
	value = strings.TrimSpace(value)
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("invalid %s: %q is not an address", name, value)
	}
	return common.HexToAddress(value), nil
}
