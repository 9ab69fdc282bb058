package rest

import (
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/middleware"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/dto"
	apierrors "github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/errors"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// GET /api/v1/projects/:id
	GetProject(c *gin.Context)
	// GET /api/v1/projects/:id/shares/:holder
	GetShare(c *gin.Context)
	// GET /api/v1/projects/:id/events?limit=<limit>&offset=<offset>
	ListProjectEvents(c *gin.Context)
	// POST /api/v1/projects/mint
	Mint(c *gin.Context)
	// POST /api/v1/projects/mint-to
	MintTo(c *gin.Context)
	// POST /api/v1/projects/tokenize
	Tokenize(c *gin.Context)
	// POST /api/v1/projects/:id/burn
	Burn(c *gin.Context)
	// POST /api/v1/transfers
	Transfer(c *gin.Context)
	// POST /api/v1/approvals
	Approve(c *gin.Context)
	// POST /api/v1/operators
	SetOperator(c *gin.Context)

	// GET /api/v1/sales/:id
	GetSale(c *gin.Context)
	// POST /api/v1/sales
	Sell(c *gin.Context)
	// PATCH /api/v1/sales/:id
	UpdateSale(c *gin.Context)
	// PATCH /api/v1/sales/:id/priority
	SetSalePriority(c *gin.Context)
	// DELETE /api/v1/sales/:id
	RemoveSale(c *gin.Context)
	// POST /api/v1/sales/:id/buy
	Buy(c *gin.Context)

	// GET /api/v1/auctions/:id
	GetAuction(c *gin.Context)
	// POST /api/v1/auctions
	CreateAuction(c *gin.Context)
	// POST /api/v1/auctions/:id/bids
	PlaceBid(c *gin.Context)
	// POST /api/v1/auctions/:id/claim
	ClaimAuction(c *gin.Context)
	// POST /api/v1/auctions/:id/refund
	RefundAuction(c *gin.Context)
	// PATCH /api/v1/auctions/:id/priority
	SetAuctionPriority(c *gin.Context)

	// POST /api/v1/meta/mint
	MetaMint(c *gin.Context)
	// POST /api/v1/meta/sell
	MetaSell(c *gin.Context)
	// POST /api/v1/meta/buy
	MetaBuy(c *gin.Context)

	// GET /api/v1/tokens
	ListTokens(c *gin.Context)
	// GET /api/v1/tokens/:address/balances/:holder?spender=<address>
	GetTokenBalance(c *gin.Context)
	// POST /api/v1/tokens/:address/approve
	ApproveToken(c *gin.Context)
	// GET /api/v1/treasury
	GetEarnings(c *gin.Context)

	// POST /api/v1/admin/payable-tokens
	AddPayableTokens(c *gin.Context)
	// DELETE /api/v1/admin/payable-tokens/:address
	RemovePayableToken(c *gin.Context)
	// POST /api/v1/admin/minters
	SetMinter(c *gin.Context)
	// POST /api/v1/admin/verifiers
	SetVerifier(c *gin.Context)
	// POST /api/v1/admin/earnings/withdraw
	WithdrawEarning(c *gin.Context)
	// POST /api/v1/admin/projects/approve
	ApproveProject(c *gin.Context)
	// POST /api/v1/admin/approvers
	SetApprover(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

type validator interface {
	Validate() error
}

// bindRequest decodes and validates the JSON body into req
func bindRequest(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	if v, ok := req.(validator); ok {
		if err := v.Validate(); err != nil {
			respondValidationError(c, err)
			return false
		}
	}
	return true
}

// callerOf returns the authenticated caller
func callerOf(c *gin.Context) (common.Address, bool) {
	addr, ok := middleware.Caller(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, apierrors.NewUnauthorizedError("Caller is not authenticated"))
	}
	return addr, ok
}

func hashParam(c *gin.Context, name string) (common.Hash, bool) {
	h, err := parseHash(name, c.Param(name))
	if err != nil {
		respondBadRequest(c, "Invalid path parameter", err.Error())
		return common.Hash{}, false
	}
	return h, true
}

func addressParam(c *gin.Context, name string) (common.Address, bool) {
	addr, err := parseAddress(name, c.Param(name))
	if err != nil {
		respondBadRequest(c, "Invalid path parameter", err.Error())
		return common.Address{}, false
	}
	return addr, true
}

// respondTx sends a committed transaction, or the error that reverted it
func respondTx(c *gin.Context, status int, resp *dto.TxResponse, err error, message string) {
	if err != nil {
		respondError(c, err, message)
		return
	}
	c.JSON(status, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) GetProject(c *gin.Context) {
	tokenID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.executor.GetProject(c.Request.Context(), tokenID)
	if err != nil {
		respondError(c, err, "Failed to get project")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetShare(c *gin.Context) {
	tokenID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	holder, ok := addressParam(c, "holder")
	if !ok {
		return
	}
	resp, err := h.executor.GetShare(c.Request.Context(), tokenID, holder)
	if err != nil {
		respondError(c, err, "Failed to get share")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListProjectEvents(c *gin.Context) {
	tokenID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	params, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err)
		return
	}
	resp, err := h.executor.GetProjectEvents(c.Request.Context(), tokenID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to get events")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) Mint(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.MintRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.Mint(c.Request.Context(), caller, req)
	respondTx(c, http.StatusCreated, resp, err, "Failed to mint project")
}

func (h *handler) MintTo(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.MintToRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.MintTo(c.Request.Context(), caller, req)
	respondTx(c, http.StatusCreated, resp, err, "Failed to mint project")
}

func (h *handler) Tokenize(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.TokenizeRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.Tokenize(c.Request.Context(), caller, req)
	respondTx(c, http.StatusCreated, resp, err, "Failed to tokenize project")
}

func (h *handler) Burn(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	tokenID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.executor.Burn(c.Request.Context(), caller, tokenID)
	respondTx(c, http.StatusOK, resp, err, "Failed to burn project")
}

func (h *handler) Transfer(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.Transfer(c.Request.Context(), caller, req)
	respondTx(c, http.StatusOK, resp, err, "Failed to transfer")
}

func (h *handler) Approve(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.ApprovalRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.Approve(c.Request.Context(), caller, req)
	respondTx(c, http.StatusOK, resp, err, "Failed to approve")
}

func (h *handler) SetOperator(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.OperatorRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.SetOperator(c.Request.Context(), caller, req)
	respondTx(c, http.StatusOK, resp, err, "Failed to set operator")
}

func (h *handler) GetSale(c *gin.Context) {
	saleID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.executor.GetSale(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, err, "Failed to get sale")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) Sell(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.SellRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.Sell(c.Request.Context(), caller, req)
	respondTx(c, http.StatusCreated, resp, err, "Failed to create sale")
}

func (h *handler) UpdateSale(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	saleID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSaleRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.UpdateSale(c.Request.Context(), caller, saleID, req)
	respondTx(c, http.StatusOK, resp, err, "Failed to update sale")
}

func (h *handler) SetSalePriority(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	saleID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	var req dto.PriorityRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.SetSalePriority(c.Request.Context(), caller, saleID, req.SellPriority)
	respondTx(c, http.StatusOK, resp, err, "Failed to set sale priority")
}

func (h *handler) RemoveSale(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	saleID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.executor.RemoveSale(c.Request.Context(), caller, saleID)
	respondTx(c, http.StatusOK, resp, err, "Failed to remove sale")
}

func (h *handler) Buy(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	saleID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	var req dto.BuyRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.Buy(c.Request.Context(), caller, saleID, req)
	respondTx(c, http.StatusOK, resp, err, "Failed to buy")
}

func (h *handler) GetAuction(c *gin.Context) {
	auctionID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.executor.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		respondError(c, err, "Failed to get auction")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) CreateAuction(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.AuctionRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.CreateAuction(c.Request.Context(), caller, req)
	respondTx(c, http.StatusCreated, resp, err, "Failed to create auction")
}

func (h *handler) PlaceBid(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	auctionID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	var req dto.BidRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.PlaceBid(c.Request.Context(), caller, auctionID, req)
	respondTx(c, http.StatusOK, resp, err, "Failed to place bid")
}

func (h *handler) ClaimAuction(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	auctionID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.executor.ClaimAuction(c.Request.Context(), caller, auctionID)
	respondTx(c, http.StatusOK, resp, err, "Failed to claim auction")
}

func (h *handler) RefundAuction(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	auctionID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.executor.RefundAuction(c.Request.Context(), caller, auctionID)
	respondTx(c, http.StatusOK, resp, err, "Failed to refund auction")
}

func (h *handler) SetAuctionPriority(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	auctionID, ok := hashParam(c, "id")
	if !ok {
		return
	}
	var req dto.PriorityRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.SetAuctionPriority(c.Request.Context(), caller, auctionID, req.SellPriority)
	respondTx(c, http.StatusOK, resp, err, "Failed to set auction priority")
}

func (h *handler) MetaMint(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.MetaMintRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.MetaMint(c.Request.Context(), caller, req)
	respondTx(c, http.StatusCreated, resp, err, "Failed to relay mint")
}

func (h *handler) MetaSell(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.MetaSellRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.MetaSell(c.Request.Context(), caller, req)
	respondTx(c, http.StatusCreated, resp, err, "Failed to relay sale")
}

func (h *handler) MetaBuy(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	var req dto.MetaBuyRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.MetaBuy(c.Request.Context(), caller, req)
	respondTx(c, http.StatusOK, resp, err, "Failed to relay purchase")
}

func (h *handler) ListTokens(c *gin.Context) {
	resp, err := h.executor.ListTokens(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list tokens")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetTokenBalance(c *gin.Context) {
	tokenAddr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	holder, ok := addressParam(c, "holder")
	if !ok {
		return
	}
	var spender *common.Address
	if raw := c.Query("spender"); raw != "" {
		addr, err := parseAddress("spender", raw)
		if err != nil {
			respondBadRequest(c, "Invalid query parameter", err.Error())
			return
		}
		spender = &addr
	}
	resp, err := h.executor.GetTokenBalance(c.Request.Context(), tokenAddr, holder, spender)
	if err != nil {
		respondError(c, err, "Failed to get balance")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ApproveToken(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}
	tokenAddr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req dto.TokenApproveRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.ApproveToken(c.Request.Context(), caller, tokenAddr, req)
	respondTx(c, http.StatusOK, resp, err, "Failed to approve token")
}

func (h *handler) GetEarnings(c *gin.Context) {
	resp, err := h.executor.GetEarnings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get earnings")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) AddPayableTokens(c *gin.Context) {
	var req dto.PayableTokensRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.AddPayableTokens(c.Request.Context(), req)
	respondTx(c, http.StatusOK, resp, err, "Failed to add payable tokens")
}

func (h *handler) RemovePayableToken(c *gin.Context) {
	tokenAddr, ok := addressParam(c, "address")
	if !ok {
		return
	}
	resp, err := h.executor.RemovePayableToken(c.Request.Context(), tokenAddr)
	respondTx(c, http.StatusOK, resp, err, "Failed to remove payable token")
}

func (h *handler) SetMinter(c *gin.Context) {
	var req dto.RoleRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.SetMinter(c.Request.Context(), req)
	respondTx(c, http.StatusOK, resp, err, "Failed to set minter")
}

func (h *handler) SetVerifier(c *gin.Context) {
	var req dto.RoleRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.SetVerifier(c.Request.Context(), req)
	respondTx(c, http.StatusOK, resp, err, "Failed to set verifier")
}

func (h *handler) WithdrawEarning(c *gin.Context) {
	var req dto.WithdrawRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.WithdrawEarning(c.Request.Context(), req)
	respondTx(c, http.StatusOK, resp, err, "Failed to withdraw earning")
}

func (h *handler) ApproveProject(c *gin.Context) {
	var req dto.ApproveProjectRequest
	if !bindRequest(c, &req) {
		return
	}
	resp, err := h.executor.ApproveProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to approve project")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) SetApprover(c *gin.Context) {
	var req dto.RoleRequest
	if !bindRequest(c, &req) {
		return
	}
	if err := h.executor.SetApprover(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to set approver")
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": req.Account, "granted": req.Granted})
}
