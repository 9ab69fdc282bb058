package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	caller := middleware.CallerAuth(authCfg)
	admin := middleware.APIKeyAuth(authCfg)

	v1 := router.Group("/api/v1")
	{
		// Projects (public reads, signed-in writes)
		v1.GET("/projects/:id", handler.GetProject)
		v1.GET("/projects/:id/shares/:holder", handler.GetShare)
		v1.GET("/projects/:id/events", handler.ListProjectEvents)
		v1.POST("/projects/mint", caller, handler.Mint)
		v1.POST("/projects/mint-to", caller, handler.MintTo)
		v1.POST("/projects/tokenize", caller, handler.Tokenize)
		v1.POST("/projects/:id/burn", caller, handler.Burn)
		v1.POST("/transfers", caller, handler.Transfer)
		v1.POST("/approvals", caller, handler.Approve)
		v1.POST("/operators", caller, handler.SetOperator)

		// Sales
		v1.GET("/sales/:id", handler.GetSale)
		v1.POST("/sales", caller, handler.Sell)
		v1.PATCH("/sales/:id", caller, handler.UpdateSale)
		v1.PATCH("/sales/:id/priority", caller, handler.SetSalePriority)
		v1.DELETE("/sales/:id", caller, handler.RemoveSale)
		v1.POST("/sales/:id/buy", caller, handler.Buy)

		// Auctions
		v1.GET("/auctions/:id", handler.GetAuction)
		v1.POST("/auctions", caller, handler.CreateAuction)
		v1.POST("/auctions/:id/bids", caller, handler.PlaceBid)
		v1.POST("/auctions/:id/claim", caller, handler.ClaimAuction)
		v1.POST("/auctions/:id/refund", caller, handler.RefundAuction)
		v1.PATCH("/auctions/:id/priority", caller, handler.SetAuctionPriority)

		// Relayed signatures; the submitter pays nothing and may be anyone signed in
		v1.POST("/meta/mint", caller, handler.MetaMint)
		v1.POST("/meta/sell", caller, handler.MetaSell)
		v1.POST("/meta/buy", caller, handler.MetaBuy)

		// Payment tokens
		v1.GET("/tokens", handler.ListTokens)
		v1.GET("/tokens/:address/balances/:holder", handler.GetTokenBalance)
		v1.POST("/tokens/:address/approve", caller, handler.ApproveToken)
		v1.GET("/treasury", handler.GetEarnings)

		// Admin endpoints (API key only, executed as the ledger owner)
		a := v1.Group("/admin", admin)
		a.POST("/payable-tokens", handler.AddPayableTokens)
		a.DELETE("/payable-tokens/:address", handler.RemovePayableToken)
		a.POST("/minters", handler.SetMinter)
		a.POST("/verifiers", handler.SetVerifier)
		a.POST("/earnings/withdraw", handler.WithdrawEarning)
		a.POST("/projects/approve", handler.ApproveProject)
		a.POST("/approvers", handler.SetApprover)
	}
}
