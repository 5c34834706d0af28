package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/servisthird/coreledger/internal/store"
)

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(st *store.Store, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(recoveryMiddleware(logger))
	r.Use(requestLogMiddleware(logger))

	h := NewHandler(st, logger)

	api := r.Group("/api/v1")
	{
		users := api.Group("/users/:userID")
		{
			users.GET("/accounts", h.GetAccounts)
			users.GET("/accounts/:accountID", h.GetAccount)
			users.GET("/transactions", h.GetTransactions)
			users.GET("/budget", h.GetBudget)
			users.PUT("/budget", h.PutBudget)
			users.GET("/payees", h.GetPayees)
			users.POST("/transfers", h.PostTransfer)
			users.POST("/deposits", h.PostDeposit)
			users.POST("/withdrawals", h.PostWithdrawal)

			userCards := users.Group("/cards")
			{
				userCards.GET("", h.GetCards)
				userCards.POST("/:cardID/freeze", h.PostFreezeCard)
				userCards.POST("/:cardID/unfreeze", h.PostUnfreezeCard)
				userCards.POST("/:cardID/report-lost", h.PostReportCardLost)
				userCards.PUT("/:cardID/controls", h.PutCardControls)
			}
		}

		api.GET("/account-numbers/new", h.GetAccountNumber)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
