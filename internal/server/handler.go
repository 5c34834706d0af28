package server

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/servisthird/coreledger/internal/acctnum"
	"github.com/servisthird/coreledger/internal/model"
	"github.com/servisthird/coreledger/internal/store"
)

// Handler serves the dashboard UI boundary over the user ledger store.
type Handler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(st *store.Store, logger *slog.Logger) *Handler {
	return &Handler{store: st, logger: logger}
}

// GetAccounts returns the user's accounts, interest accrued as of now.
func (h *Handler) GetAccounts(c *gin.Context) {
	accounts, err := h.store.Accounts(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, accounts)
}

// GetAccount returns one account by ID.
func (h *Handler) GetAccount(c *gin.Context) {
	acct, err := h.store.Account(c.Request.Context(), c.Param("userID"), c.Param("accountID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, acct)
}

// GetTransactions returns ledger entries newest-first, optionally scoped
// to ?account_id=.
func (h *Handler) GetTransactions(c *gin.Context) {
	txns, err := h.store.Transactions(c.Request.Context(), c.Param("userID"), c.Query("account_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, txns)
}

// GetBudget returns the budget with spend recomputed for the current
// period.
func (h *Handler) GetBudget(c *gin.Context) {
	b, err := h.store.Budget(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, b)
}

type budgetLimitsRequest struct {
	Categories []model.BudgetCategory `json:"categories" binding:"required"`
}

// PutBudget replaces the budget's category limits.
func (h *Handler) PutBudget(c *gin.Context) {
	var req budgetLimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondParamError(c, err.Error())
		return
	}
	b, err := h.store.SetBudgetLimits(c.Request.Context(), c.Param("userID"), req.Categories)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, b)
}

// GetCards returns the user's cards.
func (h *Handler) GetCards(c *gin.Context) {
	got, err := h.store.Cards(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, got)
}

// GetPayees returns the user's bill-pay payees.
func (h *Handler) GetPayees(c *gin.Context) {
	payees, err := h.store.Payees(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, payees)
}

type transferRequest struct {
	FromAccountID string          `json:"from_account_id" binding:"required"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Category      string          `json:"category"`
}

type transferResponse struct {
	Reference string `json:"reference"`
}

// PostTransfer executes a transfer; an absent to_account_id models an
// external debit such as a bill payment.
func (h *Handler) PostTransfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondParamError(c, err.Error())
		return
	}
	ref, err := h.store.Transfer(c.Request.Context(), c.Param("userID"), store.TransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, transferResponse{Reference: ref})
}

type entryRequest struct {
	AccountID   string          `json:"account_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category"`
}

// PostDeposit credits an account (mobile deposit).
func (h *Handler) PostDeposit(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondParamError(c, err.Error())
		return
	}
	txn, err := h.store.Deposit(c.Request.Context(), c.Param("userID"), req.AccountID, req.Amount, req.Description, req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, txn)
}

// PostWithdrawal debits an account.
func (h *Handler) PostWithdrawal(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondParamError(c, err.Error())
		return
	}
	txn, err := h.store.Withdraw(c.Request.Context(), c.Param("userID"), req.AccountID, req.Amount, req.Description, req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, txn)
}

// PostFreezeCard freezes a card.
func (h *Handler) PostFreezeCard(c *gin.Context) {
	card, err := h.store.FreezeCard(c.Request.Context(), c.Param("userID"), c.Param("cardID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, card)
}

// PostUnfreezeCard unfreezes a card.
func (h *Handler) PostUnfreezeCard(c *gin.Context) {
	card, err := h.store.UnfreezeCard(c.Request.Context(), c.Param("userID"), c.Param("cardID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, card)
}

// PostReportCardLost blocks a card permanently.
func (h *Handler) PostReportCardLost(c *gin.Context) {
	card, err := h.store.ReportCardLost(c.Request.Context(), c.Param("userID"), c.Param("cardID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, card)
}

// PutCardControls replaces an active card's control flags.
func (h *Handler) PutCardControls(c *gin.Context) {
	var controls model.CardControls
	if err := c.ShouldBindJSON(&controls); err != nil {
		respondParamError(c, err.Error())
		return
	}
	card, err := h.store.SetCardControls(c.Request.Context(), c.Param("userID"), c.Param("cardID"), controls)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, card)
}

type accountNumberResponse struct {
	AccountNumber string `json:"account_number"`
}

// GetAccountNumber mints a checksummed display number for the given
// ?type=, ?owner= and ?sequence=.
func (h *Handler) GetAccountNumber(c *gin.Context) {
	seq, err := strconv.Atoi(c.DefaultQuery("sequence", "1"))
	if err != nil || seq < 0 {
		respondParamError(c, "sequence must be a non-negative integer")
		return
	}
	number := acctnum.Generate(model.AccountType(c.Query("type")), c.Query("owner"), seq)
	respondOK(c, accountNumberResponse{AccountNumber: number})
}
