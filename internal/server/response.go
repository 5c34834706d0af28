package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servisthird/coreledger/internal/cards"
	"github.com/servisthird/coreledger/internal/ledger"
	"github.com/servisthird/coreledger/internal/store"
)

// Business result codes carried in the response envelope. The HTTP status
// stays 200 for business failures; transport-level problems use 4xx/5xx.
const (
	CodeSuccess     = 0
	CodeParamError  = 400
	CodeServerError = 500

	CodeAccountNotFound    = 1001
	CodeInvalidAmount      = 1002
	CodeInsufficientFunds  = 1003
	CodeSameAccount        = 1004
	CodeUserNotFound       = 1005
	CodeCardNotFound       = 1006
	CodeCardState          = 1007
	CodePersistenceFailure = 1008
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: CodeSuccess, Message: "success", Data: data})
}

func respondParamError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Code: CodeParamError, Message: message})
}

// respondError maps the ledger error taxonomy onto business codes so the
// UI can render a specific message per failure.
func respondError(c *gin.Context, err error) {
	code := CodeServerError
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		code, status = CodeAccountNotFound, http.StatusOK
	case errors.Is(err, ledger.ErrInvalidAmount):
		code, status = CodeInvalidAmount, http.StatusOK
	case errors.Is(err, ledger.ErrInsufficientFunds):
		code, status = CodeInsufficientFunds, http.StatusOK
	case errors.Is(err, ledger.ErrSameAccount):
		code, status = CodeSameAccount, http.StatusOK
	case errors.Is(err, store.ErrUserNotFound):
		code, status = CodeUserNotFound, http.StatusOK
	case errors.Is(err, cards.ErrCardNotFound):
		code, status = CodeCardNotFound, http.StatusOK
	case errors.Is(err, cards.ErrCardBlocked),
		errors.Is(err, cards.ErrCardNotFrozen),
		errors.Is(err, cards.ErrCardNotActive):
		code, status = CodeCardState, http.StatusOK
	case errors.Is(err, store.ErrPersistence):
		code, status = CodePersistenceFailure, http.StatusInternalServerError
	}

	c.JSON(status, Response{Code: code, Message: err.Error()})
}
