package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servisthird/coreledger/internal/seed"
	"github.com/servisthird/coreledger/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(store.NewMemoryGateway(), seed.DemoSource{}, logger)
	return NewRouter(st, logger)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (int, Response) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w.Code, resp
}

func TestGetAccounts(t *testing.T) {
	r := newTestRouter(t)

	status, resp := doJSON(t, r, http.MethodGet, "/api/v1/users/user001/accounts", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, CodeSuccess, resp.Code)

	accounts, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, accounts, 3)
}

func TestPostTransfer(t *testing.T) {
	r := newTestRouter(t)

	body := `{"from_account_id":"acc-chk-001","to_account_id":"acc-sav-001","amount":"250.00","description":"Rent"}`
	status, resp := doJSON(t, r, http.MethodPost, "/api/v1/users/user001/transfers", body)
	assert.Equal(t, http.StatusOK, status)
	require.Equal(t, CodeSuccess, resp.Code, resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["reference"])

	// Both legs landed in the log on top of the seeded history.
	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/users/user001/transactions", "")
	txns, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, txns, len(seed.Demo().Transactions)+2)
}

func TestPostTransfer_BusinessErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "insufficient funds",
			body:     `{"from_account_id":"acc-chk-001","to_account_id":"acc-sav-001","amount":"999999.00","description":"Too much"}`,
			wantCode: CodeInsufficientFunds,
		},
		{
			name:     "same account",
			body:     `{"from_account_id":"acc-chk-001","to_account_id":"acc-chk-001","amount":"10.00","description":"Loop"}`,
			wantCode: CodeSameAccount,
		},
		{
			name:     "unknown account",
			body:     `{"from_account_id":"acc-nope","to_account_id":"acc-sav-001","amount":"10.00","description":"Ghost"}`,
			wantCode: CodeAccountNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)
			status, resp := doJSON(t, r, http.MethodPost, "/api/v1/users/user001/transfers", tt.body)
			assert.Equal(t, http.StatusOK, status, "business failures keep HTTP 200")
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestPostTransfer_BadRequest(t *testing.T) {
	r := newTestRouter(t)

	status, resp := doJSON(t, r, http.MethodPost, "/api/v1/users/user001/transfers", `{"amount":"10.00"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, CodeParamError, resp.Code)
}

func TestCardEndpoints(t *testing.T) {
	r := newTestRouter(t)

	status, resp := doJSON(t, r, http.MethodPost, "/api/v1/users/user001/cards/card-debit-001/freeze", "")
	assert.Equal(t, http.StatusOK, status)
	require.Equal(t, CodeSuccess, resp.Code)

	card, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "frozen", card["status"])

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/users/user001/cards/card-debit-001/report-lost", "")
	require.Equal(t, CodeSuccess, resp.Code)

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/users/user001/cards/card-debit-001/unfreeze", "")
	assert.Equal(t, CodeCardState, resp.Code)

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/users/user001/cards/card-nope/freeze", "")
	assert.Equal(t, CodeCardNotFound, resp.Code)
}

func TestGetAccountNumber(t *testing.T) {
	r := newTestRouter(t)

	status, resp := doJSON(t, r, http.MethodGet, "/api/v1/account-numbers/new?type=checking&owner=user042&sequence=1", "")
	assert.Equal(t, http.StatusOK, status)
	require.Equal(t, CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1001-042-0001-6", data["account_number"])
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
