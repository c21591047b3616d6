package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/storage"
)

type testServer struct {
	srv *httptest.Server
	svc *accounts.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "orgai.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := accounts.NewService(store, nil, logger)
	now := func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	srv := httptest.NewServer(NewRouter(svc, store, logger, now))
	t.Cleanup(srv.Close)
	return &testServer{srv: srv, svc: svc}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAccountLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/accounts",
		`{"name":"Everyday","balance":"$1,500.25","type":"personal","category":"checking"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[accountResponse](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "1500.25", created.Balance)
	assert.Equal(t, "$1,500.25", created.BalanceDisplay)
	assert.False(t, created.Liability)

	resp = ts.do(t, http.MethodGet, "/api/accounts/"+created.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Everyday", decode[accountResponse](t, resp).Name)

	resp = ts.do(t, http.MethodPut, "/api/accounts/"+created.ID,
		`{"name":"Everyday","balance":-20,"type":"personal","category":"checking"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "-20.00", decode[accountResponse](t, resp).Balance)

	resp = ts.do(t, http.MethodGet, "/api/accounts", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]accountResponse](t, resp), 1)

	resp = ts.do(t, http.MethodDelete, "/api/accounts/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.do(t, http.MethodGet, "/api/accounts/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreditCardResponse(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodPost, "/api/accounts",
		`{"name":"Savor","balance":"-250","type":"personal","category":"credit_card","credit_limit":1000}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	got := decode[accountResponse](t, resp)
	assert.True(t, got.Liability)
	assert.Equal(t, "1000.00", got.CreditLimit)
	assert.Equal(t, "750.00", got.AvailableCredit)
}

func TestAccountErrors(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodPost, "/api/accounts",
		`{"name":"Wallet","balance":"40","type":"cash"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		field  string
	}{
		{"malformed body", http.MethodPost, "/api/accounts", `{`, http.StatusBadRequest, ""},
		{"missing name", http.MethodPost, "/api/accounts", `{"balance":"1","type":"personal"}`, http.StatusBadRequest, "name"},
		{"bad balance", http.MethodPost, "/api/accounts", `{"name":"X","balance":"abc","type":"personal"}`, http.StatusBadRequest, "balance"},
		{"duplicate name", http.MethodPost, "/api/accounts", `{"name":"wallet","balance":"1","type":"cash","category":"cash_in_hand"}`, http.StatusConflict, ""},
		{"second cash account", http.MethodPost, "/api/accounts", `{"name":"Jar","balance":"1","type":"cash"}`, http.StatusConflict, ""},
		{"unknown id", http.MethodPut, "/api/accounts/nope", `{"name":"Y","balance":"1","type":"personal"}`, http.StatusNotFound, ""},
		{"delete unknown", http.MethodDelete, "/api/accounts/nope", "", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.field != "" {
				assert.Equal(t, tt.field, decode[errorResponse](t, resp).Field)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	for _, a := range accounts.SampleAccounts() {
		_, err := ts.svc.Create(ctx, accounts.InputFromAccount(a))
		require.NoError(t, err)
	}

	resp := ts.do(t, http.MethodGet, "/api/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[summaryResponse](t, resp)

	assert.Equal(t, 10, got.AccountCount)
	assert.Equal(t, "304700.00", got.TotalAssets.Amount)
	assert.Equal(t, "230758.74", got.TotalLiabilities.Amount)
	assert.Equal(t, "73941.26", got.NetWorth.Amount)
	assert.Equal(t, "$73,941.26", got.NetWorth.Display)
	assert.Equal(t, "$74k", got.NetWorth.Compact)
	assert.Equal(t, "1441.26", got.PersonalTotal.Amount)
	assert.Equal(t, "12500.00", got.BusinessTotal.Amount)
	assert.Len(t, got.Breakdown, 10)
}

func TestTransactions(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/transactions",
		`{"title":"Salary","amount":"3000","type":"income","date":"2026-03-01T09:00:00Z"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	salary := decode[transactionResponse](t, resp)
	assert.Equal(t, "3000.00", salary.Amount)

	resp = ts.do(t, http.MethodPost, "/api/transactions",
		`{"title":"Groceries","amount":120.5,"type":"expense"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	groceries := decode[transactionResponse](t, resp)
	assert.True(t, groceries.Date.Equal(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)))

	resp = ts.do(t, http.MethodGet, "/api/transactions?filter=expense", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[transactionListResponse](t, resp)
	require.Len(t, list.Transactions, 1)
	assert.Equal(t, "Groceries", list.Transactions[0].Title)
	assert.Equal(t, "3000.00", list.Income.Amount)
	assert.Equal(t, "120.50", list.Expenses.Amount)
	assert.Equal(t, "2879.50", list.PortfolioValue.Amount)

	resp = ts.do(t, http.MethodPost, "/api/transactions", `{"title":"","amount":"1","type":"income"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = ts.do(t, http.MethodPost, "/api/transactions", `{"title":"X","amount":"1","type":"refund"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = ts.do(t, http.MethodDelete, "/api/transactions/"+salary.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = ts.do(t, http.MethodDelete, "/api/transactions/"+salary.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
