// Package api serves accounts, transactions and the net-worth summary as JSON.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/model"
	"github.com/orgai-dev/orgai/internal/networth"
)

// AccountService is the account API's backend; *accounts.Service implements it.
type AccountService interface {
	List(ctx context.Context) ([]model.Account, error)
	Get(ctx context.Context, id string) (model.Account, error)
	Create(ctx context.Context, in accounts.AccountInput) (model.Account, error)
	Update(ctx context.Context, id string, in accounts.AccountInput) (model.Account, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (networth.Summary, error)
}

// TransactionStore is the transaction API's backend.
type TransactionStore interface {
	InsertTransaction(ctx context.Context, t model.Transaction) error
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// NewRouter wires every route. now stamps transactions posted without a date.
func NewRouter(svc AccountService, txns TransactionStore, logger *slog.Logger, now func() time.Time) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", GetSummary(svc, logger))

		r.Get("/accounts", ListAccounts(svc, logger))
		r.Post("/accounts", CreateAccount(svc, logger))
		r.Get("/accounts/{account_id}", GetAccount(svc, logger))
		r.Put("/accounts/{account_id}", UpdateAccount(svc, logger))
		r.Delete("/accounts/{account_id}", DeleteAccount(svc, logger))

		r.Get("/transactions", ListTransactions(txns, logger))
		r.Post("/transactions", CreateTransaction(txns, logger, now))
		r.Delete("/transactions/{transaction_id}", DeleteTransaction(txns, logger))
	})
	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", chimw.GetReqID(r.Context()))
		})
	}
}
