package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/orgai-dev/orgai/internal/currency"
	"github.com/orgai-dev/orgai/internal/model"
	"github.com/orgai-dev/orgai/internal/transactions"
)

type transactionRequest struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Amount   amount    `json:"amount"`
	Type     string    `json:"type"`
	Icon     string    `json:"icon"`
	Date     time.Time `json:"date"`
}

type transactionResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Amount   string    `json:"amount"`
	Display  string    `json:"display"`
	Type     string    `json:"type"`
	Icon     string    `json:"icon"`
	Date     time.Time `json:"date"`
}

type transactionListResponse struct {
	Transactions   []transactionResponse `json:"transactions"`
	Income         money                 `json:"income"`
	Expenses       money                 `json:"expenses"`
	PortfolioValue money                 `json:"portfolio_value"`
	TodayChange    money                 `json:"today_change"`
}

func toTransactionResponse(t model.Transaction) transactionResponse {
	return transactionResponse{
		ID:       t.ID,
		Title:    t.Title,
		Subtitle: t.Subtitle,
		Amount:   t.Amount.StringFixed(2),
		Display:  currency.Format(t.Amount),
		Type:     string(t.Type),
		Icon:     t.Icon,
		Date:     t.Date,
	}
}

// ListTransactions returns transactions filtered by ?filter=all|income|expense, plus
// totals over the unfiltered list.
func ListTransactions(store TransactionStore, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txns, err := store.ListTransactions(r.Context())
		if err != nil {
			writeError(w, logger, err)
			return
		}

		shown := transactions.Filter(txns, transactions.ParseKind(r.URL.Query().Get("filter")))
		resp := transactionListResponse{
			Transactions:   make([]transactionResponse, 0, len(shown)),
			Income:         newMoney(transactions.Income(txns)),
			Expenses:       newMoney(transactions.Expenses(txns)),
			PortfolioValue: newMoney(transactions.PortfolioValue(txns)),
			TodayChange:    newMoney(transactions.DailyChange(txns, time.Now())),
		}
		for _, t := range shown {
			resp.Transactions = append(resp.Transactions, toTransactionResponse(t))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func CreateTransaction(store TransactionStore, logger *slog.Logger, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		t, err := transactions.New(transactions.Input{
			Title:    req.Title,
			Subtitle: req.Subtitle,
			Amount:   string(req.Amount),
			Type:     req.Type,
			Icon:     req.Icon,
			Date:     req.Date,
		}, now())
		if err != nil {
			writeError(w, logger, err)
			return
		}
		if err := store.InsertTransaction(r.Context(), t); err != nil {
			writeError(w, logger, err)
			return
		}
		logger.Info("transaction created", "id", t.ID, "type", t.Type)
		writeJSON(w, http.StatusCreated, toTransactionResponse(t))
	}
}

func DeleteTransaction(store TransactionStore, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteTransaction(r.Context(), chi.URLParam(r, "transaction_id")); err != nil {
			writeError(w, logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
