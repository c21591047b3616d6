package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/currency"
	"github.com/orgai-dev/orgai/internal/model"
	"github.com/orgai-dev/orgai/internal/networth"
)

type accountRequest struct {
	Name        string `json:"name"`
	Balance     amount `json:"balance"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	CreditLimit amount `json:"credit_limit"`
}

func (r accountRequest) input() accounts.AccountInput {
	return accounts.AccountInput{
		Name:        r.Name,
		Balance:     string(r.Balance),
		Type:        r.Type,
		Category:    r.Category,
		Icon:        r.Icon,
		CreditLimit: string(r.CreditLimit),
	}
}

type accountResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	CategoryName    string    `json:"category_name"`
	Liability       bool      `json:"liability"`
	Icon            string    `json:"icon"`
	Balance         string    `json:"balance"`
	BalanceDisplay  string    `json:"balance_display"`
	CreditLimit     string    `json:"credit_limit,omitempty"`
	AvailableCredit string    `json:"available_credit,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toAccountResponse(a model.Account) accountResponse {
	c := a.EffectiveCategory()
	resp := accountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Type:           string(a.Type),
		Category:       string(c),
		CategoryName:   c.DisplayName(),
		Liability:      c.IsLiability(),
		Icon:           a.Icon,
		Balance:        a.Balance.StringFixed(2),
		BalanceDisplay: currency.Format(a.Balance),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if c == model.CategoryCreditCard && !a.CreditLimit.IsZero() {
		resp.CreditLimit = a.CreditLimit.StringFixed(2)
		resp.AvailableCredit = networth.AvailableCredit(a).StringFixed(2)
	}
	return resp
}

func ListAccounts(svc AccountService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accts, err := svc.List(r.Context())
		if err != nil {
			writeError(w, logger, err)
			return
		}
		out := make([]accountResponse, 0, len(accts))
		for _, a := range accts {
			out = append(out, toAccountResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func GetAccount(svc AccountService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "account_id"))
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, toAccountResponse(a))
	}
}

func CreateAccount(svc AccountService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		a, err := svc.Create(r.Context(), req.input())
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAccountResponse(a))
	}
}

func UpdateAccount(svc AccountService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		a, err := svc.Update(r.Context(), chi.URLParam(r, "account_id"), req.input())
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, toAccountResponse(a))
	}
}

func DeleteAccount(svc AccountService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "account_id")); err != nil {
			writeError(w, logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
