package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/storage"
	"github.com/orgai-dev/orgai/internal/transactions"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto status codes: validation 400, name or cash
// conflicts 409, unknown ids 404, anything else 500.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var verr *accounts.ValidationError
	switch {
	case errors.As(err, &verr):
		status := http.StatusBadRequest
		if errors.Is(err, accounts.ErrDuplicateName) || errors.Is(err, accounts.ErrCashAccountExists) {
			status = http.StatusConflict
		}
		writeJSON(w, status, errorResponse{Error: verr.Error(), Field: verr.Field})
	case errors.Is(err, transactions.ErrMissingTitle),
		errors.Is(err, transactions.ErrInvalidAmount),
		errors.Is(err, transactions.ErrUnknownType):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// amount accepts a JSON number or string so clients can send 1500.25 or "$1,500.25".
type amount string

func (a *amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*a = amount(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = amount(n.String())
	return nil
}
