// Package transactions reduces manually recorded transactions into running figures.
// Transactions stand alone; they never move an account balance.
package transactions

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/currency"
	"github.com/orgai-dev/orgai/internal/model"
)

var (
	ErrMissingTitle  = errors.New("title is required")
	ErrInvalidAmount = errors.New("amount must be a non-negative number")
	ErrUnknownType   = errors.New("unknown transaction type")
)

// Input is a transaction as entered by the user.
type Input struct {
	Title    string
	Subtitle string
	Amount   string
	Type     string
	Icon     string
	Date     time.Time // zero means now
}

// New validates in and returns a transaction with a fresh id.
func New(in Input, now time.Time) (model.Transaction, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Transaction{}, ErrMissingTitle
	}

	amount, err := currency.Parse(in.Amount)
	if err != nil || amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrInvalidAmount, in.Amount)
	}

	kind := model.TransactionType(strings.ToLower(strings.TrimSpace(in.Type)))
	if !kind.Valid() {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrUnknownType, in.Type)
	}

	t := model.Transaction{
		ID:       uuid.NewString(),
		Title:    title,
		Subtitle: strings.TrimSpace(in.Subtitle),
		Amount:   amount,
		Type:     kind,
		Icon:     strings.TrimSpace(in.Icon),
		Date:     in.Date,
	}
	if t.Icon == "" {
		t.Icon = kind.DefaultIcon()
	}
	if t.Date.IsZero() {
		t.Date = now
	}
	t.Date = t.Date.UTC()
	return t, nil
}

// PortfolioValue adds income and subtracts expenses. Transfers do not count.
func PortfolioValue(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case model.TransactionIncome:
			total = total.Add(t.Amount)
		case model.TransactionExpense:
			total = total.Sub(t.Amount)
		}
	}
	return total
}

// Income sums income transactions.
func Income(txns []model.Transaction) decimal.Decimal {
	return sumOf(txns, model.TransactionIncome)
}

// Expenses sums expense transactions.
func Expenses(txns []model.Transaction) decimal.Decimal {
	return sumOf(txns, model.TransactionExpense)
}

// Net is Income - Expenses.
func Net(txns []model.Transaction) decimal.Decimal {
	return Income(txns).Sub(Expenses(txns))
}

func sumOf(txns []model.Transaction, kind model.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == kind {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// DailyChange is the PortfolioValue of the transactions dated on day's calendar date,
// compared in day's location.
func DailyChange(txns []model.Transaction, day time.Time) decimal.Decimal {
	y, m, d := day.Date()
	var same []model.Transaction
	for _, t := range txns {
		ty, tm, td := t.Date.In(day.Location()).Date()
		if ty == y && tm == m && td == d {
			same = append(same, t)
		}
	}
	return PortfolioValue(same)
}

// Kind selects which transactions a list shows.
type Kind string

const (
	KindAll     Kind = "all"
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ParseKind reads a filter name case-insensitively. Anything unrecognised shows all.
func ParseKind(s string) Kind {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindIncome, KindExpense:
		return k
	default:
		return KindAll
	}
}

// Filter returns the transactions matching kind, preserving order.
func Filter(txns []model.Transaction, kind Kind) []model.Transaction {
	if kind != KindIncome && kind != KindExpense {
		return txns
	}
	var out []model.Transaction
	for _, t := range txns {
		if string(t.Type) == string(kind) {
			out = append(out, t)
		}
	}
	return out
}
