package accounts

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/orgai-dev/orgai/internal/currency"
	"github.com/orgai-dev/orgai/internal/model"
)

// MaxNameLength caps account names, counted in characters.
const MaxNameLength = 50

var (
	ErrMissingField      = errors.New("required field is empty")
	ErrInvalidBalance    = errors.New("invalid amount")
	ErrDuplicateName     = errors.New("an account with this name already exists")
	ErrCashAccountExists = errors.New("a cash account already exists")
	ErrUnknownType       = errors.New("unknown account type")
	ErrUnknownCategory   = errors.New("unknown category")
)

// ValidationError rejects an AccountInput before it reaches the store.
type ValidationError struct {
	Field  string
	Err    error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Detail)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AccountInput is the raw form of an account as typed by a user or read from an import.
// Amounts are strings so the service owns parsing.
type AccountInput struct {
	Name        string
	Balance     string
	Type        string
	Category    string
	Icon        string
	CreditLimit string
}

// InputFromAccount turns a stored account back into input form.
func InputFromAccount(a model.Account) AccountInput {
	in := AccountInput{
		Name:     a.Name,
		Balance:  a.Balance.String(),
		Type:     string(a.Type),
		Category: string(a.Category),
		Icon:     a.Icon,
	}
	if !a.CreditLimit.IsZero() {
		in.CreditLimit = a.CreditLimit.String()
	}
	return in
}

// NormalizeName strips NUL bytes and surrounding whitespace and caps the length.
func NormalizeName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\x00", ""))
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	return name
}

// IsNameUnique reports whether no other account of the same type carries name, ignoring
// case. The account with excludingID is skipped so an edit can keep its own name.
func IsNameUnique(name string, accountType model.AccountType, accounts []model.Account, excludingID string) bool {
	fold := cases.Fold()
	want := fold.String(NormalizeName(name))
	for _, a := range accounts {
		if a.ID == excludingID || a.Type != accountType {
			continue
		}
		if fold.String(a.Name) == want {
			return false
		}
	}
	return true
}

// parsed is an AccountInput after field-level checks.
type parsed struct {
	name        string
	balance     decimal.Decimal
	accountType model.AccountType
	category    model.Category
	icon        string
	creditLimit decimal.Decimal
}

// parseInput performs every check that does not need the existing accounts.
func parseInput(in AccountInput) (parsed, error) {
	var p parsed

	p.name = NormalizeName(in.Name)
	if p.name == "" {
		return p, &ValidationError{Field: "name", Err: ErrMissingField}
	}

	if strings.TrimSpace(in.Type) == "" {
		return p, &ValidationError{Field: "type", Err: ErrMissingField}
	}
	t, ok := model.ParseAccountType(in.Type)
	if !ok {
		return p, &ValidationError{Field: "type", Err: ErrUnknownType, Detail: in.Type}
	}
	p.accountType = t

	switch {
	case strings.TrimSpace(in.Category) == "" && t == model.AccountTypeCash:
		p.category = model.CategoryCashInHand
	case strings.TrimSpace(in.Category) == "":
		p.category = model.CategoryChecking
	default:
		c, ok := model.ParseCategory(in.Category)
		if !ok {
			return p, &ValidationError{Field: "category", Err: ErrUnknownCategory, Detail: in.Category}
		}
		p.category = c
	}

	balance, err := currency.Parse(in.Balance)
	switch {
	case errors.Is(err, currency.ErrEmpty):
		return p, &ValidationError{Field: "balance", Err: ErrMissingField}
	case err != nil:
		return p, &ValidationError{Field: "balance", Err: ErrInvalidBalance, Detail: in.Balance}
	}
	p.balance = balance

	if strings.TrimSpace(in.CreditLimit) != "" {
		limit, err := currency.Parse(in.CreditLimit)
		if err != nil || limit.IsNegative() {
			return p, &ValidationError{Field: "credit_limit", Err: ErrInvalidBalance, Detail: in.CreditLimit}
		}
		p.creditLimit = limit
	}

	p.icon = strings.TrimSpace(in.Icon)
	return p, nil
}

// checkConflicts applies the rules that depend on the other accounts: per-type name
// uniqueness and the single cash account. current is the account being edited, or nil
// on create.
func checkConflicts(p parsed, existing []model.Account, current *model.Account) error {
	excluding := ""
	if current != nil {
		excluding = current.ID
	}

	if !IsNameUnique(p.name, p.accountType, existing, excluding) {
		return &ValidationError{
			Field:  "name",
			Err:    ErrDuplicateName,
			Detail: fmt.Sprintf("%q in %s", p.name, p.accountType),
		}
	}

	becomingCash := p.accountType == model.AccountTypeCash &&
		(current == nil || current.Type != model.AccountTypeCash)
	if becomingCash {
		for _, a := range existing {
			if a.Type == model.AccountTypeCash && a.ID != excluding {
				return &ValidationError{Field: "type", Err: ErrCashAccountExists, Detail: a.Name}
			}
		}
	}
	return nil
}
