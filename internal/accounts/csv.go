package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/model"
)

const (
	numFields      = 9
	colID          = 0
	colName        = 1
	colType        = 2
	colCategory    = 3
	colBalance     = 4
	colCreditLimit = 5
	colIcon        = 6
	colCreatedAt   = 7
	colUpdatedAt   = 8
)

// Header is the first row of an accounts CSV file.
var Header = []string{"id", "name", "type", "category", "balance", "credit_limit", "icon", "created_at", "updated_at"}

// ReadAccounts reads an accounts CSV file written by WriteAccounts.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes accounts with a header row.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row. Balances keep their exact decimal
// representation.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colID] = acct.ID
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colCategory] = string(acct.Category)
	row[colBalance] = acct.Balance.String()
	if !acct.CreditLimit.IsZero() {
		row[colCreditLimit] = acct.CreditLimit.String()
	}
	row[colIcon] = acct.Icon
	row[colCreatedAt] = formatTime(acct.CreatedAt)
	row[colUpdatedAt] = formatTime(acct.UpdatedAt)
	return row
}

// UnmarshalAccount converts a CSV row to an Account. Type and category are checked for
// shape only; Service.Create does full validation on import.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	var limit decimal.Decimal
	if record[colCreditLimit] != "" {
		limit, err = decimal.NewFromString(record[colCreditLimit])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing credit_limit %q: %w", record[colCreditLimit], err)
		}
	}

	accountType, ok := model.ParseAccountType(record[colType])
	if !ok {
		return model.Account{}, fmt.Errorf("%w: %q", ErrUnknownType, record[colType])
	}

	var category model.Category
	if record[colCategory] != "" {
		category, ok = model.ParseCategory(record[colCategory])
		if !ok {
			return model.Account{}, fmt.Errorf("%w: %q", ErrUnknownCategory, record[colCategory])
		}
	}

	created, err := parseTime(record[colCreatedAt])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing created_at: %w", err)
	}
	updated, err := parseTime(record[colUpdatedAt])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing updated_at: %w", err)
	}

	return model.Account{
		ID:          record[colID],
		Name:        record[colName],
		Balance:     balance,
		Type:        accountType,
		Category:    category,
		Icon:        record[colIcon],
		CreditLimit: limit,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
