package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/accounts"
	"github.com/orgai-dev/orgai/internal/model"
)

// ChaseParser turns a Chase checking export into a single checking account whose
// balance is the running balance on the latest posting date. The account is named
// after the file.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColBalance = 5
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV. Exports list newest rows first, so on equal dates the
// earlier row wins.
func (p *ChaseParser) Parse(source string, r io.Reader) ([]accounts.AccountInput, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var (
		latest  time.Time
		balance decimal.Decimal
	)
	for i, rec := range records[1:] {
		date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[chaseColDate], err)
		}
		b, err := decimal.NewFromString(rec[chaseColBalance])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing balance %q: %w", i+2, rec[chaseColBalance], err)
		}
		if i == 0 || date.After(latest) {
			latest, balance = date, b
		}
	}

	return []accounts.AccountInput{{
		Name:     source,
		Balance:  balance.String(),
		Type:     string(model.AccountTypePersonal),
		Category: string(model.CategoryChecking),
	}}, nil
}
