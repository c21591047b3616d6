package importer

import (
	"fmt"
	"io"

	"github.com/orgai-dev/orgai/internal/accounts"
)

// OrgaiParser reads files written by "orgai export". IDs and timestamps in the file are
// ignored; imported accounts are new.
type OrgaiParser struct{}

// Format returns the parser name.
func (p *OrgaiParser) Format() string { return "orgai" }

// Parse reads an orgai accounts CSV.
func (p *OrgaiParser) Parse(_ string, r io.Reader) ([]accounts.AccountInput, error) {
	accts, err := accounts.ReadAccounts(r)
	if err != nil {
		return nil, fmt.Errorf("reading orgai CSV: %w", err)
	}

	var inputs []accounts.AccountInput
	for _, a := range accts {
		inputs = append(inputs, accounts.InputFromAccount(a))
	}
	return inputs, nil
}
