// Package networth classifies account balances as asset or liability contributions and
// reduces account snapshots into totals. Every function is a pure reduction over its
// input; nothing here mutates an account.
package networth

import (
	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/model"
)

// IsAssetContribution reports whether the account adds to TotalAssets: a strictly
// positive balance in a non-liability category.
func IsAssetContribution(a model.Account) bool {
	return a.Balance.IsPositive() && !a.IsLiability()
}

// IsLiabilityContribution reports whether the account moves TotalLiabilities. Any
// negative balance does (overdrafts in asset categories included), and so does a
// positive balance in a liability category, which offsets the total.
func IsLiabilityContribution(a model.Account) bool {
	return !LiabilityContribution(a).IsZero()
}

// LiabilityContribution returns the signed amount the account adds to TotalLiabilities.
func LiabilityContribution(a model.Account) decimal.Decimal {
	switch {
	case a.Balance.IsNegative():
		return a.Balance.Abs()
	case a.Balance.IsPositive() && a.IsLiability():
		return a.Balance.Neg()
	default:
		return decimal.Zero
	}
}

// AvailableCredit returns the remaining credit on a card; zero for other categories.
func AvailableCredit(a model.Account) decimal.Decimal {
	return a.AvailableCredit()
}
