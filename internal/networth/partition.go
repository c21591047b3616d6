package networth

import (
	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/model"
)

// HoldingCategories are the non-banking categories split into the asset and liability
// sections by balance sign rather than by the category's liability flag.
var HoldingCategories = []model.Category{
	model.CategoryCashInHand,
	model.CategoryRealEstate,
	model.CategoryVehicle,
	model.CategoryOtherAssets,
	model.CategoryMortgage,
	model.CategoryAutoLoan,
	model.CategoryLendingLoan,
	model.CategoryOtherLoans,
}

func isHolding(c model.Category) bool {
	for _, h := range HoldingCategories {
		if h == c {
			return true
		}
	}
	return false
}

// AssetHoldings returns accounts of the given type holding a positive balance in a
// holding category. A loan paid past zero shows up here.
func AssetHoldings(accountType model.AccountType, accounts []model.Account) []model.Account {
	return holdings(accountType, accounts, decimal.Decimal.IsPositive)
}

// LiabilityHoldings returns accounts of the given type holding a negative balance in a
// holding category. An underwater asset shows up here.
func LiabilityHoldings(accountType model.AccountType, accounts []model.Account) []model.Account {
	return holdings(accountType, accounts, decimal.Decimal.IsNegative)
}

func holdings(accountType model.AccountType, accounts []model.Account, sign func(decimal.Decimal) bool) []model.Account {
	var result []model.Account
	for _, a := range accounts {
		if a.Type == accountType && sign(a.Balance) && isHolding(a.EffectiveCategory()) {
			result = append(result, a)
		}
	}
	return result
}

// AssetHoldingsTotal sums personal and business asset holdings.
func AssetHoldingsTotal(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, t := range []model.AccountType{model.AccountTypePersonal, model.AccountTypeBusiness} {
		for _, a := range AssetHoldings(t, accounts) {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// LiabilityHoldingsTotal sums the magnitudes of personal and business liability
// holdings. The result is never negative.
func LiabilityHoldingsTotal(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, t := range []model.AccountType{model.AccountTypePersonal, model.AccountTypeBusiness} {
		for _, a := range LiabilityHoldings(t, accounts) {
			total = total.Add(a.Balance.Abs())
		}
	}
	return total
}
