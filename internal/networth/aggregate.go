package networth

import (
	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/model"
)

// TotalAssets sums strictly positive balances in non-liability categories.
func TotalAssets(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if IsAssetContribution(a) {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// TotalLiabilities is |negative liability balances| + |negative asset balances| minus
// positive liability balances. The result is not floored and goes negative when
// credits on liability accounts exceed the debt.
func TotalLiabilities(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(LiabilityContribution(a))
	}
	return total
}

// NetWorth is TotalAssets - TotalLiabilities. This is the canonical formula.
func NetWorth(accounts []model.Account) decimal.Decimal {
	return TotalAssets(accounts).Sub(TotalLiabilities(accounts))
}

// NetWorthBySign sums every positive balance and subtracts every negative magnitude,
// ignoring categories. Expanding TotalLiabilities shows it always equals NetWorth; it is
// kept so tests can hold the two formulas together.
func NetWorthBySign(accounts []model.Account) decimal.Decimal {
	positive, negative := decimal.Zero, decimal.Zero
	for _, a := range accounts {
		switch {
		case a.Balance.IsPositive():
			positive = positive.Add(a.Balance)
		case a.Balance.IsNegative():
			negative = negative.Add(a.Balance.Abs())
		}
	}
	return positive.Sub(negative)
}

// TypeTotal is checking+savings balances (as-is) minus the magnitude of the netted
// credit card balance, restricted to one account type.
func TypeTotal(accountType model.AccountType, accounts []model.Account) decimal.Decimal {
	banking, cards := decimal.Zero, decimal.Zero
	for _, a := range accounts {
		if a.Type != accountType {
			continue
		}
		switch a.EffectiveCategory() {
		case model.CategoryChecking, model.CategorySavings:
			banking = banking.Add(a.Balance)
		case model.CategoryCreditCard:
			cards = cards.Add(a.Balance)
		}
	}
	return banking.Sub(cards.Abs())
}

// PersonalTotal is TypeTotal for personal accounts.
func PersonalTotal(accounts []model.Account) decimal.Decimal {
	return TypeTotal(model.AccountTypePersonal, accounts)
}

// BusinessTotal is TypeTotal for business accounts.
func BusinessTotal(accounts []model.Account) decimal.Decimal {
	return TypeTotal(model.AccountTypeBusiness, accounts)
}

// CashTotal sums every balance of Cash-type accounts.
func CashTotal(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a.Type == model.AccountTypeCash {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// AccountsForCategory filters by type and effective category. Credit cards come back
// whole; other liability categories keep only negative balances; asset categories keep
// every member.
func AccountsForCategory(category model.Category, accountType model.AccountType, accounts []model.Account) []model.Account {
	var result []model.Account
	for _, a := range accounts {
		if a.Type != accountType || a.EffectiveCategory() != category {
			continue
		}
		if category != model.CategoryCreditCard && category.IsLiability() && !a.Balance.IsNegative() {
			continue
		}
		result = append(result, a)
	}
	return result
}

// CategoryTotal reduces AccountsForCategory:
//   - credit cards: positive balances minus negative magnitudes (net, may be negative)
//   - other liability categories: sum of negative magnitudes
//   - asset categories: sum of positive balances
func CategoryTotal(category model.Category, accountType model.AccountType, accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range AccountsForCategory(category, accountType, accounts) {
		switch {
		case category == model.CategoryCreditCard:
			total = total.Add(a.Balance)
		case category.IsLiability():
			if a.Balance.IsNegative() {
				total = total.Add(a.Balance.Abs())
			}
		default:
			if a.Balance.IsPositive() {
				total = total.Add(a.Balance)
			}
		}
	}
	return total
}
