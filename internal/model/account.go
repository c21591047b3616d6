package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType says whose finances an account belongs to.
type AccountType string

const (
	AccountTypePersonal AccountType = "Personal"
	AccountTypeBusiness AccountType = "Business"
	AccountTypeCash     AccountType = "Cash"
)

// Account is one ledger the user tracks by hand.
type Account struct {
	ID          string
	Name        string
	Balance     decimal.Decimal // sign meaning depends on category
	Type        AccountType
	Category    Category // "" = unset, see EffectiveCategory
	Icon        string
	CreditLimit decimal.Decimal // credit cards only
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveCategory returns the account's category, defaulting to Checking.
func (a Account) EffectiveCategory() Category {
	if a.Category == "" {
		return CategoryChecking
	}
	return a.Category
}

// IsLiability reports whether the account's effective category is a debt category.
func (a Account) IsLiability() bool {
	return a.EffectiveCategory().IsLiability()
}

// AvailableCredit returns CreditLimit - |Balance| for credit cards and zero otherwise.
func (a Account) AvailableCredit() decimal.Decimal {
	if a.EffectiveCategory() != CategoryCreditCard {
		return decimal.Zero
	}
	return a.CreditLimit.Sub(a.Balance.Abs())
}

// AccountTypes returns every account type in display order.
func AccountTypes() []AccountType {
	return []AccountType{AccountTypePersonal, AccountTypeBusiness, AccountTypeCash}
}

// Icon returns the symbol name shown next to the type.
func (t AccountType) Icon() string {
	switch t {
	case AccountTypePersonal:
		return "person.circle.fill"
	case AccountTypeBusiness:
		return "building.2.fill"
	case AccountTypeCash:
		return "banknote.fill"
	default:
		return ""
	}
}

// Color returns the type's color token.
func (t AccountType) Color() ColorToken {
	switch t {
	case AccountTypePersonal:
		return ColorSuccess
	case AccountTypeBusiness:
		return ColorInfo
	case AccountTypeCash:
		return ColorPrimary
	default:
		return ""
	}
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypePersonal, AccountTypeBusiness, AccountTypeCash:
		return true
	}
	return false
}
