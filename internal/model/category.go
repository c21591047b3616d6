package model

import "strings"

// Category is the kind of ledger an account represents.
type Category string

const (
	// Banking
	CategoryChecking   Category = "Checking"
	CategorySavings    Category = "Savings"
	CategoryCreditCard Category = "Credit Card"

	// Assets
	CategoryCashInHand  Category = "Cash in Hand"
	CategoryRealEstate  Category = "Real Estate"
	CategoryVehicle     Category = "Vehicle"
	CategoryOtherAssets Category = "Other Assets"

	// Liabilities
	CategoryMortgage    Category = "Mortgage"
	CategoryAutoLoan    Category = "Auto Loan"
	CategoryLendingLoan Category = "Lending Loan"
	CategoryOtherLoans  Category = "Other Loans"
)

// ColorToken names a palette entry; rendering layers map it to a concrete color.
type ColorToken string

const (
	ColorPrimary   ColorToken = "primary"
	ColorSecondary ColorToken = "secondary"
	ColorSuccess   ColorToken = "success"
	ColorError     ColorToken = "error"
	ColorWarning   ColorToken = "warning"
	ColorInfo      ColorToken = "info"
)

type categoryInfo struct {
	liability   bool
	displayName string
	icon        string
	color       ColorToken
}

var categoryTable = map[Category]categoryInfo{
	CategoryChecking:    {false, "Checking Accounts", "creditcard", ColorSuccess},
	CategorySavings:     {false, "Savings Accounts", "building.columns", ColorInfo},
	CategoryCreditCard:  {true, "Credit Cards", "creditcard.and.123", ColorError},
	CategoryCashInHand:  {false, "Cash Accounts", "banknote", ColorSuccess},
	CategoryRealEstate:  {false, "Real Estate", "building.2", ColorPrimary},
	CategoryVehicle:     {false, "Vehicles", "car", ColorInfo},
	CategoryOtherAssets: {false, "Other Assets", "archivebox", ColorSecondary},
	CategoryMortgage:    {true, "Mortgages", "house", ColorError},
	CategoryAutoLoan:    {true, "Auto Loans", "car", ColorWarning},
	CategoryLendingLoan: {true, "Lending Loans", "hand.wave", ColorInfo},
	CategoryOtherLoans:  {true, "Other Loans", "doc.text", ColorSecondary},
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryChecking,
		CategorySavings,
		CategoryCreditCard,
		CategoryCashInHand,
		CategoryRealEstate,
		CategoryVehicle,
		CategoryOtherAssets,
		CategoryMortgage,
		CategoryAutoLoan,
		CategoryLendingLoan,
		CategoryOtherLoans,
	}
}

// IsLiability reports whether the category is nominally debt.
func (c Category) IsLiability() bool {
	return categoryTable[c].liability
}

// DisplayName returns the plural section heading for the category.
func (c Category) DisplayName() string {
	return categoryTable[c].displayName
}

// DefaultIcon returns the icon assigned to new accounts of this category.
func (c Category) DefaultIcon() string {
	return categoryTable[c].icon
}

// Color returns the category's color token.
func (c Category) Color() ColorToken {
	return categoryTable[c].color
}

// Valid reports whether c is a known category. The empty category is not valid.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// ParseCategory accepts a raw value ("Credit Card") or a compact form
// ("creditcard", "credit_card", "credit-card"), case-insensitively.
func ParseCategory(s string) (Category, bool) {
	key := compactKey(s)
	for _, c := range Categories() {
		if compactKey(string(c)) == key {
			return c, true
		}
	}
	return "", false
}

// ParseAccountType accepts "personal", "Business", etc.
func ParseAccountType(s string) (AccountType, bool) {
	key := compactKey(s)
	for _, t := range AccountTypes() {
		if compactKey(string(t)) == key {
			return t, true
		}
	}
	return "", false
}

func compactKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
