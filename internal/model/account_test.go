package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategoryIsLiability(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryChecking, false},
		{CategorySavings, false},
		{CategoryCreditCard, true},
		{CategoryCashInHand, false},
		{CategoryRealEstate, false},
		{CategoryVehicle, false},
		{CategoryOtherAssets, false},
		{CategoryMortgage, true},
		{CategoryAutoLoan, true},
		{CategoryLendingLoan, true},
		{CategoryOtherLoans, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.IsLiability(), "IsLiability(%q)", tt.category)
	}
}

func TestCategoryTablesComplete(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "%q should be valid", c)
		assert.NotEmpty(t, c.DisplayName(), "%q missing display name", c)
		assert.NotEmpty(t, c.DefaultIcon(), "%q missing icon", c)
		assert.NotEmpty(t, c.Color(), "%q missing color", c)
	}
	assert.Len(t, Categories(), 11)
	assert.False(t, Category("").Valid())
}

func TestEffectiveCategory(t *testing.T) {
	assert.Equal(t, CategoryChecking, Account{}.EffectiveCategory())
	assert.Equal(t, CategoryMortgage, Account{Category: CategoryMortgage}.EffectiveCategory())
	assert.False(t, Account{}.IsLiability())
}

func TestAvailableCredit(t *testing.T) {
	card := Account{
		Category:    CategoryCreditCard,
		CreditLimit: decimal.NewFromInt(5000),
		Balance:     decimal.NewFromInt(-1200),
	}
	assert.Equal(t, "3800.00", card.AvailableCredit().StringFixed(2))

	// Positive card balances are treated by magnitude as well.
	card.Balance = decimal.NewFromInt(300)
	assert.Equal(t, "4700.00", card.AvailableCredit().StringFixed(2))

	checking := Account{
		Category:    CategoryChecking,
		CreditLimit: decimal.NewFromInt(5000),
		Balance:     decimal.NewFromInt(-1200),
	}
	assert.True(t, checking.AvailableCredit().IsZero())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"Credit Card", CategoryCreditCard, true},
		{"creditcard", CategoryCreditCard, true},
		{"credit_card", CategoryCreditCard, true},
		{"  real-estate ", CategoryRealEstate, true},
		{"CASH IN HAND", CategoryCashInHand, true},
		{"brokerage", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseCategory(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseCategory(%q)", tt.input)
	}
}

func TestParseAccountType(t *testing.T) {
	got, ok := ParseAccountType("business")
	assert.True(t, ok)
	assert.Equal(t, AccountTypeBusiness, got)

	_, ok = ParseAccountType("joint")
	assert.False(t, ok)

	for _, at := range AccountTypes() {
		assert.True(t, at.Valid())
		assert.NotEmpty(t, at.Icon())
		assert.NotEmpty(t, at.Color())
	}
}
