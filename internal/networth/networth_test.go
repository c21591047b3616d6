package networth

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgai-dev/orgai/internal/model"
)

func acct(name, balance string, t model.AccountType, c model.Category) model.Account {
	return model.Account{
		ID:       name,
		Name:     name,
		Balance:  decimal.RequireFromString(balance),
		Type:     t,
		Category: c,
	}
}

func sampleAccounts() []model.Account {
	return []model.Account{
		acct("Main Checking", "1500.00", model.AccountTypePersonal, model.CategoryChecking),
		acct("Emergency Savings", "3200.00", model.AccountTypePersonal, model.CategorySavings),
		acct("Visa", "-3258.74", model.AccountTypePersonal, model.CategoryCreditCard),
		acct("Business Checking", "5000.00", model.AccountTypeBusiness, model.CategoryChecking),
		acct("Business Savings", "10000.00", model.AccountTypeBusiness, model.CategorySavings),
		acct("Business Amex", "-2500.00", model.AccountTypeBusiness, model.CategoryCreditCard),
		acct("Home", "250000.00", model.AccountTypePersonal, model.CategoryRealEstate),
		acct("Car", "35000.00", model.AccountTypePersonal, model.CategoryVehicle),
		acct("Home Mortgage", "-200000.00", model.AccountTypePersonal, model.CategoryMortgage),
		acct("Car Loan", "-25000.00", model.AccountTypePersonal, model.CategoryAutoLoan),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func TestSampleTotals(t *testing.T) {
	accounts := sampleAccounts()

	assertDecimal(t, "304700.00", TotalAssets(accounts))
	assertDecimal(t, "230758.74", TotalLiabilities(accounts))
	assertDecimal(t, "73941.26", NetWorth(accounts))
	assertDecimal(t, "1441.26", PersonalTotal(accounts))
	assertDecimal(t, "12500.00", BusinessTotal(accounts))
	assertDecimal(t, "0", CashTotal(accounts))
	assertDecimal(t, "285000.00", AssetHoldingsTotal(accounts))
	assertDecimal(t, "225000.00", LiabilityHoldingsTotal(accounts))
}

func TestNetWorthIdentity(t *testing.T) {
	accounts := sampleAccounts()
	assert.True(t, NetWorth(accounts).Equal(TotalAssets(accounts).Sub(TotalLiabilities(accounts))))
	assert.True(t, NetWorth(accounts).Equal(NetWorthBySign(accounts)))
}

func TestEmpty(t *testing.T) {
	for name, got := range map[string]decimal.Decimal{
		"assets":      TotalAssets(nil),
		"liabilities": TotalLiabilities(nil),
		"net worth":   NetWorth(nil),
		"personal":    PersonalTotal(nil),
		"business":    BusinessTotal(nil),
		"cash":        CashTotal(nil),
	} {
		assert.True(t, got.IsZero(), name)
	}

	s := Summarize(nil)
	assert.Zero(t, s.AccountCount)
	assert.Empty(t, s.Breakdown)
	assert.True(t, s.NetWorth.IsZero())
}

func TestOverdraftCountsAsLiability(t *testing.T) {
	accounts := []model.Account{
		acct("Checking", "-100", model.AccountTypePersonal, model.CategoryChecking),
	}

	assertDecimal(t, "0", TotalAssets(accounts))
	assertDecimal(t, "100", TotalLiabilities(accounts))
	assertDecimal(t, "-100", NetWorth(accounts))
	assert.False(t, IsAssetContribution(accounts[0]))
	assert.True(t, IsLiabilityContribution(accounts[0]))
}

func TestUnsetCategoryIsChecking(t *testing.T) {
	accounts := []model.Account{
		acct("Legacy", "250", model.AccountTypePersonal, ""),
	}

	assertDecimal(t, "250", TotalAssets(accounts))
	assertDecimal(t, "250", PersonalTotal(accounts))
	assertDecimal(t, "250", CategoryTotal(model.CategoryChecking, model.AccountTypePersonal, accounts))
}

func TestPositiveLiabilityReducesLiabilities(t *testing.T) {
	accounts := []model.Account{
		acct("Visa", "200", model.AccountTypePersonal, model.CategoryCreditCard),
	}

	assertDecimal(t, "0", TotalAssets(accounts))
	// not floored: a credit balance drives liabilities below zero
	assertDecimal(t, "-200", TotalLiabilities(accounts))
	assertDecimal(t, "200", NetWorth(accounts))
	assert.True(t, IsLiabilityContribution(accounts[0]))
}

func TestNetWorthDoesNotUseAbsoluteLiabilities(t *testing.T) {
	accounts := []model.Account{
		acct("Visa", "200", model.AccountTypePersonal, model.CategoryCreditCard),
	}

	absVariant := TotalAssets(accounts).Sub(TotalLiabilities(accounts).Abs())
	assertDecimal(t, "-200", absVariant)
	assert.False(t, NetWorth(accounts).Equal(absVariant))
	assertDecimal(t, "200", NetWorthBySign(accounts))
}

func TestLiabilityContribution(t *testing.T) {
	tests := []struct {
		name    string
		account model.Account
		want    string
	}{
		{"negative mortgage", acct("m", "-1000", model.AccountTypePersonal, model.CategoryMortgage), "1000"},
		{"positive mortgage", acct("m", "50", model.AccountTypePersonal, model.CategoryMortgage), "-50"},
		{"overdrawn savings", acct("s", "-20", model.AccountTypePersonal, model.CategorySavings), "20"},
		{"positive savings", acct("s", "20", model.AccountTypePersonal, model.CategorySavings), "0"},
		{"zero card", acct("c", "0", model.AccountTypePersonal, model.CategoryCreditCard), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, LiabilityContribution(tt.account))
		})
	}
}

func TestCreditCardCategoryNets(t *testing.T) {
	accounts := []model.Account{
		acct("Refunded", "200", model.AccountTypePersonal, model.CategoryCreditCard),
		acct("Visa", "-500", model.AccountTypePersonal, model.CategoryCreditCard),
		acct("Biz Visa", "-999", model.AccountTypeBusiness, model.CategoryCreditCard),
	}

	members := AccountsForCategory(model.CategoryCreditCard, model.AccountTypePersonal, accounts)
	assert.Len(t, members, 2)
	assertDecimal(t, "-300", CategoryTotal(model.CategoryCreditCard, model.AccountTypePersonal, accounts))
	// personal total subtracts the magnitude of the netted card balance
	assertDecimal(t, "-300", PersonalTotal(accounts))
}

func TestLiabilityCategoryKeepsNegativeMembers(t *testing.T) {
	accounts := []model.Account{
		acct("Paid off", "10", model.AccountTypePersonal, model.CategoryAutoLoan),
		acct("Car Loan", "-4000", model.AccountTypePersonal, model.CategoryAutoLoan),
	}

	members := AccountsForCategory(model.CategoryAutoLoan, model.AccountTypePersonal, accounts)
	require.Len(t, members, 1)
	assert.Equal(t, "Car Loan", members[0].Name)
	assertDecimal(t, "4000", CategoryTotal(model.CategoryAutoLoan, model.AccountTypePersonal, accounts))
}

func TestAssetCategoryKeepsAllMembers(t *testing.T) {
	accounts := []model.Account{
		acct("Good", "300", model.AccountTypePersonal, model.CategorySavings),
		acct("Overdrawn", "-50", model.AccountTypePersonal, model.CategorySavings),
	}

	assert.Len(t, AccountsForCategory(model.CategorySavings, model.AccountTypePersonal, accounts), 2)
	assertDecimal(t, "300", CategoryTotal(model.CategorySavings, model.AccountTypePersonal, accounts))
}

func TestHoldingsSplitBySign(t *testing.T) {
	accounts := []model.Account{
		acct("Boat", "8000", model.AccountTypePersonal, model.CategoryOtherAssets),
		acct("Underwater", "-300", model.AccountTypePersonal, model.CategoryVehicle),
		acct("Overpaid", "40", model.AccountTypePersonal, model.CategoryLendingLoan),
		acct("Checking", "900", model.AccountTypePersonal, model.CategoryChecking),
		acct("Wallet", "60", model.AccountTypeCash, model.CategoryCashInHand),
	}

	assets := AssetHoldings(model.AccountTypePersonal, accounts)
	require.Len(t, assets, 2)
	assert.Equal(t, "Boat", assets[0].Name)
	assert.Equal(t, "Overpaid", assets[1].Name)

	liabilities := LiabilityHoldings(model.AccountTypePersonal, accounts)
	require.Len(t, liabilities, 1)
	assert.Equal(t, "Underwater", liabilities[0].Name)

	// cash-type accounts are not holdings of either section
	assertDecimal(t, "8040", AssetHoldingsTotal(accounts))
	assertDecimal(t, "300", LiabilityHoldingsTotal(accounts))
	assertDecimal(t, "60", CashTotal(accounts))
}

func TestAvailableCredit(t *testing.T) {
	card := acct("Visa", "-1200", model.AccountTypePersonal, model.CategoryCreditCard)
	card.CreditLimit = decimal.RequireFromString("5000")
	assertDecimal(t, "3800", AvailableCredit(card))

	checking := acct("Checking", "100", model.AccountTypePersonal, model.CategoryChecking)
	checking.CreditLimit = decimal.RequireFromString("5000")
	assertDecimal(t, "0", AvailableCredit(checking))
}

func TestOrderIndependence(t *testing.T) {
	accounts := sampleAccounts()
	want := Summarize(accounts)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]model.Account(nil), accounts...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Summarize(shuffled)
		assert.True(t, want.TotalAssets.Equal(got.TotalAssets))
		assert.True(t, want.TotalLiabilities.Equal(got.TotalLiabilities))
		assert.True(t, want.NetWorth.Equal(got.NetWorth))
		assert.True(t, want.PersonalTotal.Equal(got.PersonalTotal))
		assert.True(t, want.BusinessTotal.Equal(got.BusinessTotal))
		require.Len(t, got.Breakdown, len(want.Breakdown))
		for j := range want.Breakdown {
			assert.Equal(t, want.Breakdown[j].Category, got.Breakdown[j].Category)
			assert.True(t, want.Breakdown[j].Total.Equal(got.Breakdown[j].Total))
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleAccounts())

	assert.Equal(t, 10, s.AccountCount)
	assertDecimal(t, "73941.26", s.NetWorth)

	type line struct {
		typ      model.AccountType
		category model.Category
		total    string
	}
	want := []line{
		{model.AccountTypePersonal, model.CategoryChecking, "1500"},
		{model.AccountTypePersonal, model.CategorySavings, "3200"},
		{model.AccountTypePersonal, model.CategoryCreditCard, "-3258.74"},
		{model.AccountTypePersonal, model.CategoryRealEstate, "250000"},
		{model.AccountTypePersonal, model.CategoryVehicle, "35000"},
		{model.AccountTypePersonal, model.CategoryMortgage, "200000"},
		{model.AccountTypePersonal, model.CategoryAutoLoan, "25000"},
		{model.AccountTypeBusiness, model.CategoryChecking, "5000"},
		{model.AccountTypeBusiness, model.CategorySavings, "10000"},
		{model.AccountTypeBusiness, model.CategoryCreditCard, "-2500"},
	}
	require.Len(t, s.Breakdown, len(want))
	for i, w := range want {
		got := s.Breakdown[i]
		assert.Equal(t, w.typ, got.Type, "line %d", i)
		assert.Equal(t, w.category, got.Category, "line %d", i)
		assert.Equal(t, 1, got.Count, "line %d", i)
		assertDecimal(t, w.total, got.Total, "line %d", i)
	}
}
