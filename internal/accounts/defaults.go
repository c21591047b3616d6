package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/model"
)

// SampleAccounts returns the demo portfolio loaded by "orgai init --sample". The
// accounts carry no IDs or timestamps; Service.Create assigns them.
func SampleAccounts() []model.Account {
	return []model.Account{
		sample("Bank of America", "1500.00", model.AccountTypePersonal, model.CategoryChecking),
		sample("BOFA Savings", "3200.00", model.AccountTypePersonal, model.CategorySavings),
		sample("CapitalOne Savor", "-3258.74", model.AccountTypePersonal, model.CategoryCreditCard),
		sample("Business Checking", "5000.00", model.AccountTypeBusiness, model.CategoryChecking),
		sample("Business Savings", "10000.00", model.AccountTypeBusiness, model.CategorySavings),
		sample("Business Credit Card", "-2500.00", model.AccountTypeBusiness, model.CategoryCreditCard),
		sample("Investment Property", "250000.00", model.AccountTypePersonal, model.CategoryRealEstate),
		sample("Vehicle", "35000.00", model.AccountTypePersonal, model.CategoryVehicle),
		sample("Mortgage", "-200000.00", model.AccountTypePersonal, model.CategoryMortgage),
		sample("Car Loan", "-25000.00", model.AccountTypePersonal, model.CategoryAutoLoan),
	}
}

func sample(name, balance string, t model.AccountType, c model.Category) model.Account {
	return model.Account{
		Name:     name,
		Balance:  decimal.RequireFromString(balance),
		Type:     t,
		Category: c,
		Icon:     c.DefaultIcon(),
	}
}
