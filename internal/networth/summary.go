package networth

import (
	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/model"
)

// Summary carries every figure the account screens display for one snapshot.
type Summary struct {
	TotalAssets            decimal.Decimal
	TotalLiabilities       decimal.Decimal
	NetWorth               decimal.Decimal
	PersonalTotal          decimal.Decimal
	BusinessTotal          decimal.Decimal
	CashTotal              decimal.Decimal
	AssetHoldingsTotal     decimal.Decimal
	LiabilityHoldingsTotal decimal.Decimal
	AccountCount           int
	Breakdown              []CategoryLine
}

// CategoryLine is the CategoryTotal of one (type, category) pair that has members.
type CategoryLine struct {
	Type     model.AccountType
	Category model.Category
	Total    decimal.Decimal
	Count    int
}

// Summarize computes every total for the snapshot. Breakdown lines follow type order
// (Personal, Business, Cash) then category declaration order; pairs with no members
// are omitted.
func Summarize(accounts []model.Account) Summary {
	s := Summary{
		TotalAssets:            TotalAssets(accounts),
		TotalLiabilities:       TotalLiabilities(accounts),
		PersonalTotal:          PersonalTotal(accounts),
		BusinessTotal:          BusinessTotal(accounts),
		CashTotal:              CashTotal(accounts),
		AssetHoldingsTotal:     AssetHoldingsTotal(accounts),
		LiabilityHoldingsTotal: LiabilityHoldingsTotal(accounts),
		AccountCount:           len(accounts),
	}
	s.NetWorth = s.TotalAssets.Sub(s.TotalLiabilities)

	for _, t := range model.AccountTypes() {
		for _, c := range model.Categories() {
			members := AccountsForCategory(c, t, accounts)
			if len(members) == 0 {
				continue
			}
			s.Breakdown = append(s.Breakdown, CategoryLine{
				Type:     t,
				Category: c,
				Total:    CategoryTotal(c, t, accounts),
				Count:    len(members),
			})
		}
	}
	return s
}
