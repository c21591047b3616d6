package api

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/orgai-dev/orgai/internal/currency"
	"github.com/orgai-dev/orgai/internal/networth"
)

// money is an exact amount alongside its display forms.
type money struct {
	Amount  string `json:"amount"`
	Display string `json:"display"`
	Compact string `json:"compact"`
}

func newMoney(d decimal.Decimal) money {
	return money{
		Amount:  d.StringFixed(2),
		Display: currency.Format(d),
		Compact: currency.FormatCompact(d),
	}
}

type categoryLineResponse struct {
	Type         string `json:"type"`
	Category     string `json:"category"`
	CategoryName string `json:"category_name"`
	Count        int    `json:"count"`
	Total        money  `json:"total"`
}

type summaryResponse struct {
	AccountCount           int                    `json:"account_count"`
	TotalAssets            money                  `json:"total_assets"`
	TotalLiabilities       money                  `json:"total_liabilities"`
	NetWorth               money                  `json:"net_worth"`
	PersonalTotal          money                  `json:"personal_total"`
	BusinessTotal          money                  `json:"business_total"`
	CashTotal              money                  `json:"cash_total"`
	AssetHoldingsTotal     money                  `json:"asset_holdings_total"`
	LiabilityHoldingsTotal money                  `json:"liability_holdings_total"`
	Breakdown              []categoryLineResponse `json:"breakdown"`
}

func toSummaryResponse(s networth.Summary) summaryResponse {
	resp := summaryResponse{
		AccountCount:           s.AccountCount,
		TotalAssets:            newMoney(s.TotalAssets),
		TotalLiabilities:       newMoney(s.TotalLiabilities),
		NetWorth:               newMoney(s.NetWorth),
		PersonalTotal:          newMoney(s.PersonalTotal),
		BusinessTotal:          newMoney(s.BusinessTotal),
		CashTotal:              newMoney(s.CashTotal),
		AssetHoldingsTotal:     newMoney(s.AssetHoldingsTotal),
		LiabilityHoldingsTotal: newMoney(s.LiabilityHoldingsTotal),
		Breakdown:              make([]categoryLineResponse, 0, len(s.Breakdown)),
	}
	for _, line := range s.Breakdown {
		resp.Breakdown = append(resp.Breakdown, categoryLineResponse{
			Type:         string(line.Type),
			Category:     string(line.Category),
			CategoryName: line.Category.DisplayName(),
			Count:        line.Count,
			Total:        newMoney(line.Total),
		})
	}
	return resp
}

func GetSummary(svc AccountService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.Summary(r.Context())
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, toSummaryResponse(s))
	}
}
