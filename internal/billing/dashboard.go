package billing

import (
	"github.com/shopspring/decimal"

	"propertyhub-backend/internal/domain"
)

// DashboardSummary is the landlord's collection overview.
type DashboardSummary struct {
	TotalTenants     int             `json:"total_tenants"`
	PaidTenants      int             `json:"paid_tenants"`
	UnpaidTenants    int             `json:"unpaid_tenants"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalPossible    decimal.Decimal `json:"total_possible"`
	CollectionRate   int64           `json:"collection_rate"`
	AvgBalance       decimal.Decimal `json:"avg_balance"`
}

var hundred = decimal.NewFromInt(100)

// Aggregate folds over tenants. An empty slice yields an all-zero summary.
func (c *Calculator) Aggregate(tenants []domain.Tenant) DashboardSummary {
	summary := DashboardSummary{
		TotalTenants:     len(tenants),
		TotalCollected:   decimal.Zero,
		TotalOutstanding: decimal.Zero,
		TotalPossible:    decimal.Zero,
		AvgBalance:       decimal.Zero,
	}

	for i := range tenants {
		t := &tenants[i]
		totalDue := c.TotalDue(t)
		collected := c.Collected(t)
		outstanding := totalDue.Sub(collected)

		summary.TotalPossible = summary.TotalPossible.Add(totalDue)
		summary.TotalCollected = summary.TotalCollected.Add(collected)
		summary.TotalOutstanding = summary.TotalOutstanding.Add(outstanding)
		if outstanding.IsZero() {
			summary.PaidTenants++
		}
	}
	summary.UnpaidTenants = summary.TotalTenants - summary.PaidTenants

	// Amounts are non-negative, so truncating quotients are floors.
	if summary.TotalPossible.IsPositive() {
		rate, _ := summary.TotalCollected.Mul(hundred).QuoRem(summary.TotalPossible, 0)
		summary.CollectionRate = rate.IntPart()
	}
	if summary.TotalTenants > 0 {
		avg, _ := summary.TotalOutstanding.QuoRem(decimal.NewFromInt(int64(summary.TotalTenants)), 0)
		summary.AvgBalance = avg
	}
	return summary
}
