package billing

import (
	"github.com/shopspring/decimal"

	"propertyhub-backend/internal/domain"
)

// Balance is what a tenant still owes against what the period charges.
type Balance struct {
	Balance  decimal.Decimal `json:"balance"`
	TotalDue decimal.Decimal `json:"total_due"`
}

// LineItem is one bill of a tenant's period statement.
type LineItem struct {
	Type   domain.BillType `json:"bill_type"`
	Amount decimal.Decimal `json:"amount"`
	Paid   bool            `json:"paid"`
}

// Calculator derives balances and collection figures from paid-flags and
// an injected pricing table. It holds no mutable state.
type Calculator struct {
	pricing PricingTable
}

func NewCalculator(pricing PricingTable) *Calculator {
	return &Calculator{pricing: pricing}
}

func (c *Calculator) Pricing() PricingTable {
	return c.pricing
}

// TotalDue is rent plus both utility charges.
func (c *Calculator) TotalDue(t *domain.Tenant) decimal.Decimal {
	return c.pricing.RentFor(t.RoomType).
		Add(c.pricing.WaterCharge()).
		Add(c.pricing.ElectricityCharge())
}

// Collected sums the charges whose paid-flag is set.
func (c *Calculator) Collected(t *domain.Tenant) decimal.Decimal {
	collected := decimal.Zero
	for _, bt := range domain.BillTypes {
		if t.IsPaid(bt) {
			collected = collected.Add(c.pricing.ChargeFor(t, bt))
		}
	}
	return collected
}

// ComputeBalance adds each charge whose paid-flag is false.
func (c *Calculator) ComputeBalance(t *domain.Tenant) Balance {
	balance := decimal.Zero
	for _, bt := range domain.BillTypes {
		if !t.IsPaid(bt) {
			balance = balance.Add(c.pricing.ChargeFor(t, bt))
		}
	}
	return Balance{
		Balance:  balance,
		TotalDue: c.TotalDue(t),
	}
}

// Breakdown lists the period's bills for t in display order.
func (c *Calculator) Breakdown(t *domain.Tenant) []LineItem {
	items := make([]LineItem, 0, len(domain.BillTypes))
	for _, bt := range domain.BillTypes {
		items = append(items, LineItem{
			Type:   bt,
			Amount: c.pricing.ChargeFor(t, bt),
			Paid:   t.IsPaid(bt),
		})
	}
	return items
}
