package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment is an append-only record of a settled bill.
type Payment struct {
	ID         int32           `json:"id"`
	TenantID   int32           `json:"tenant_id"`
	TenantName string          `json:"tenant_name,omitempty"` // Populated on listings
	Amount     decimal.Decimal `json:"amount"`
	Type       BillType        `json:"payment_type"`
	Status     PaymentStatus   `json:"status"`
	PaidAt     time.Time       `json:"date_paid"`
}
