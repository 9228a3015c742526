package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"propertyhub-backend/internal/domain"
)

// PaymentRequest is the validated shape of a bill payment.
type PaymentRequest struct {
	BillType string
	Amount   *decimal.Decimal
}

// Receipt is the outcome of recording one payment.
type Receipt struct {
	Tenant  domain.Tenant
	Payment domain.Payment
	Balance Balance
}

// MaxPaymentAmount is the largest value a NUMERIC(12,2) amount column holds.
var MaxPaymentAmount = decimal.RequireFromString("9999999999.99")

// ValidatePayment checks the request before anything is mutated.
func ValidatePayment(req PaymentRequest) (domain.BillType, decimal.Decimal, error) {
	if req.BillType == "" || req.Amount == nil {
		return "", decimal.Zero, fmt.Errorf("%w: bill type and amount are required", domain.ErrInvalidInput)
	}
	bt, err := domain.ParseBillType(req.BillType)
	if err != nil {
		return "", decimal.Zero, err
	}
	if !req.Amount.IsPositive() {
		return "", decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}
	amount := req.Amount.Round(2)
	if amount.GreaterThan(MaxPaymentAmount) {
		return "", decimal.Zero, fmt.Errorf("%w: amount must not exceed %s", domain.ErrInvalidInput, MaxPaymentAmount.StringFixed(2))
	}
	return bt, amount, nil
}

// Recorder applies payments to tenant snapshots.
type Recorder struct {
	calc *Calculator
	now  func() time.Time
}

func NewRecorder(calc *Calculator) *Recorder {
	return &Recorder{calc: calc, now: time.Now}
}

// WithClock replaces the timestamp source; used by tests.
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	return &Recorder{calc: r.calc, now: now}
}

// Record marks the bill paid on a copy of tenant and builds the payment
// record. Paying an already-paid bill still yields a new record. The
// caller must persist the returned tenant and payment together.
func (r *Recorder) Record(tenant domain.Tenant, req PaymentRequest) (Receipt, error) {
	bt, amount, err := ValidatePayment(req)
	if err != nil {
		return Receipt{}, err
	}

	tenant.MarkPaid(bt)
	payment := domain.Payment{
		TenantID:   tenant.ID,
		TenantName: tenant.Name,
		Amount:     amount,
		Type:       bt,
		Status:     domain.PaymentStatusCompleted,
		PaidAt:     r.now().UTC(),
	}

	return Receipt{
		Tenant:  tenant,
		Payment: payment,
		Balance: r.calc.ComputeBalance(&tenant),
	}, nil
}
