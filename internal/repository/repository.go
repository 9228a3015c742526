package repository

import (
	"context"

	"propertyhub-backend/internal/domain"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id int32) (*domain.Tenant, error)
	GetByEmail(ctx context.Context, email string) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
	UpdateRoomType(ctx context.Context, id int32, roomType string) error
	// Delete removes the tenant together with its payment history
	Delete(ctx context.Context, id int32) error
	// ResetBillingPeriod clears every paid-flag and returns the number of tenants touched
	ResetBillingPeriod(ctx context.Context) (int64, error)
}

type LandlordRepository interface {
	Create(ctx context.Context, landlord *domain.Landlord) error
	GetByID(ctx context.Context, id int32) (*domain.Landlord, error)
	GetByEmail(ctx context.Context, email string) (*domain.Landlord, error)
}

// PaymentApplier receives the locked tenant row, mutates its paid-flags and
// returns the payment to insert. Returning an error aborts the transaction.
type PaymentApplier func(tenant *domain.Tenant) (*domain.Payment, error)

type PaymentRepository interface {
	// Record persists the tenant flag update and the payment insert atomically
	Record(ctx context.Context, tenantID int32, apply PaymentApplier) (*domain.Tenant, *domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Payment, error)
}
