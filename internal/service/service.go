package service

import (
	"context"

	"github.com/shopspring/decimal"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type TenantService interface {
	ListTenants(ctx context.Context) ([]TenantBalance, error)
	GetProfile(ctx context.Context, tenantID int32) (*TenantProfile, error)
	SelectRoom(ctx context.Context, tenantID int32, roomType string) (*TenantProfile, error)
	PayBill(ctx context.Context, tenantID int32, req billing.PaymentRequest) (*billing.Receipt, error)
	RemoveTenant(ctx context.Context, tenantID int32) error
	ListRooms() []RoomOption
}

type LandlordService interface {
	GetDashboard(ctx context.Context) (*billing.DashboardSummary, error)
	GetProfile(ctx context.Context, landlordID int32) (*domain.Landlord, error)
}

type PaymentService interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	ListTenantPayments(ctx context.Context, tenantID int32) ([]domain.Payment, error)
}

type EmailService interface {
	SendPaymentReceipt(ctx context.Context, tenant *domain.Tenant, payment *domain.Payment, balance billing.Balance) error
	SendBalanceReminder(ctx context.Context, tenant *domain.Tenant, balance billing.Balance) error
}

type SignupRequest struct {
	Name       string
	Email      string
	Password   string
	Role       string
	AccessCode string
}

type AuthUser struct {
	ID    int32
	Name  string
	Email string
	Role  domain.Role
}

type AuthResult struct {
	Token string
	User  AuthUser
}

// TenantBalance is a tenant row enriched with its current-period amounts
type TenantBalance struct {
	Tenant  domain.Tenant
	Balance billing.Balance
}

type TenantProfile struct {
	Tenant    domain.Tenant
	Balance   billing.Balance
	Breakdown []billing.LineItem
}

type RoomOption struct {
	RoomType string
	Rent     decimal.Decimal
}
