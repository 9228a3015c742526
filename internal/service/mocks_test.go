package service

import (
	"context"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/mock"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/repository"
)

// MockTenantRepo
type MockTenantRepo struct {
	mock.Mock
}

func (m *MockTenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}
func (m *MockTenantRepo) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) List(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) UpdateRoomType(ctx context.Context, id int32, roomType string) error {
	args := m.Called(ctx, id, roomType)
	return args.Error(0)
}
func (m *MockTenantRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTenantRepo) ResetBillingPeriod(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockLandlordRepo
type MockLandlordRepo struct {
	mock.Mock
}

func (m *MockLandlordRepo) Create(ctx context.Context, landlord *domain.Landlord) error {
	args := m.Called(ctx, landlord)
	return args.Error(0)
}
func (m *MockLandlordRepo) GetByID(ctx context.Context, id int32) (*domain.Landlord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Landlord), args.Error(1)
}
func (m *MockLandlordRepo) GetByEmail(ctx context.Context, email string) (*domain.Landlord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Landlord), args.Error(1)
}

// MockPaymentRepo runs the applier against a copy of the stubbed tenant
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Record(ctx context.Context, tenantID int32, apply repository.PaymentApplier) (*domain.Tenant, *domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	if err := args.Error(1); err != nil {
		return nil, nil, err
	}
	tenant := *(args.Get(0).(*domain.Tenant))
	payment, err := apply(&tenant)
	if err != nil {
		return nil, nil, err
	}
	payment.ID = 99
	payment.TenantID = tenant.ID
	return &tenant, payment, nil
}
func (m *MockPaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, tenant *domain.Tenant, payment *domain.Payment, balance billing.Balance) error {
	args := m.Called(ctx, tenant, payment, balance)
	return args.Error(0)
}
func (m *MockEmailService) SendBalanceReminder(ctx context.Context, tenant *domain.Tenant, balance billing.Balance) error {
	args := m.Called(ctx, tenant, balance)
	return args.Error(0)
}

// MockMailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rest.Response), args.Error(1)
}
