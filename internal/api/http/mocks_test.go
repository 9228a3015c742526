package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/service"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req service.SignupRequest) (*service.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

// MockTenantService
type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) ListTenants(ctx context.Context) ([]service.TenantBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TenantBalance), args.Error(1)
}
func (m *MockTenantService) GetProfile(ctx context.Context, tenantID int32) (*service.TenantProfile, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TenantProfile), args.Error(1)
}
func (m *MockTenantService) SelectRoom(ctx context.Context, tenantID int32, roomType string) (*service.TenantProfile, error) {
	args := m.Called(ctx, tenantID, roomType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TenantProfile), args.Error(1)
}
func (m *MockTenantService) PayBill(ctx context.Context, tenantID int32, req billing.PaymentRequest) (*billing.Receipt, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Receipt), args.Error(1)
}
func (m *MockTenantService) RemoveTenant(ctx context.Context, tenantID int32) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}
func (m *MockTenantService) ListRooms() []service.RoomOption {
	args := m.Called()
	return args.Get(0).([]service.RoomOption)
}

// MockLandlordService
type MockLandlordService struct {
	mock.Mock
}

func (m *MockLandlordService) GetDashboard(ctx context.Context) (*billing.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.DashboardSummary), args.Error(1)
}
func (m *MockLandlordService) GetProfile(ctx context.Context, landlordID int32) (*domain.Landlord, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Landlord), args.Error(1)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ListTenantPayments(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }
