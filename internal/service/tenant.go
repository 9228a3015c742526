package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
	"propertyhub-backend/internal/metrics"
	"propertyhub-backend/internal/repository"
)

type tenantService struct {
	tenantRepo  repository.TenantRepository
	paymentRepo repository.PaymentRepository
	calc        *billing.Calculator
	recorder    *billing.Recorder
	emailSvc    EmailService
	metrics     *metrics.Metrics
}

func NewTenantService(tenantRepo repository.TenantRepository, paymentRepo repository.PaymentRepository, calc *billing.Calculator, emailSvc EmailService, m *metrics.Metrics) TenantService {
	return &tenantService{
		tenantRepo:  tenantRepo,
		paymentRepo: paymentRepo,
		calc:        calc,
		recorder:    billing.NewRecorder(calc),
		emailSvc:    emailSvc,
		metrics:     m,
	}
}

func (s *tenantService) ListTenants(ctx context.Context) ([]TenantBalance, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TenantBalance, 0, len(tenants))
	for i := range tenants {
		out = append(out, TenantBalance{
			Tenant:  tenants[i],
			Balance: s.calc.ComputeBalance(&tenants[i]),
		})
	}
	return out, nil
}

func (s *tenantService) GetProfile(ctx context.Context, tenantID int32) (*TenantProfile, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return s.profile(tenant), nil
}

func (s *tenantService) profile(t *domain.Tenant) *TenantProfile {
	return &TenantProfile{
		Tenant:    *t,
		Balance:   s.calc.ComputeBalance(t),
		Breakdown: s.calc.Breakdown(t),
	}
}

func (s *tenantService) SelectRoom(ctx context.Context, tenantID int32, roomType string) (*TenantProfile, error) {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return nil, fmt.Errorf("%w: room type is required", domain.ErrInvalidInput)
	}
	pricing := s.calc.Pricing()
	if !pricing.IsRoomType(roomType) {
		return nil, fmt.Errorf("%w: invalid room type, choose from: %s",
			domain.ErrInvalidInput, strings.Join(pricing.RoomTypes(), ", "))
	}

	if err := s.tenantRepo.UpdateRoomType(ctx, tenantID, roomType); err != nil {
		return nil, err
	}
	logger.Info("Room type selected", "tenantID", tenantID, "roomType", roomType)

	return s.GetProfile(ctx, tenantID)
}

// PayBill validates the request before touching storage, then records the
// flag change and payment row in one transaction.
func (s *tenantService) PayBill(ctx context.Context, tenantID int32, req billing.PaymentRequest) (*billing.Receipt, error) {
	logger.EnterMethod("tenantService.PayBill", "tenantID", tenantID, "billType", req.BillType)

	if _, _, err := billing.ValidatePayment(req); err != nil {
		s.metrics.PaymentFailed("invalid_input")
		logger.ExitMethodWithError("tenantService.PayBill", err, "tenantID", tenantID)
		return nil, err
	}

	var receipt billing.Receipt
	tenant, payment, err := s.paymentRepo.Record(ctx, tenantID, func(t *domain.Tenant) (*domain.Payment, error) {
		r, err := s.recorder.Record(*t, req)
		if err != nil {
			return nil, err
		}
		*t = r.Tenant
		receipt = r
		return &receipt.Payment, nil
	})
	if err != nil {
		s.metrics.PaymentFailed(failureReason(err))
		logger.ExitMethodWithError("tenantService.PayBill", err, "tenantID", tenantID)
		return nil, err
	}
	receipt.Tenant = *tenant
	receipt.Payment = *payment
	s.metrics.PaymentRecorded(payment)

	log := logger.WithTenant(tenantID)
	log.Info("Payment recorded", "paymentID", payment.ID, "billType", payment.Type, "amount", payment.Amount.String())
	if err := s.emailSvc.SendPaymentReceipt(ctx, tenant, payment, receipt.Balance); err != nil {
		log.Warn("Failed to send payment receipt", "paymentID", payment.ID, "error", err)
	}

	logger.ExitMethod("tenantService.PayBill", "tenantID", tenantID, "paymentID", payment.ID, "balance", receipt.Balance.Balance.String())
	return &receipt, nil
}

func (s *tenantService) RemoveTenant(ctx context.Context, tenantID int32) error {
	if err := s.tenantRepo.Delete(ctx, tenantID); err != nil {
		return err
	}
	logger.Info("Tenant removed", "tenantID", tenantID)
	return nil
}

func (s *tenantService) ListRooms() []RoomOption {
	pricing := s.calc.Pricing()
	labels := pricing.RoomTypes()
	rooms := make([]RoomOption, 0, len(labels))
	for _, label := range labels {
		rooms = append(rooms, RoomOption{RoomType: label, Rent: pricing.Rent[label]})
	}
	return rooms
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "storage_failure"
	}
}
