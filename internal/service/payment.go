package service

import (
	"context"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	tenantRepo  repository.TenantRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, tenantRepo repository.TenantRepository) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		tenantRepo:  tenantRepo,
	}
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}

// ListTenantPayments returns not found for unknown tenants rather than an empty history
func (s *paymentService) ListTenantPayments(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	if _, err := s.tenantRepo.GetByID(ctx, tenantID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByTenant(ctx, tenantID)
}
