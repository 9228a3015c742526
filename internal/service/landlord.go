package service

import (
	"context"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/metrics"
	"propertyhub-backend/internal/repository"
)

type landlordService struct {
	landlordRepo repository.LandlordRepository
	tenantRepo   repository.TenantRepository
	calc         *billing.Calculator
	metrics      *metrics.Metrics
}

func NewLandlordService(landlordRepo repository.LandlordRepository, tenantRepo repository.TenantRepository, calc *billing.Calculator, m *metrics.Metrics) LandlordService {
	return &landlordService{
		landlordRepo: landlordRepo,
		tenantRepo:   tenantRepo,
		calc:         calc,
		metrics:      m,
	}
}

func (s *landlordService) GetDashboard(ctx context.Context) (*billing.DashboardSummary, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := s.calc.Aggregate(tenants)
	s.metrics.SetCollection(summary)
	return &summary, nil
}

func (s *landlordService) GetProfile(ctx context.Context, landlordID int32) (*domain.Landlord, error) {
	return s.landlordRepo.GetByID(ctx, landlordID)
}
