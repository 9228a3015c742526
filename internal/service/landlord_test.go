package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/domain"
)

func TestLandlordService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepo)
	landlordRepo := new(MockLandlordRepo)
	svc := NewLandlordService(landlordRepo, tenantRepo, billing.NewCalculator(billing.DefaultPricingTable()), nil)

	tenantRepo.On("List", ctx).Return([]domain.Tenant{
		{ID: 1, RoomType: strPtr("Studio"), RentPaid: true, WaterPaid: true, ElectricityPaid: true},
		{ID: 2, RoomType: strPtr("Studio")},
	}, nil).Once()

	summary, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalTenants)
	assert.Equal(t, 1, summary.PaidTenants)
	assert.Equal(t, int64(50), summary.CollectionRate)
	assert.Equal(t, "4000", summary.AvgBalance.String())

	tenantRepo.On("List", ctx).Return(nil, domain.ErrStorageFailure).Once()
	_, err = svc.GetDashboard(ctx)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}

func TestLandlordService_GetProfile(t *testing.T) {
	ctx := context.Background()
	landlordRepo := new(MockLandlordRepo)
	svc := NewLandlordService(landlordRepo, new(MockTenantRepo), billing.NewCalculator(billing.DefaultPricingTable()), nil)

	landlordRepo.On("GetByID", ctx, int32(1)).Return(&domain.Landlord{ID: 1, Name: "John Doe"}, nil)
	l, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", l.Name)
}
