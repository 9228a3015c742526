package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"propertyhub-backend/internal/domain"
)

func TestPaymentService_ListTenantPayments(t *testing.T) {
	ctx := context.Background()

	t.Run("Known tenant", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		tenantRepo := new(MockTenantRepo)
		svc := NewPaymentService(paymentRepo, tenantRepo)

		tenantRepo.On("GetByID", ctx, int32(1)).Return(&domain.Tenant{ID: 1}, nil)
		paymentRepo.On("ListByTenant", ctx, int32(1)).Return([]domain.Payment{{ID: 3, TenantID: 1}}, nil)

		payments, err := svc.ListTenantPayments(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	})

	t.Run("Unknown tenant", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		tenantRepo := new(MockTenantRepo)
		svc := NewPaymentService(paymentRepo, tenantRepo)

		tenantRepo.On("GetByID", ctx, int32(9)).Return(nil, domain.ErrNotFound)

		_, err := svc.ListTenantPayments(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		paymentRepo.AssertNotCalled(t, "ListByTenant", mock.Anything, mock.Anything)
	})
}

func TestPaymentService_ListPayments(t *testing.T) {
	ctx := context.Background()
	paymentRepo := new(MockPaymentRepo)
	svc := NewPaymentService(paymentRepo, new(MockTenantRepo))

	paymentRepo.On("List", ctx).Return([]domain.Payment{{ID: 2}, {ID: 1}}, nil)
	payments, err := svc.ListPayments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), payments[0].ID)
}
