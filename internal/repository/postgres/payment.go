package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
	"propertyhub-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Record locks the tenant row, lets apply mutate it, then writes the flag
// update and the payment insert in the same transaction. Concurrent
// payments for one tenant serialize on the row lock.
func (r *paymentRepository) Record(ctx context.Context, tenantID int32, apply repository.PaymentApplier) (*domain.Tenant, *domain.Payment, error) {
	logger.EnterMethod("paymentRepository.Record", "tenantID", tenantID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Record", err, "tenantID", tenantID)
		return nil, nil, mapError(err, "begin payment")
	}
	defer tx.Rollback()

	logger.DatabaseCall("SELECT FOR UPDATE", "tenants", "tenantID", tenantID)
	tenant, err := scanTenant(tx.QueryRowContext(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = $1 FOR UPDATE`, tenantID))
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Record", err, "tenantID", tenantID)
		return nil, nil, mapError(err, fmt.Sprintf("tenant %d", tenantID))
	}

	payment, err := apply(tenant)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Record", err, "tenantID", tenantID)
		return nil, nil, err
	}

	tenant.UpdatedAt = time.Now().UTC()
	logger.DatabaseCall("UPDATE", "tenants paid flags", "tenantID", tenantID)
	_, err = tx.ExecContext(ctx,
		`UPDATE tenants SET rent_paid = $1, water_paid = $2, electricity_paid = $3, updated_at = $4 WHERE id = $5`,
		tenant.RentPaid, tenant.WaterPaid, tenant.ElectricityPaid, tenant.UpdatedAt, tenant.ID)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Record", err, "tenantID", tenantID)
		return nil, nil, mapError(err, fmt.Sprintf("update tenant %d", tenantID))
	}

	payment.TenantID = tenant.ID
	logger.DatabaseCall("INSERT", "payments", "tenantID", tenantID, "billType", payment.Type)
	err = tx.QueryRowContext(ctx,
		`INSERT INTO payments (tenant_id, amount, bill_type, status, paid_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		payment.TenantID, payment.Amount, payment.Type, payment.Status, payment.PaidAt).Scan(&payment.ID)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Record", err, "tenantID", tenantID)
		return nil, nil, mapError(err, fmt.Sprintf("insert payment for tenant %d", tenantID))
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("paymentRepository.Record", err, "tenantID", tenantID)
		return nil, nil, mapError(err, "commit payment")
	}

	logger.ExitMethod("paymentRepository.Record", "tenantID", tenantID, "paymentID", payment.ID)
	return tenant, payment, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT p.id, p.tenant_id, COALESCE(t.name, 'Unknown'), p.amount, p.bill_type, p.status, p.paid_at
	          FROM payments p LEFT JOIN tenants t ON t.id = p.tenant_id
	          ORDER BY p.paid_at DESC, p.id DESC`
	return r.query(ctx, "list payments", query)
}

func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	query := `SELECT p.id, p.tenant_id, COALESCE(t.name, 'Unknown'), p.amount, p.bill_type, p.status, p.paid_at
	          FROM payments p LEFT JOIN tenants t ON t.id = p.tenant_id
	          WHERE p.tenant_id = $1
	          ORDER BY p.paid_at DESC, p.id DESC`
	return r.query(ctx, fmt.Sprintf("list payments of tenant %d", tenantID), query, tenantID)
}

func (r *paymentRepository) query(ctx context.Context, what, query string, args ...any) ([]domain.Payment, error) {
	logger.DatabaseCall("SELECT", what)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, mapError(err, what)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.TenantID, &p.TenantName, &p.Amount, &p.Type, &p.Status, &p.PaidAt); err != nil {
			logger.DatabaseResult("SELECT", int64(len(payments)), err)
			return nil, mapError(err, what)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, what)
	}
	logger.DatabaseResult("SELECT", int64(len(payments)), nil)
	return payments, nil
}
