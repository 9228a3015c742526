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

const tenantColumns = `id, name, email, password_hash, room_type, house_id, rent_paid, water_paid, electricity_paid, created_at, updated_at`

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	var roomType sql.NullString
	var houseID sql.NullInt32
	err := row.Scan(&t.ID, &t.Name, &t.Email, &t.PasswordHash, &roomType, &houseID,
		&t.RentPaid, &t.WaterPaid, &t.ElectricityPaid, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if roomType.Valid {
		t.RoomType = &roomType.String
	}
	if houseID.Valid {
		t.HouseID = &houseID.Int32
	}
	return t, nil
}

func (r *tenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	query := `INSERT INTO tenants (name, email, password_hash, room_type, house_id, rent_paid, water_paid, electricity_paid, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query, t.Name, t.Email, t.PasswordHash, t.RoomType, t.HouseID,
		t.RentPaid, t.WaterPaid, t.ElectricityPaid, t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
	return mapError(err, "tenant "+t.Email)
}

func (r *tenantRepository) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	t, err := scanTenant(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("tenant %d", id))
	}
	return t, nil
}

func (r *tenantRepository) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE LOWER(email) = LOWER($1)`
	t, err := scanTenant(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapError(err, "tenant "+email)
	}
	return t, nil
}

func (r *tenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	logger.EnterMethod("tenantRepository.List")

	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY id`
	logger.DatabaseCall("SELECT", "tenants")

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		logger.ExitMethodWithError("tenantRepository.List", err)
		return nil, mapError(err, "list tenants")
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			logger.DatabaseResult("SELECT", int64(len(tenants)), err)
			logger.ExitMethodWithError("tenantRepository.List", err)
			return nil, mapError(err, "scan tenant")
		}
		tenants = append(tenants, *t)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError("tenantRepository.List", err)
		return nil, mapError(err, "list tenants")
	}

	logger.DatabaseResult("SELECT", int64(len(tenants)), nil)
	logger.ExitMethod("tenantRepository.List", "count", len(tenants))
	return tenants, nil
}

func (r *tenantRepository) UpdateRoomType(ctx context.Context, id int32, roomType string) error {
	query := `UPDATE tenants SET room_type = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, roomType, time.Now().UTC(), id)
	if err != nil {
		return mapError(err, fmt.Sprintf("update tenant %d", id))
	}
	return requireAffected(res, fmt.Sprintf("tenant %d", id))
}

func (r *tenantRepository) Delete(ctx context.Context, id int32) error {
	logger.EnterMethod("tenantRepository.Delete", "tenantID", id)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("tenantRepository.Delete", err, "tenantID", id)
		return mapError(err, "begin delete tenant")
	}
	defer tx.Rollback()

	logger.DatabaseCall("DELETE", "payments", "tenantID", id)
	if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE tenant_id = $1`, id); err != nil {
		logger.ExitMethodWithError("tenantRepository.Delete", err, "tenantID", id)
		return mapError(err, fmt.Sprintf("delete payments of tenant %d", id))
	}

	logger.DatabaseCall("DELETE", "tenants", "tenantID", id)
	res, err := tx.ExecContext(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("tenantRepository.Delete", err, "tenantID", id)
		return mapError(err, fmt.Sprintf("delete tenant %d", id))
	}
	if err := requireAffected(res, fmt.Sprintf("tenant %d", id)); err != nil {
		logger.ExitMethodWithError("tenantRepository.Delete", err, "tenantID", id)
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("tenantRepository.Delete", err, "tenantID", id)
		return mapError(err, "commit delete tenant")
	}

	logger.ExitMethod("tenantRepository.Delete", "tenantID", id)
	return nil
}

func (r *tenantRepository) ResetBillingPeriod(ctx context.Context) (int64, error) {
	query := `UPDATE tenants SET rent_paid = FALSE, water_paid = FALSE, electricity_paid = FALSE, updated_at = $1
	          WHERE rent_paid OR water_paid OR electricity_paid`
	logger.DatabaseCall("UPDATE", "tenants reset paid flags")
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC())
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return 0, mapError(err, "reset billing period")
	}
	n, err := res.RowsAffected()
	logger.DatabaseResult("UPDATE", n, err)
	if err != nil {
		return 0, mapError(err, "reset billing period")
	}
	return n, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, what)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
	}
	return nil
}
