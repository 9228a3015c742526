package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/logger"
	"propertyhub-backend/internal/repository"
)

//go:embed schema.sql
var schema string

// Store bundles the repositories backed by one connection pool.
type Store struct {
	db        *sql.DB
	Tenants   repository.TenantRepository
	Landlords repository.LandlordRepository
	Payments  repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		Tenants:   NewTenantRepository(db),
		Landlords: NewLandlordRepository(db),
		Payments:  NewPaymentRepository(db),
	}
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies the embedded schema. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	logger.DatabaseCall("MIGRATE", "schema.sql")
	_, err := db.ExecContext(ctx, schema)
	logger.DatabaseResult("MIGRATE", 0, err)
	if err != nil {
		return fmt.Errorf("%w: apply schema: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

const uniqueViolation = "23505"

// mapError translates driver errors into domain errors
func mapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflict, what)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, what, err)
}
