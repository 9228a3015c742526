package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/repository"
)

type landlordRepository struct {
	db *sql.DB
}

func NewLandlordRepository(db *sql.DB) repository.LandlordRepository {
	return &landlordRepository{db: db}
}

func (r *landlordRepository) Create(ctx context.Context, l *domain.Landlord) error {
	query := `INSERT INTO landlords (name, email, password_hash, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	l.CreatedAt = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query, l.Name, l.Email, l.PasswordHash, l.CreatedAt).Scan(&l.ID)
	return mapError(err, "landlord "+l.Email)
}

func (r *landlordRepository) GetByID(ctx context.Context, id int32) (*domain.Landlord, error) {
	l := &domain.Landlord{}
	query := `SELECT id, name, email, password_hash, created_at FROM landlords WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Name, &l.Email, &l.PasswordHash, &l.CreatedAt)
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("landlord %d", id))
	}
	return l, nil
}

func (r *landlordRepository) GetByEmail(ctx context.Context, email string) (*domain.Landlord, error) {
	l := &domain.Landlord{}
	query := `SELECT id, name, email, password_hash, created_at FROM landlords WHERE LOWER(email) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&l.ID, &l.Name, &l.Email, &l.PasswordHash, &l.CreatedAt)
	if err != nil {
		return nil, mapError(err, "landlord "+email)
	}
	return l, nil
}
