package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/repository/postgres"
)

func TestLandlordRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewLandlordRepository(db)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		l := &domain.Landlord{Name: "John", Email: "john@test.com", PasswordHash: "hash"}
		mock.ExpectQuery("INSERT INTO landlords").
			WithArgs("John", "john@test.com", "hash", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		require.NoError(t, repo.Create(ctx, l))
		assert.Equal(t, int32(1), l.ID)
	})

	t.Run("GetByEmail is case insensitive", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM landlords WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("JOHN@test.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
				AddRow(1, "John", "john@test.com", "hash", time.Now()))

		l, err := repo.GetByEmail(ctx, "JOHN@test.com")
		require.NoError(t, err)
		assert.Equal(t, "john@test.com", l.Email)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM landlords WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}))

		_, err := repo.GetByID(ctx, 2)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
