package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/repository/postgres"
)

var tenantCols = []string{"id", "name", "email", "password_hash", "room_type", "house_id",
	"rent_paid", "water_paid", "electricity_paid", "created_at", "updated_at"}

func TestTenantRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTenantRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(tenantCols).
			AddRow(1, "Alice", "alice@test.com", "hash", "Studio", nil, true, false, false, time.Now(), time.Now())
		mock.ExpectQuery("SELECT (.+) FROM tenants WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		tenant, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(1), tenant.ID)
		require.NotNil(t, tenant.RoomType)
		assert.Equal(t, "Studio", *tenant.RoomType)
		assert.Nil(t, tenant.HouseID)
		assert.True(t, tenant.RentPaid)
		assert.False(t, tenant.WaterPaid)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tenants WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows(tenantCols))

		tenant, err := repo.GetByID(ctx, 2)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, tenant)
	})

	t.Run("Driver error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tenants WHERE id = \\$1").
			WithArgs(int32(3)).
			WillReturnError(assert.AnError)

		_, err := repo.GetByID(ctx, 3)
		assert.ErrorIs(t, err, domain.ErrStorageFailure)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewTenantRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tenant := &domain.Tenant{Name: "Bob", Email: "bob@test.com", PasswordHash: "hash"}
		mock.ExpectQuery("INSERT INTO tenants").
			WithArgs(tenant.Name, tenant.Email, tenant.PasswordHash, nil, nil, false, false, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, tenant)
		require.NoError(t, err)
		assert.Equal(t, int32(7), tenant.ID)
		assert.False(t, tenant.CreatedAt.IsZero())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		tenant := &domain.Tenant{Name: "Bob", Email: "bob@test.com", PasswordHash: "hash"}
		mock.ExpectQuery("INSERT INTO tenants").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, tenant)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewTenantRepository(db)

	rows := sqlmock.NewRows(tenantCols).
		AddRow(1, "Alice", "alice@test.com", "hash", "Studio", 4, true, true, true, time.Now(), time.Now()).
		AddRow(2, "Bob", "bob@test.com", "hash", nil, nil, false, false, false, time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM tenants ORDER BY id").WillReturnRows(rows)

	tenants, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	require.NotNil(t, tenants[0].HouseID)
	assert.Equal(t, int32(4), *tenants[0].HouseID)
	assert.Nil(t, tenants[1].RoomType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_UpdateRoomType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewTenantRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE tenants SET room_type").
		WithArgs("2-Bedroom", sqlmock.AnyArg(), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateRoomType(ctx, 1, "2-Bedroom"))

	mock.ExpectExec("UPDATE tenants SET room_type").
		WithArgs("2-Bedroom", sqlmock.AnyArg(), int32(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.UpdateRoomType(ctx, 9, "2-Bedroom"), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewTenantRepository(db)
	ctx := context.Background()

	t.Run("Removes payments then tenant", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM payments WHERE tenant_id = \\$1").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("DELETE FROM tenants WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("Unknown tenant rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM payments WHERE tenant_id = \\$1").
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM tenants WHERE id = \\$1").
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete(ctx, 5), domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_ResetBillingPeriod(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewTenantRepository(db)

	mock.ExpectExec("UPDATE tenants SET rent_paid = FALSE").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.ResetBillingPeriod(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
