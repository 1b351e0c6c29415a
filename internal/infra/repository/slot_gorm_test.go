package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/harshitgawli/Turf-Booking/internal/domain/slot"
	"github.com/harshitgawli/Turf-Booking/internal/httperr"
)

func newTestRepo(t *testing.T) (*SlotGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	require.NoError(t, err)

	return NewSlotGormRepository(gdb), mock
}

var slotCols = []string{"id", "date", "time", "price", "status", "reserved_by_id", "request_code"}

func TestUpdateIfStatusReturnsRowFromUpdate(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`UPDATE "slots" SET .* WHERE id = \$\d+ AND status = \$\d+ RETURNING`).
		WillReturnRows(sqlmock.NewRows(slotCols).
			AddRow(7, "2025-06-01", "10:00 - 11:00", 399, "pending", 42, "123456"))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$\d+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(42, "Asha", "asha@example.com"))

	got, err := repo.UpdateIfStatus(
		context.Background(),
		7,
		domain.StatusAvailable,
		domain.ReserveChanges(42, "123456"),
	)
	require.NoError(t, err)

	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, string(domain.StatusPending), got.Status)
	require.NotNil(t, got.ReservedByID)
	assert.Equal(t, uint(42), *got.ReservedByID)
	require.NotNil(t, got.RequestCode)
	assert.Equal(t, "123456", *got.RequestCode)
	require.NotNil(t, got.ReservedBy)
	assert.Equal(t, "asha@example.com", got.ReservedBy.Email)

	// the slot state came from the UPDATE's RETURNING row; any re-read of
	// the slots table would be an unexpected statement here
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateIfStatusLostRace(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`UPDATE "slots" SET .* RETURNING`).
		WillReturnRows(sqlmock.NewRows(slotCols))
	mock.ExpectQuery(`SELECT \* FROM "slots" WHERE "slots"\."id" = \$\d+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(7, "booked"))

	_, err := repo.UpdateIfStatus(
		context.Background(),
		7,
		domain.StatusAvailable,
		domain.ReserveChanges(42, "123456"),
	)
	require.Error(t, err)
	assert.Equal(t, "slot_conflict", httperr.BusinessCode(err))
}

func TestUpdateIfStatusSlotGone(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`UPDATE "slots" SET .* RETURNING`).
		WillReturnRows(sqlmock.NewRows(slotCols))
	mock.ExpectQuery(`SELECT \* FROM "slots" WHERE "slots"\."id" = \$\d+`).
		WillReturnRows(sqlmock.NewRows(slotCols))

	_, err := repo.UpdateIfStatus(
		context.Background(),
		999,
		domain.StatusAvailable,
		domain.ReserveChanges(42, "123456"),
	)
	require.Error(t, err)
	assert.Equal(t, "slot_not_found", httperr.BusinessCode(err))
}

func TestUpdateIfHeldByWrongHolder(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`UPDATE "slots" SET .* WHERE id = \$\d+ AND status = \$\d+ AND reserved_by_id = \$\d+ RETURNING`).
		WillReturnRows(sqlmock.NewRows(slotCols))
	mock.ExpectQuery(`SELECT \* FROM "slots" WHERE "slots"\."id" = \$\d+`).
		WillReturnRows(sqlmock.NewRows(slotCols).
			AddRow(7, "2025-06-01", "10:00 - 11:00", 399, "pending", 42, "123456"))

	_, err := repo.UpdateIfHeldBy(
		context.Background(),
		7,
		domain.StatusPending,
		43,
		domain.ConfirmChanges("654321", domain.PaymentOnline),
	)
	require.Error(t, err)
	assert.Equal(t, "not_slot_holder", httperr.BusinessCode(err))
}

func TestReleaseIfOccupiedReturnsClearedRow(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`UPDATE "slots" SET .* WHERE id = \$\d+ AND status <> \$\d+ RETURNING`).
		WillReturnRows(sqlmock.NewRows(slotCols).
			AddRow(7, "2025-06-01", "10:00 - 11:00", 399, "available", nil, nil))

	got, err := repo.ReleaseIfOccupied(context.Background(), 7, domain.ReleaseChanges())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusAvailable), got.Status)
	assert.Nil(t, got.ReservedByID)
	assert.Nil(t, got.RequestCode)

	// no holder, so no users lookup either
	assert.NoError(t, mock.ExpectationsWereMet())
}
