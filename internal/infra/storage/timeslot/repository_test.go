package timeslot_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	"github.com/m04kA/SMC-TimeSlotService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-TimeSlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimeSlotService/pkg/types"
)

var slotColumns = []string{
	"id", "date", "start_time", "end_time", "is_blocked",
	"user_id", "created_by", "created_at", "updated_at",
}

func setup(t *testing.T) (*timeslot.Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return timeslot.NewRepository(db), db, mock
}

func testDate() time.Time {
	return time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
}

func TestCreate(t *testing.T) {
	repo, _, mock := setup(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO time_slots \(date,start_time,end_time,is_blocked,user_id,created_by\)`).
		WithArgs("2026-10-20", types.TimeString("10:00"), types.TimeString("10:30"), true, int64(7), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	slot, err := repo.Create(context.Background(), &domain.TimeSlot{
		Date:      testDate(),
		StartTime: "10:00",
		EndTime:   "10:30",
		IsBlocked: true,
		UserID:    7,
		CreatedBy: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), slot.ID)
	assert.Equal(t, now, slot.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	repo, _, mock := setup(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(`INSERT INTO time_slots`).WillReturnError(dbErr)

	_, err := repo.Create(context.Background(), &domain.TimeSlot{Date: testDate(), StartTime: "10:00", EndTime: "10:30"})

	require.ErrorIs(t, err, timeslot.ErrExecQuery)
	require.ErrorIs(t, err, dbErr)
}

func TestGetByID(t *testing.T) {
	repo, _, mock := setup(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM time_slots WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(slotColumns).
			AddRow(int64(5), testDate(), "11:00:00", "12:00:00", true, int64(7), int64(8), now, now))

	slot, err := repo.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), slot.ID)
	assert.Equal(t, testDate(), slot.Date)
	assert.Equal(t, types.TimeString("11:00"), slot.StartTime)
	assert.Equal(t, types.TimeString("12:00"), slot.EndTime)
	assert.Equal(t, int64(8), slot.CreatedBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _, mock := setup(t)

	mock.ExpectQuery(`SELECT .* FROM time_slots WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(slotColumns))

	_, err := repo.GetByID(context.Background(), 404)

	require.ErrorIs(t, err, timeslot.ErrTimeSlotNotFound)
}

func TestGetBlocked_WithoutTransaction(t *testing.T) {
	repo, _, mock := setup(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM time_slots WHERE date = \$1 AND is_blocked = \$2 AND user_id = \$3 ORDER BY start_time ASC$`).
		WithArgs("2026-10-20", true, int64(7)).
		WillReturnRows(sqlmock.NewRows(slotColumns).
			AddRow(int64(1), testDate(), "10:00", "10:30", true, int64(7), int64(7), now, now).
			AddRow(int64(2), testDate(), "14:00", "15:00", true, int64(7), int64(7), now, now))

	slots, err := repo.GetBlocked(context.Background(), testDate(), 7)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("10:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("14:00"), slots[1].StartTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlocked_InTransactionLocksRows(t *testing.T) {
	repo, db, mock := setup(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM time_slots WHERE .* ORDER BY start_time ASC FOR UPDATE`).
		WithArgs("2026-10-20", true, int64(7)).
		WillReturnRows(sqlmock.NewRows(slotColumns))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), &dbmetrics.SqlTxWrapper{Tx: tx})

	slots, err := repo.GetBlocked(ctx, testDate(), 7)
	require.NoError(t, err)
	assert.Empty(t, slots)
	require.NotNil(t, slots)

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, _, mock := setup(t)
	updatedAt := time.Date(2026, 10, 14, 15, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`UPDATE time_slots SET date = \$1, start_time = \$2, end_time = \$3, created_by = \$4, updated_at = NOW\(\) WHERE id = \$5 RETURNING updated_at`).
		WithArgs("2026-10-20", types.TimeString("12:00"), types.TimeString("13:00"), int64(9), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

	slot := &domain.TimeSlot{
		ID:        5,
		Date:      testDate(),
		StartTime: "12:00",
		EndTime:   "13:00",
		CreatedBy: 9,
		UpdatedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	err := repo.Update(context.Background(), slot)

	require.NoError(t, err)
	assert.Equal(t, updatedAt, slot.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, _, mock := setup(t)

	mock.ExpectQuery(`UPDATE time_slots`).WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	err := repo.Update(context.Background(), &domain.TimeSlot{ID: 5, Date: testDate(), StartTime: "12:00", EndTime: "13:00"})

	require.ErrorIs(t, err, timeslot.ErrTimeSlotNotFound)
}

func TestDelete(t *testing.T) {
	repo, _, mock := setup(t)

	mock.ExpectExec(`DELETE FROM time_slots WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, _, mock := setup(t)

	mock.ExpectExec(`DELETE FROM time_slots WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), 5), timeslot.ErrTimeSlotNotFound)
}
