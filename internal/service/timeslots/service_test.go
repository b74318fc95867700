package timeslots_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	"github.com/m04kA/SMC-TimeSlotService/internal/service/timeslots"
	"github.com/m04kA/SMC-TimeSlotService/internal/testutil"
)

var farDate = time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*timeslots.Service, *testutil.SlotStore, *testutil.Metrics, *domain.TimeSlot) {
	t.Helper()
	store := testutil.NewSlotStore()
	metrics := &testutil.Metrics{}

	slot, err := store.Create(context.Background(), &domain.TimeSlot{
		Date: farDate, StartTime: "10:00", EndTime: "10:30", IsBlocked: true, UserID: 1, CreatedBy: 2,
	})
	require.NoError(t, err)

	return timeslots.NewService(store, testutil.TxManager{}, metrics, testutil.Logger{}), store, metrics, slot
}

func TestGetByID(t *testing.T) {
	svc, _, _, slot := setup(t)

	resp, err := svc.GetByID(context.Background(), slot.ID)

	require.NoError(t, err)
	assert.Equal(t, slot.ID, resp.ID)
	assert.Equal(t, "2099-01-01", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:30", resp.EndTime)
	assert.True(t, resp.IsBlocked)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, int64(2), resp.CreatedBy)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _, _ := setup(t)

	_, err := svc.GetByID(context.Background(), 999)

	require.ErrorIs(t, err, domain.ErrTimeSlotNotFound)
}

// Сценарий: чужой актор не может удалить слот, владелец может, повторное удаление не находит слот
func TestDelete_Permissions(t *testing.T) {
	svc, store, metrics, slot := setup(t)

	err := svc.Delete(context.Background(), slot.ID, 3)
	require.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = store.GetByID(context.Background(), slot.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), slot.ID, 1))

	err = svc.Delete(context.Background(), slot.ID, 1)
	require.ErrorIs(t, err, domain.ErrTimeSlotNotFound)

	assert.Equal(t, []string{"delete:rejected", "delete:success", "delete:rejected"}, metrics.Calls)
}

func TestDelete_ByCreator(t *testing.T) {
	svc, _, _, slot := setup(t)

	require.NoError(t, svc.Delete(context.Background(), slot.ID, 2))
}

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	args := m.Called(ctx, id)
	slot, _ := args.Get(0).(*domain.TimeSlot)
	return slot, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestDelete_RepositoryError(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.TimeSlot{ID: 5, UserID: 1, CreatedBy: 1}, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(dbErr)
	metrics := &testutil.Metrics{}

	svc := timeslots.NewService(repo, testutil.TxManager{}, metrics, testutil.Logger{})
	err := svc.Delete(context.Background(), 5, 1)

	require.ErrorIs(t, err, timeslots.ErrInternal)
	require.ErrorIs(t, err, dbErr)
	assert.Equal(t, []string{"delete:error"}, metrics.Calls)
	repo.AssertExpectations(t)
}
