package get_time_slot_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	handler "github.com/m04kA/SMC-TimeSlotService/internal/api/handlers/get_time_slot"
	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	"github.com/m04kA/SMC-TimeSlotService/internal/service/timeslots/models"
	"github.com/m04kA/SMC-TimeSlotService/internal/testutil"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.TimeSlotResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.TimeSlotResponse)
	return resp, args.Error(1)
}

func serve(svc *mockService, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/time-slots/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	handler.NewHandler(svc, testutil.Logger{}).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, int64(3)).Return(&models.TimeSlotResponse{
		ID: 3, Date: "2099-01-01", StartTime: "10:00", EndTime: "10:30", IsBlocked: true, UserID: 1, CreatedBy: 1,
	}, nil)

	rec := serve(svc, "3")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"endTime":"10:30"`)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrTimeSlotNotFound)

	rec := serve(svc, "3")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"The time slot with the given ID does not exist"}`, rec.Body.String())
}

func TestHandle_BadID(t *testing.T) {
	rec := serve(&mockService{}, "-1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
