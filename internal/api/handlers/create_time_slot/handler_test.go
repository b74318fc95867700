package create_time_slot_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handler "github.com/m04kA/SMC-TimeSlotService/internal/api/handlers/create_time_slot"
	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	"github.com/m04kA/SMC-TimeSlotService/internal/testutil"
	createTimeSlot "github.com/m04kA/SMC-TimeSlotService/internal/usecase/create_time_slot"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createTimeSlot.Request) (*createTimeSlot.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createTimeSlot.Response)
	return resp, args.Error(1)
}

const validBody = `{"userId":1,"createdBy":1,"date":"2099-01-01","startTime":"10:00","endTime":"10:30"}`

func serve(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/time-slots", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.NewHandler(uc, testutil.Logger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &createTimeSlot.Request{
		UserID:    1,
		CreatedBy: 1,
		Date:      "2099-01-01",
		StartTime: "10:00",
		EndTime:   "10:30",
	}).Return(&createTimeSlot.Response{
		ID:        5,
		Date:      time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "10:30",
		IsBlocked: true,
		UserID:    1,
		CreatedBy: 1,
	}, nil)

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
	assert.Contains(t, rec.Body.String(), `"date":"2099-01-01"`)
	assert.Contains(t, rec.Body.String(), `"startTime":"10:00"`)
	assert.Contains(t, rec.Body.String(), `"isBlocked":true`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantBody   string
	}{
		{name: "malformed json", body: `{"userId":`, wantStatus: http.StatusBadRequest},
		{name: "missing user", body: `{"createdBy":1,"date":"2099-01-01","startTime":"10:00","endTime":"10:30"}`, wantStatus: http.StatusBadRequest, wantBody: "UserID"},
		{name: "bad date", body: `{"userId":1,"createdBy":1,"date":"01/01/2099","startTime":"10:00","endTime":"10:30"}`, ucErr: domain.ErrInvalidDate, wantStatus: http.StatusBadRequest, wantBody: domain.ErrInvalidDate.Error()},
		{name: "invalid slot", body: validBody, ucErr: domain.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest, wantBody: domain.ErrInvalidTimeSlot.Error()},
		{name: "past date", body: validBody, ucErr: domain.ErrPastDateBooking, wantStatus: http.StatusBadRequest},
		{name: "user not found", body: validBody, ucErr: domain.ErrUserNotFound, wantStatus: http.StatusNotFound, wantBody: "User not found"},
		{name: "overlap", body: validBody, ucErr: domain.ErrTimeSlotOverlap, wantStatus: http.StatusConflict},
		{name: "internal", body: validBody, ucErr: errors.Join(createTimeSlot.ErrInternal, errors.New("db down")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(uc, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestHandle_ValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{
			name:     "time range checked before malformed date",
			body:     `{"userId":1,"createdBy":1,"date":"01/01/2099","startTime":"09:00","endTime":"09:30"}`,
			wantBody: domain.ErrInvalidTimeSlot.Error(),
		},
		{
			name:     "malformed date with valid time range",
			body:     `{"userId":1,"createdBy":1,"date":"01/01/2099","startTime":"10:00","endTime":"10:30"}`,
			wantBody: domain.ErrInvalidDate.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewSlotStore()
			uc := createTimeSlot.NewUseCase(store, testutil.Users{1: true}, testutil.TxManager{}, &testutil.Metrics{}, testutil.Logger{})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/time-slots", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.NewHandler(uc, testutil.Logger{}).Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Zero(t, store.Writes())
		})
	}
}
