package create_time_slot

import (
	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	"github.com/m04kA/SMC-TimeSlotService/internal/service/timeslots/models"
	createTimeSlot "github.com/m04kA/SMC-TimeSlotService/internal/usecase/create_time_slot"
)

// CreateTimeSlotRequest HTTP request model
type CreateTimeSlotRequest struct {
	UserID    int64  `json:"userId" validate:"required,gt=0"`
	CreatedBy int64  `json:"createdBy" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required"`      // "2025-10-15"
	StartTime string `json:"startTime" validate:"required"` // "10:00"
	EndTime   string `json:"endTime" validate:"required"`   // "10:30"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата и время не парсятся здесь: порядок проверок задаёт use case.
func (r *CreateTimeSlotRequest) ToUseCaseRequest() *createTimeSlot.Request {
	return &createTimeSlot.Request{
		UserID:    r.UserID,
		CreatedBy: r.CreatedBy,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTimeSlot.Response) *models.TimeSlotResponse {
	return models.FromDomainTimeSlot(&domain.TimeSlot{
		ID:        resp.ID,
		Date:      resp.Date,
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		IsBlocked: resp.IsBlocked,
		UserID:    resp.UserID,
		CreatedBy: resp.CreatedBy,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	})
}
