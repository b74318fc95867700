package update_time_slot

import (
	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	"github.com/m04kA/SMC-TimeSlotService/internal/service/timeslots/models"
	updateTimeSlot "github.com/m04kA/SMC-TimeSlotService/internal/usecase/update_time_slot"
)

// UpdateTimeSlotRequest HTTP request model
type UpdateTimeSlotRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	CreatedBy int64  `json:"createdBy" validate:"required,gt=0"` // Актор, выполняющий изменение
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateTimeSlotRequest) ToUseCaseRequest(id int64) *updateTimeSlot.Request {
	return &updateTimeSlot.Request{
		ID:        id,
		ActorID:   r.CreatedBy,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateTimeSlot.Response) *models.TimeSlotResponse {
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
