package models

import (
	"time"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
)

// TimeSlotResponse модель слота для ответа API
type TimeSlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsBlocked bool      `json:"isBlocked"`
	UserID    int64     `json:"userId"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainTimeSlot конвертирует доменную модель в модель ответа
func FromDomainTimeSlot(slot *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:        slot.ID,
		Date:      slot.Date.Format(domain.DateFormat),
		StartTime: slot.StartTime.String(),
		EndTime:   slot.EndTime.String(),
		IsBlocked: slot.IsBlocked,
		UserID:    slot.UserID,
		CreatedBy: slot.CreatedBy,
		CreatedAt: slot.CreatedAt,
		UpdatedAt: slot.UpdatedAt,
	}
}
