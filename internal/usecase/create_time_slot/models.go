package create_time_slot

import (
	"time"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	"github.com/m04kA/SMC-TimeSlotService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	UserID    int64     // Владелец бронирования
	CreatedBy int64     // Актор, выполняющий бронирование
	Date      string // "YYYY-MM-DD"
	StartTime string // "HH:MM" или "HH:MM:SS"
	EndTime   string
}

// Response модель созданного слота
type Response struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBlocked bool
	UserID    int64
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(slot *domain.TimeSlot) *Response {
	return &Response{
		ID:        slot.ID,
		Date:      slot.Date,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		IsBlocked: slot.IsBlocked,
		UserID:    slot.UserID,
		CreatedBy: slot.CreatedBy,
		CreatedAt: slot.CreatedAt,
		UpdatedAt: slot.UpdatedAt,
	}
}
