package update_time_slot

import (
	"time"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	"github.com/m04kA/SMC-TimeSlotService/pkg/types"
)

// Request модель запроса на перенос слота
type Request struct {
	ID        int64  // ID изменяемого слота
	ActorID   int64  // Кто изменяет; становится новым created_by
	Date      string // Новая дата, "YYYY-MM-DD"
	StartTime string
	EndTime   string
}

// Response модель слота после изменения
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
