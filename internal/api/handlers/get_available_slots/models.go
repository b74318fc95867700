package get_available_slots

import (
	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TimeSlotService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date   string         `json:"date"`
	UserID int64          `json:"userId"`
	Slots  []SlotResponse `json:"slots"`
}

// SlotResponse свободный слот
type SlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBlocked bool   `json:"isBlocked"`
	UserID    int64  `json:"userId"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	date := resp.Date.Format(domain.DateFormat)

	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Date:      date,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			IsBlocked: false,
			UserID:    resp.UserID,
		})
	}

	return &AvailableSlotsResponse{
		Date:   date,
		UserID: resp.UserID,
		Slots:  slots,
	}
}
