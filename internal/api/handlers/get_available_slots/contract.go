package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/SMC-TimeSlotService/internal/usecase/get_available_slots"
)

// AvailableSlotsFinder свободные слоты сетки пользователя на дату
type AvailableSlotsFinder interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger handler пишет только отказы и сбои
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
