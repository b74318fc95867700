package create_time_slot

import (
	"context"

	createTimeSlot "github.com/m04kA/SMC-TimeSlotService/internal/usecase/create_time_slot"
)

// TimeSlotBooker бронирует слот для пользователя от имени актора
type TimeSlotBooker interface {
	Execute(ctx context.Context, req *createTimeSlot.Request) (*createTimeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
