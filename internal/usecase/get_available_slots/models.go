package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TimeSlotService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	UserID int64
	Date   string // "YYYY-MM-DD"; некорректная строка означает ErrInvalidDate
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date   time.Time
	UserID int64
	Slots  []Slot // В порядке сетки
}

// Slot свободный слот сетки
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
