package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	// GetBlocked получает все заблокированные слоты пользователя на дату
	GetBlocked(ctx context.Context, date time.Time, userID int64) ([]*domain.TimeSlot, error)
}

// UserProvider интерфейс проверки существования пользователя
type UserProvider interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
