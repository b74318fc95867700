package create_time_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	GetBlocked(ctx context.Context, date time.Time, userID int64) ([]*domain.TimeSlot, error)
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
}

// UserProvider интерфейс проверки существования пользователя
type UserProvider interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsRecorder интерфейс для учёта операций со слотами
type MetricsRecorder interface {
	IncTimeSlotOperation(operation, result string)
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
