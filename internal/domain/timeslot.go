package domain

import (
	"time"

	"github.com/m04kA/SMC-TimeSlotService/pkg/types"
)

// User пользователь, на которого ссылаются слоты. Сервис пользователей не изменяет
type User struct {
	ID int64
}

// TimeSlot забронированный (IsBlocked) или свободный интервал дня
type TimeSlot struct {
	ID        int64 // 0 для кандидатов сетки, назначается хранилищем при создании
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBlocked bool
	UserID    int64 // Владелец слота (для кого бронирование)
	CreatedBy int64 // Актор, создавший бронирование

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeModifiedBy проверяет, что актор является создателем или владельцем слота
func (s *TimeSlot) CanBeModifiedBy(actorID int64) bool {
	return actorID == s.CreatedBy || actorID == s.UserID
}

// Overlaps проверяет пересечение кандидата с этим слотом как существующим бронированием
func (s *TimeSlot) Overlaps(candidateStart, candidateEnd types.TimeString) bool {
	return Overlaps(candidateStart, candidateEnd, s.StartTime, s.EndTime)
}
