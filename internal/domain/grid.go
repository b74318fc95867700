package domain

import (
	"time"

	"github.com/m04kA/SMC-TimeSlotService/pkg/types"
)

// GenerateGrid генерирует упорядоченную сетку всех слотов дня: 10:00-10:30, ..., 17:30-18:00.
// Слоты не заблокированы и не сохраняются в хранилище.
func GenerateGrid(date time.Time, userID int64) []*TimeSlot {
	grid := make([]*TimeSlot, 0, SlotsPerDay)
	day := DateOnly(date)

	for start := WorkingDayStartHour * 60; start < WorkingDayEndHour*60; start += SlotDurationMinutes {
		// Значения в пределах суток, ошибка невозможна
		startTime, _ := types.NewTimeStringFromMinutes(start)
		endTime, _ := startTime.AddMinutes(SlotDurationMinutes)

		grid = append(grid, &TimeSlot{
			Date:      day,
			StartTime: startTime,
			EndTime:   endTime,
			IsBlocked: false,
			UserID:    userID,
		})
	}

	return grid
}

// FilterAvailable возвращает слоты сетки, с которыми не пересекается ни один заблокированный слот.
// Порядок сетки сохраняется.
func FilterAvailable(grid []*TimeSlot, blocked []*TimeSlot) []*TimeSlot {
	available := make([]*TimeSlot, 0, len(grid))

	for _, candidate := range grid {
		if len(FindOverlapping(candidate.StartTime, candidate.EndTime, blocked, 0)) > 0 {
			continue
		}
		available = append(available, candidate)
	}

	return available
}
