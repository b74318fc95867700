package domain

import (
	"time"

	"github.com/m04kA/SMC-TimeSlotService/pkg/types"
)

// IsWithinWorkingWindow проверяет, что оба времени лежат в окне 10:00-18:00.
// Часы обоих значений должны быть в [10, 18]; если конец в 18 часов, минуты должны быть нулевыми.
func IsWithinWorkingWindow(start, end types.TimeString) bool {
	startMinutes, err := start.Minutes()
	if err != nil {
		return false
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return false
	}

	startHour, endHour := startMinutes/60, endMinutes/60
	if startHour < WorkingDayStartHour || startHour > WorkingDayEndHour ||
		endHour < WorkingDayStartHour || endHour > WorkingDayEndHour {
		return false
	}

	if endHour == WorkingDayEndHour && endMinutes%60 > 0 {
		return false
	}

	return true
}

// IsAlignedAndPositive проверяет выравнивание начала по сетке
// и что длительность положительна и кратна длительности слота
func IsAlignedAndPositive(start, end types.TimeString) bool {
	startMinutes, err := start.Minutes()
	if err != nil {
		return false
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return false
	}

	duration := endMinutes - startMinutes
	return duration > 0 &&
		startMinutes%SlotDurationMinutes == 0 &&
		duration%SlotDurationMinutes == 0
}

// IsValidTimeRange парсит строки времени и проверяет диапазон.
// Ошибка парсинга означает невалидный диапазон.
func IsValidTimeRange(start, end string) bool {
	_, _, err := ParseTimeRange(start, end)
	return err == nil
}

// ParseTimeRange парсит и валидирует диапазон времени бронирования.
// Возвращает ErrInvalidTimeSlot при любой ошибке.
func ParseTimeRange(start, end string) (types.TimeString, types.TimeString, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return "", "", ErrInvalidTimeSlot
	}
	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return "", "", ErrInvalidTimeSlot
	}

	if !IsWithinWorkingWindow(startTime, endTime) || !IsAlignedAndPositive(startTime, endTime) {
		return "", "", ErrInvalidTimeSlot
	}

	return startTime, endTime, nil
}

// ParseDate парсит дату в формате YYYY-MM-DD.
// Возвращает ErrInvalidDate, если строка не является датой.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return DateOnly(date), nil
}

// IsTodayOrFuture проверяет, что дата не раньше текущего календарного дня.
// Сравниваются только даты; "сегодня" берётся в локации now.
func IsTodayOrFuture(date, now time.Time) bool {
	return !IsDateInPast(date, now)
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	dateOnly := DateOnly(date)
	nowOnly := DateOnly(now)
	return dateOnly.Before(nowOnly)
}

// DateOnly обнуляет время, сохраняя календарный день.
// Результат всегда в UTC, чтобы даты из разных локаций сравнивались по календарю.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
