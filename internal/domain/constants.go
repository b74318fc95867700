package domain

// Working window and slot granularity
const (
	WorkingDayStartHour = 10
	WorkingDayEndHour   = 18
	SlotDurationMinutes = 30

	// SlotsPerDay количество слотов в сетке одного дня (10:00-18:00 по 30 минут)
	SlotsPerDay = (WorkingDayEndHour - WorkingDayStartHour) * 60 / SlotDurationMinutes
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
