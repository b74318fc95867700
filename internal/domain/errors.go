package domain

import "errors"

// Ошибки предметной области. Тексты ошибок стабильны и показываются пользователю.
var (
	ErrUserNotFound     = errors.New("User not found")
	ErrPastDateBooking  = errors.New("Booking time slots for past dates is not allowed.")
	ErrTimeSlotOverlap  = errors.New("The selected time slot overlaps with an existing booking.")
	ErrInvalidTimeSlot  = errors.New("The selected time slot is invalid.")
	ErrTimeSlotNotFound = errors.New("The time slot with the given ID does not exist")
	ErrPermissionDenied = errors.New("You do not have permission to update this time slot.")
	ErrInvalidDate      = errors.New("The provided date is invalid.")
)
