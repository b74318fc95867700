package update_time_slot

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_time_slot: internal error")
)
