package create_time_slot

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_time_slot: internal error")
)
