package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
)

const (
	msgInternalError      = "internal server error"
	msgInvalidRequestBody = "invalid request body"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON пишет ответ в формате JSON
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку {"error": message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondDecodeError отвечает 400 на ошибку DecodeJSON.
// Ошибки валидации возвращаются клиенту как есть.
func RespondDecodeError(w http.ResponseWriter, err error) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		RespondBadRequest(w, verrs.Error())
		return
	}
	RespondBadRequest(w, msgInvalidRequestBody)
}

// DomainErrorStatus возвращает HTTP статус для доменной ошибки.
// Второе значение false, если ошибка не относится к предметной области.
func DomainErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidTimeSlot),
		errors.Is(err, domain.ErrPastDateBooking),
		errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTimeSlotNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, true
	case errors.Is(err, domain.ErrTimeSlotOverlap):
		return http.StatusConflict, true
	default:
		return 0, false
	}
}

// RespondDomainError пишет доменную ошибку с её сообщением из каталога,
// остальные ошибки превращаются в 500 без деталей.
// Возвращает true, если ошибка была доменной.
func RespondDomainError(w http.ResponseWriter, err error) bool {
	status, ok := DomainErrorStatus(err)
	if !ok {
		RespondInternalError(w)
		return false
	}

	RespondError(w, status, domainMessage(err))
	return true
}

var domainErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrPastDateBooking,
	domain.ErrTimeSlotOverlap,
	domain.ErrInvalidTimeSlot,
	domain.ErrTimeSlotNotFound,
	domain.ErrPermissionDenied,
	domain.ErrInvalidDate,
}

// domainMessage возвращает текст исходной доменной ошибки без обёрток
func domainMessage(err error) string {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
