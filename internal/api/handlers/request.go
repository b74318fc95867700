package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

var (
	// ErrEmptyBody возвращается, когда тело запроса пустое
	ErrEmptyBody = errors.New("request body is empty")

	// ErrInvalidParam возвращается при некорректном параметре пути или запроса
	ErrInvalidParam = errors.New("invalid parameter")
)

var validate = validator.New()

// ValidationError ошибка валидации одного поля
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors ошибки валидации тела запроса
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// DecodeJSON читает JSON тело запроса в v и проверяет теги validate
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	return Validate(v)
}

// Validate проверяет структуру по тегам validate
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	result := make(ValidationErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		message := fe.Error()
		switch fe.Tag() {
		case "required":
			message = "is required"
		case "gt":
			message = fmt.Sprintf("must be greater than %s", fe.Param())
		}
		result = append(result, ValidationError{Field: fe.Field(), Message: message})
	}
	return result
}

// PathInt64 читает положительный int64 параметр пути
func PathInt64(r *http.Request, name string) (int64, error) {
	return parsePositiveInt64(name, mux.Vars(r)[name])
}

// QueryInt64 читает положительный int64 параметр строки запроса
func QueryInt64(r *http.Request, name string) (int64, error) {
	return parsePositiveInt64(name, r.URL.Query().Get(name))
}

func parsePositiveInt64(name, raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidParam, name)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidParam, name)
	}
	return value, nil
}
