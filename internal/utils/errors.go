package utils

import (
	"fmt"
	"net/http"
)

// AppError is an error that knows which HTTP status it should be reported with.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message}
}

func NewRequestTimeoutError(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusRequestTimeout, Message: message, Err: err}
}

func NewPayloadTooLargeError(message string) *AppError {
	return &AppError{StatusCode: http.StatusRequestEntityTooLarge, Message: message}
}

func NewUnsupportedMediaTypeError(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusUnsupportedMediaType, Message: message, Err: err}
}

func NewUnprocessableError(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusUnprocessableEntity, Message: message, Err: err}
}
