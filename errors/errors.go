package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine readable error kind
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"

	// Catalog errors
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeRoomUnavailable ErrorCode = "ROOM_UNAVAILABLE"

	// Booking errors
	ErrCodePaymentFailed    ErrorCode = "PAYMENT_FAILED"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// FieldError describes one invalid form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the application error carried up to the HTTP layer
type AppError struct {
	Code    ErrorCode
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a VALIDATION_ERROR carrying field errors
func NewValidationError(message string, fields []FieldError) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Fields:  fields,
	}
}

// IsAppError reports whether err wraps an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Is and As re-export the standard helpers so callers need a single errors import
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")

	// Catalog errors
	ErrPropertyNotFound = errors.New("property not found")
	ErrRoomNotFound     = errors.New("room type not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentFailed   = errors.New("payment failed")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
