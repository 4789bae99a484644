// Package response defines the unified API response envelope.
package response

import (
	"net/http"

	domainerrors "taxiads/internal/domain/errors"
	"taxiads/internal/domain/repository"
	"taxiads/internal/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "DEVICE_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError converts domain errors to the envelope, promoting repository
// sentinels to their AppError equivalents first. Anything unmapped propagates
// to the echo error handler as a 500.
func HandleAppError(c echo.Context, err error) error {
	err = promoteSentinel(err)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// promoteSentinel maps repository sentinel errors onto the AppError table so
// the persistence layer never needs to know HTTP codes.
func promoteSentinel(err error) error {
	switch {
	case errors.Is(err, repository.ErrDeviceNotFound):
		return domainerrors.ErrDeviceNotFound
	case errors.Is(err, repository.ErrDuplicateDevice):
		return domainerrors.ErrDeviceAlreadyExists
	case errors.Is(err, repository.ErrAdvertisementNotFound):
		return domainerrors.ErrAdvertisementNotFound
	case errors.Is(err, repository.ErrDuplicateAdvertisement):
		return domainerrors.ErrAdvertisementAlreadyExists
	case errors.Is(err, repository.ErrCampaignNotFound):
		return domainerrors.ErrCampaignNotFound
	case errors.Is(err, repository.ErrDuplicateCampaign):
		return domainerrors.ErrCampaignAlreadyExists
	default:
		return err
	}
}
