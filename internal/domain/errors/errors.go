// Package errors defines the application-level error taxonomy shared by the
// delivery layers.
package errors

import (
	"net/http"

	"taxiads/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"找不到該設備",
		"",
	)

	ErrDeviceAlreadyExists = NewBaseError(
		http.StatusConflict,
		"DEVICE_ALREADY_EXISTS",
		"此設備 ID 已被註冊",
		"",
	)

	ErrDeviceNotRegistered = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_NOT_REGISTERED",
		"設備未註冊，請先發送 register 事件",
		"",
	)

	// Advertisement-related errors
	ErrAdvertisementNotFound = NewBaseError(
		http.StatusNotFound,
		"ADVERTISEMENT_NOT_FOUND",
		"找不到該廣告",
		"",
	)

	ErrAdvertisementAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADVERTISEMENT_ALREADY_EXISTS",
		"此廣告 ID 已存在",
		"",
	)

	// Campaign-related errors
	ErrCampaignNotFound = NewBaseError(
		http.StatusNotFound,
		"CAMPAIGN_NOT_FOUND",
		"找不到該活動",
		"",
	)

	ErrCampaignAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CAMPAIGN_ALREADY_EXISTS",
		"此活動 ID 已存在",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"經緯度範圍無效",
		"",
	)

	// Chunked transfer errors
	ErrUploadSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"UPLOAD_SESSION_NOT_FOUND",
		"找不到上傳會話或會話已過期",
		"",
	)

	ErrFileTypeNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"FILE_TYPE_NOT_ALLOWED",
		"不支援的影片檔案類型",
		"",
	)

	ErrFileSizeExceeded = NewBaseError(
		http.StatusBadRequest,
		"FILE_SIZE_EXCEEDED",
		"檔案大小超過上限",
		"",
	)

	ErrChunkCountExceeded = NewBaseError(
		http.StatusBadRequest,
		"CHUNK_COUNT_EXCEEDED",
		"分片數量超過上限",
		"",
	)

	ErrChunkIndexOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"CHUNK_INDEX_OUT_OF_RANGE",
		"分片編號超出範圍",
		"",
	)

	ErrIncompleteTransfer = NewBaseError(
		http.StatusBadRequest,
		"INCOMPLETE_TRANSFER",
		"分片尚未全部上傳，無法完成合併",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
