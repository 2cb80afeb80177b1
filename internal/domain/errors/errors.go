package errors

import (
	"net/http"

	"fuelradar/internal/errors"
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
	// Input validation errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Datos de entrada no válidos",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"La validación de los datos ha fallado",
		"",
	)

	// Catalog errors
	ErrUnknownFuel = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_FUEL",
		"Tipo de combustible desconocido",
		"",
	)

	ErrUnknownMunicipality = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_MUNICIPALITY",
		"Municipio desconocido",
		"",
	)

	// Price data errors
	ErrNoPriceData = NewBaseError(
		http.StatusNotFound,
		"NO_PRICE_DATA",
		"No hay precios disponibles",
		"",
	)

	ErrNoFeedImport = NewBaseError(
		http.StatusServiceUnavailable,
		"NO_FEED_IMPORT",
		"Los datos de precios aún no se han cargado",
		"",
	)

	ErrFeedUnavailable = NewBaseError(
		http.StatusBadGateway,
		"FEED_UNAVAILABLE",
		"No se pudo obtener el listado de precios",
		"",
	)

	// Alert errors
	ErrInvalidThreshold = NewBaseError(
		http.StatusBadRequest,
		"INVALID_THRESHOLD",
		"El precio límite debe ser mayor que 0 y como máximo 10 €",
		"",
	)

	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"No se encontró la alerta",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"Código QR no válido",
		"",
	)

	ErrQRCodeGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QR_CODE_GENERATION_FAILED",
		"No se pudo generar el código QR",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Autenticación requerida",
		"",
	)

	ErrInvalidTelegramLogin = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TELEGRAM_LOGIN",
		"Los datos de inicio de sesión de Telegram no son válidos",
		"",
	)

	ErrTelegramLoginExpired = NewBaseError(
		http.StatusUnauthorized,
		"TELEGRAM_LOGIN_EXPIRED",
		"El inicio de sesión de Telegram ha caducado",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"La transacción de base de datos ha fallado",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
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
	return "Error al ejecutar la operación en la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
