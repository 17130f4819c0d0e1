package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON body for every client-visible failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error codes classify failures at the point of detection. Each failure
// carries exactly one code; the dispatcher translates codes to HTTP.
const (
	CodeMalformedID             = "MALFORMED_ID"
	CodeValidation              = "VALIDATION_ERROR"
	CodeDuplicateUsername       = "DUPLICATE_USERNAME"
	CodeTokenInvalid            = "TOKEN_INVALID"
	CodeTokenExpired            = "TOKEN_EXPIRED"
	CodeTokenMissing            = "TOKEN_MISSING"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	CodeUnknownEndpoint         = "UNKNOWN_ENDPOINT"
	CodeInternal                = "INTERNAL_ERROR"
)

// AppError is a tagged application error carried untranslated from the
// point of detection to the error dispatcher.
type AppError struct {
	Code    string
	Message string
	Err     error
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

// Status maps the error code to its HTTP status. Ownership denials are
// 400 rather than 403 for compatibility with the existing API.
func (e *AppError) Status() int {
	switch e.Code {
	case CodeMalformedID, CodeValidation, CodeDuplicateUsername, CodeInsufficientPermissions:
		return fiber.StatusBadRequest
	case CodeTokenInvalid, CodeTokenExpired, CodeTokenMissing, CodeInvalidCredentials:
		return fiber.StatusUnauthorized
	case CodeUnknownEndpoint:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Predefined error constructors

func NewMalformedIDError() *AppError {
	return &AppError{Code: CodeMalformedID, Message: "malformatted id"}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewDuplicateUsernameError() *AppError {
	return &AppError{Code: CodeDuplicateUsername, Message: "expected `username` to be unique"}
}

func NewTokenInvalidError() *AppError {
	return &AppError{Code: CodeTokenInvalid, Message: "token invalid"}
}

func NewTokenExpiredError() *AppError {
	return &AppError{Code: CodeTokenExpired, Message: "token expired"}
}

func NewTokenMissingError() *AppError {
	return &AppError{Code: CodeTokenMissing, Message: "token missing"}
}

func NewInvalidCredentialsError() *AppError {
	return &AppError{Code: CodeInvalidCredentials, Message: "invalid username or password"}
}

func NewPermissionError() *AppError {
	return &AppError{Code: CodeInsufficientPermissions, Message: "Insufficient Permissions"}
}

func NewUnknownEndpointError() *AppError {
	return &AppError{Code: CodeUnknownEndpoint, Message: "unknown endpoint"}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal server error", Err: err}
}
