package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatusAndBody(t *testing.T) {
	tests := []struct {
		name    string
		err     *AppError
		status  int
		message string
	}{
		{"malformed id", NewMalformedIDError(), fiber.StatusBadRequest, "malformatted id"},
		{"validation", NewValidationError("title is required"), fiber.StatusBadRequest, "title is required"},
		{"duplicate username", NewDuplicateUsernameError(), fiber.StatusBadRequest, "expected `username` to be unique"},
		{"token invalid", NewTokenInvalidError(), fiber.StatusUnauthorized, "token invalid"},
		{"token expired", NewTokenExpiredError(), fiber.StatusUnauthorized, "token expired"},
		{"token missing", NewTokenMissingError(), fiber.StatusUnauthorized, "token missing"},
		{"invalid credentials", NewInvalidCredentialsError(), fiber.StatusUnauthorized, "invalid username or password"},
		// Ownership denial is 400, not 403, for API compatibility.
		{"insufficient permissions", NewPermissionError(), fiber.StatusBadRequest, "Insufficient Permissions"},
		{"unknown endpoint", NewUnknownEndpointError(), fiber.StatusNotFound, "unknown endpoint"},
		{"internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status())
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	wrapped := fmt.Errorf("saving user: %w", err)
	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, CodeInternal, appErr.Code)
}
