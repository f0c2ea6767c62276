package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUserNotFound, "user not found"),
			expected: "USER_NOT_FOUND: user not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeDatabaseError, "database error", errors.New("connection failed")),
			expected: "DATABASE_ERROR: database error (caused by: connection failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	err := Wrap(ErrCodeInternalError, "wrapped error", cause)

	unwrapped := errors.Unwrap(err)
	assert.Equal(t, cause, unwrapped)
}

func TestAppError_WithContext(t *testing.T) {
	err := New(ErrCodeUserNotFound, "user not found")
	err.WithContext("user_id", "123")

	assert.Equal(t, "123", err.Context["user_id"])
}

func TestNew(t *testing.T) {
	err := New(ErrCodeUserNotFound, "user not found")

	assert.Equal(t, ErrCodeUserNotFound, err.Code)
	assert.Equal(t, "user not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Nil(t, err.Cause)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeUserNotFound, "user %s not found", "john")

	assert.Equal(t, "user john not found", err.Message)
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrCodeProfileNotFound, http.StatusNotFound},
		{ErrCodeUserExists, http.StatusConflict},
		{ErrCodeInvalidUserRole, http.StatusBadRequest},
		{ErrCodeKratosError, http.StatusServiceUnavailable},
		{ErrCodeDatabaseError, http.StatusInternalServerError},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, New(tt.code, "x").StatusCode)
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NewKratosError(errors.New("timeout"))

	got, ok := AsAppError(appErr)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeKratosError, got.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestGetHTTPStatusCode_NonAppError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
}
