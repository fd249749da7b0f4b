package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{NewAuthError("Token is invalid", nil), http.StatusUnauthorized},
		{NewNotFoundError("User not found", nil), http.StatusNotFound},
		{NewValidationError("invalid date", nil), http.StatusBadRequest},
		{NewBadRequestError("bad body", nil), http.StatusBadRequest},
		{NewConflictError("User already registered", nil), http.StatusConflict},
		{NewTooManyRequestsError("slow down"), http.StatusTooManyRequests},
		{NewDatabaseError("db down", nil), http.StatusInternalServerError},
		{NewInternalError("boom", nil), http.StatusInternalServerError},
		{NewAppError(UnknownError, "??", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.StatusCode(), tc.err.Message)
	}
}

func TestErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("failed to find user", cause)

	assert.Equal(t, "failed to find user: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, err.IsServerError())
	assert.Equal(t, ErrorResponse{Message: "failed to find user"}, err.ToResponse())
}

func TestFromErrorFindsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewConflictError("User already registered", nil))

	ae, ok := FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ConflictError, ae.Type)
	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsNotFound(wrapped))

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
	_, ok = FromError(nil)
	assert.False(t, ok)
}
