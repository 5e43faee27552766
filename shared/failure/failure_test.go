package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"rooming/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{name: "bad request from error", err: failure.BadRequest(errors.New("checkOutDate must be after checkInDate")), wantCode: http.StatusBadRequest, wantMessage: "checkOutDate must be after checkInDate"},
		{name: "bad request from string", err: failure.BadRequestFromString("Invalid status"), wantCode: http.StatusBadRequest, wantMessage: "Invalid status"},
		{name: "unauthorized", err: failure.Unauthorized("Token has expired"), wantCode: http.StatusUnauthorized, wantMessage: "Token has expired"},
		{name: "not found", err: failure.NotFound("Rooming list not found"), wantCode: http.StatusNotFound, wantMessage: "Rooming list not found"},
		{name: "conflict", err: failure.Conflict("Booking is already linked to this rooming list"), wantCode: http.StatusConflict, wantMessage: "Booking is already linked to this rooming list"},
		{name: "internal", err: failure.InternalError(errors.New("pq: deadlock detected")), wantCode: http.StatusInternalServerError, wantMessage: "pq: deadlock detected"},
		{name: "invalid credentials", err: failure.InvalidCredentials, wantCode: http.StatusUnauthorized, wantMessage: "Invalid credentials"},
		{name: "empty update", err: failure.EmptyUpdate, wantCode: http.StatusBadRequest, wantMessage: "update request cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.wantMessage)
		})
	}
}

func TestNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to link booking: %w", failure.NotFound("Booking not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}

func TestIsCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to delete event: %w", failure.Conflict("Cannot delete event with existing rooming lists"))

	assert.True(t, failure.IsCode(wrapped, http.StatusConflict))
	assert.False(t, failure.IsCode(wrapped, http.StatusNotFound))
	assert.False(t, failure.IsCode(errors.New("plain"), http.StatusConflict))
}
