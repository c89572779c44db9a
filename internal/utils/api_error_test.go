package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsAPIErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("get planet: %w", NotFound("Planet not found"))

	apiErr, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Planet not found", apiErr.Error())
}

func TestAsAPIErrorOtherErrors(t *testing.T) {
	_, ok := AsAPIError(errors.New("connection refused"))
	assert.False(t, ok)
}

func TestBodies(t *testing.T) {
	assert.Equal(t, map[string]string{"error": "User ID is required"}, ErrorBody("User ID is required"))
	assert.Equal(t, map[string]string{"message": "ok"}, MessageBody("ok"))
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").StatusCode)
}
