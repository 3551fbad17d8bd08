package models

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorResponse(t *testing.T) {
	resp := ValidationErrorResponse([]FieldError{{Field: "title", Rule: "required", Message: "field required"}})

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"error": true,
		"message": "invalid request data",
		"status": 422,
		"data": [{"field": "title", "rule": "required", "message": "field required"}]
	}`, string(b))
}

func TestErrorResponse(t *testing.T) {
	resp := ErrorResponse(http.StatusNotFound, "not found", nil)
	assert.True(t, resp.Error)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Nil(t, resp.Data)
}
