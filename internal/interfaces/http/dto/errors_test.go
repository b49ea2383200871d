package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{ErrCodeTokenRevoked, http.StatusUnauthorized},
		{"COMPANY_INACTIVE", http.StatusForbidden},
		{"ACCOUNT_INACTIVE", http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{"BATCH_NOT_FOUND", http.StatusNotFound},
		{"PAYMENT_NOT_FOUND", http.StatusNotFound},
		{"CHASSIS_ALREADY_EXISTS", http.StatusConflict},
		{"EMAIL_ALREADY_EXISTS", http.StatusConflict},
		{"BATCH_IN_USE", http.StatusConflict},
		{ErrCodeConflict, http.StatusConflict},
		{"PAYMENT_EXCEEDS_REMAINING", http.StatusBadRequest},
		{"UNKNOWN_BATCH", http.StatusBadRequest},
		{"STORAGE_DISABLED", http.StatusServiceUnavailable},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]int{1, 2}, 41, 2, 20)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 3, resp.Meta.TotalPages)

	empty := NewSuccessResponseWithMeta([]int{}, 0, 1, 20)
	assert.Equal(t, 0, empty.Meta.TotalPages)
}

func TestResponse_JSONShape(t *testing.T) {
	raw, err := json.Marshal(NewValidationErrorResponse([]FieldDetail{{Field: "salePrice", Message: "salePrice is required"}}))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"success":false,"error":{"code":"VALIDATION_ERROR","message":"Request validation failed","details":[{"field":"salePrice","message":"salePrice is required"}]}}`,
		string(raw))

	raw, err = json.Marshal(NewSuccessResponseWithMeta([]string{"a"}, 1, 1, 20))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"success":true,"data":["a"],"meta":{"total":1,"page":1,"pageSize":20,"totalPages":1}}`,
		string(raw))
}
