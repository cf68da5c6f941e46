package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInputMalformedError(t *testing.T) {
	err := NewInputMalformedError("found 1 operand(s), need 2")

	assert.Equal(t, ErrCodeInputMalformed, err.Code)
	assert.Equal(t, "found 1 operand(s), need 2", err.Details)
	assert.False(t, err.Retryable)
	assert.Contains(t, err.Error(), "INPUT_MALFORMED")
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"capability failure", ErrCodeCapabilityFailed, "CAPABILITY"},
		{"permission", ErrCodePermissionRequired, "CAPABILITY"},
		{"contact lookup", ErrCodeContactNotFound, "CAPABILITY"},
		{"app launch", ErrCodeAppNotInstalled, "CAPABILITY"},
		{"ai not configured", ErrCodeAINotConfigured, "NETWORK"},
		{"weather lookup", ErrCodeWeatherUnavailable, "NETWORK"},
		{"timeout", ErrCodeNetworkTimeout, "NETWORK"},
		{"malformed input", ErrCodeInputMalformed, "INPUT"},
		{"divide by zero", ErrCodeDivideByZero, "INPUT"},
		{"unrecognized code", ErrorCode("SOMETHING_ELSE"), "OTHER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCategory(tt.code))
		})
	}
}
