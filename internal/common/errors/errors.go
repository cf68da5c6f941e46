// Package errors provides the standardized failure taxonomy for the command engine.
// Every failure a handler can hit maps to a spoken-back sentence; nothing escapes
// the dispatcher as a raw error.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Capability layer failures (device-facing operations).
	ErrCodeCapabilityFailed   ErrorCode = "CAPABILITY_FAILED"
	ErrCodePermissionRequired ErrorCode = "PERMISSION_REQUIRED"
	ErrCodeContactNotFound    ErrorCode = "CONTACT_NOT_FOUND"
	ErrCodeAppNotInstalled    ErrorCode = "APP_NOT_INSTALLED"

	// Network / remote lookup failures.
	ErrCodeAINotConfigured    ErrorCode = "AI_NOT_CONFIGURED"
	ErrCodeAIUnavailable      ErrorCode = "AI_UNAVAILABLE"
	ErrCodeWeatherUnavailable ErrorCode = "WEATHER_UNAVAILABLE"
	ErrCodeNetworkTimeout     ErrorCode = "NETWORK_TIMEOUT"

	// Malformed input (extractor could not find required parameters).
	ErrCodeInputMalformed ErrorCode = "INPUT_MALFORMED"
	ErrCodeDivideByZero   ErrorCode = "DIVIDE_BY_ZERO"
)

// StandardError represents a structured engine error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewCapabilityFailedError wraps a device capability failure.
func NewCapabilityFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCapabilityFailed,
		Message:   fmt.Sprintf("Capability operation '%s' failed", operation),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPermissionRequiredError creates a non-retryable permission error.
func NewPermissionRequiredError(permission string) *StandardError {
	return &StandardError{
		Code:      ErrCodePermissionRequired,
		Message:   "Required permission is not granted",
		Details:   fmt.Sprintf("permission: %s", permission),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewContactNotFoundError creates a non-retryable directory lookup miss.
func NewContactNotFoundError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeContactNotFound,
		Message:   "Contact not found in directory",
		Details:   fmt.Sprintf("namePattern: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAppNotInstalledError creates a non-retryable missing app error.
func NewAppNotInstalledError(appName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAppNotInstalled,
		Message:   "Requested app is not installed",
		Details:   fmt.Sprintf("appName: %s", appName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAINotConfiguredError reports a missing AI credential so the operator
// knows to supply configuration.
func NewAINotConfiguredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeAINotConfigured,
		Message:   "AI endpoint credential is not configured",
		Details:   "set the AI API key in configuration",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAIUnavailableError wraps an AI endpoint failure (non-success status,
// malformed payload, or transport error).
func NewAIUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAIUnavailable,
		Message:   "AI endpoint request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewWeatherUnavailableError wraps a weather endpoint failure.
func NewWeatherUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeWeatherUnavailable,
		Message:   "Weather endpoint request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNetworkTimeoutError creates a retryable remote lookup timeout error.
func NewNetworkTimeoutError(service string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNetworkTimeout,
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   "call exceeded the configured timeout",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputMalformedError creates a non-retryable extraction error.
func NewInputMalformedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputMalformed,
		Message:   "Could not extract required parameters from transcript",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDivideByZeroError creates a non-retryable arithmetic error.
func NewDivideByZeroError() *StandardError {
	return &StandardError{
		Code:      ErrCodeDivideByZero,
		Message:   "Division by zero requested",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// GetErrorCategory returns the failure category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CAPABILITY") || strings.Contains(codeStr, "PERMISSION") ||
		strings.Contains(codeStr, "CONTACT") || strings.Contains(codeStr, "APP"):
		return "CAPABILITY"
	case strings.Contains(codeStr, "AI") || strings.Contains(codeStr, "WEATHER") ||
		strings.Contains(codeStr, "NETWORK"):
		return "NETWORK"
	case strings.Contains(codeStr, "INPUT") || strings.Contains(codeStr, "DIVIDE"):
		return "INPUT"
	default:
		return "OTHER"
	}
}
