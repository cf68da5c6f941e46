// Package telephony handles call and send-message intents through the host's
// dialer and messaging capabilities.
package telephony

import (
	"fmt"

	stderrors "voice-command-engine/internal/common/errors"
	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/metrics"
	"voice-command-engine/internal/engine/capability"
)

const HandlerName = "telephony"

type Handler struct {
	provider capability.Provider
	logger   logger.Logger
}

func NewHandler(provider capability.Provider, log logger.Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

func (h *Handler) fail(intent string, stdErr *stderrors.StandardError) {
	metrics.CommandFailures.WithLabelValues(intent, string(stdErr.Code)).Inc()
	h.logger.WithError(stdErr).Warn("telephony operation failed", map[string]interface{}{
		"intent":   intent,
		"category": stderrors.GetErrorCategory(stdErr.Code),
	})
}

// Call resolves the contact name to a number (case-insensitive partial match,
// first match wins, no disambiguation) and dials it. The telephony permission
// is checked before any lookup is attempted.
func (h *Handler) Call(contactName string) string {
	if !h.provider.HasPermission(capability.PermissionPhoneCall) {
		h.fail("call", stderrors.NewPermissionRequiredError(string(capability.PermissionPhoneCall)))
		return "Phone call permission required."
	}

	number, ok, err := h.provider.LookupContactNumber(contactName)
	if err != nil {
		h.fail("call", stderrors.NewCapabilityFailedError("lookupContactNumber", err))
		return fmt.Sprintf("Unable to make call: %s", err.Error())
	}
	if !ok {
		h.fail("call", stderrors.NewContactNotFoundError(contactName))
		return fmt.Sprintf("Could not find the number for %s.", contactName)
	}

	if err := h.provider.Dial(number); err != nil {
		h.fail("call", stderrors.NewCapabilityFailedError("dial", err))
		return fmt.Sprintf("Unable to make call: %s", err.Error())
	}

	h.logger.Info("dialing contact", map[string]interface{}{"contact": contactName})
	return fmt.Sprintf("Calling %s...", contactName)
}

// SendMessage opens the host's message composer for the contact.
func (h *Handler) SendMessage(contactName string) string {
	if err := h.provider.ComposeMessage(contactName, ""); err != nil {
		h.fail("send-message", stderrors.NewCapabilityFailedError("composeMessage", err))
		return fmt.Sprintf("Unable to send SMS: %s", err.Error())
	}
	return fmt.Sprintf("Opening SMS for %s", contactName)
}
