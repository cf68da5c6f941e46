// Package clock handles time, date, and alarm intents.
package clock

import (
	"fmt"
	"time"

	stderrors "voice-command-engine/internal/common/errors"
	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/metrics"
	"voice-command-engine/internal/engine/capability"
)

const HandlerName = "clock"

type Handler struct {
	provider capability.Provider
	logger   logger.Logger
	now      func() time.Time
}

func NewHandler(provider capability.Provider, log logger.Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   log.WithFields(map[string]interface{}{"handler": HandlerName}),
		now:      time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// CurrentTime reports the local time in 12-hour form.
func (h *Handler) CurrentTime() string {
	return fmt.Sprintf("The current time is %s", h.now().Format("3:04 PM"))
}

// CurrentDate reports today's date.
func (h *Handler) CurrentDate() string {
	return fmt.Sprintf("Today is %s", h.now().Format("January 2, 2006"))
}

// SetAlarm asks the host to schedule an alarm at the given 24-hour time.
func (h *Handler) SetAlarm(hour, minute int) string {
	if err := h.provider.SetAlarm(hour, minute); err != nil {
		stdErr := stderrors.NewCapabilityFailedError("setAlarm", err)
		metrics.CommandFailures.WithLabelValues("set-alarm", string(stdErr.Code)).Inc()
		h.logger.WithError(stdErr).Warn("alarm scheduling failed", map[string]interface{}{
			"hour":   hour,
			"minute": minute,
		})
		return "Unable to set alarm. Please check your permissions."
	}
	return fmt.Sprintf("Setting alarm for %s", formatClock(hour, minute))
}

// formatClock renders a 24-hour (hour, minute) pair as "H:MM AM/PM".
func formatClock(hour, minute int) string {
	period := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		display = hour - 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}
