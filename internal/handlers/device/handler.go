// Package device handles intents that drive local device hardware: flashlight,
// volume, camera, settings panels, battery, and screenshot guidance. Every
// capability failure is converted to a spoken sentence at this boundary.
package device

import (
	"fmt"
	"strings"

	stderrors "voice-command-engine/internal/common/errors"
	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/metrics"
	"voice-command-engine/internal/engine/capability"
)

const HandlerName = "device"

type Config struct {
	// VolumeStep is the clamp step applied on increase/decrease commands.
	VolumeStep int
}

type Handler struct {
	config   *Config
	provider capability.Provider
	logger   logger.Logger
}

func NewHandler(config *Config, provider capability.Provider, log logger.Logger) *Handler {
	if config.VolumeStep <= 0 {
		config.VolumeStep = 2
	}
	return &Handler{
		config:   config,
		provider: provider,
		logger:   log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

func (h *Handler) fail(intent string, stdErr *stderrors.StandardError) {
	metrics.CommandFailures.WithLabelValues(intent, string(stdErr.Code)).Inc()
	h.logger.WithError(stdErr).Warn("capability operation failed", map[string]interface{}{
		"intent":   intent,
		"category": stderrors.GetErrorCategory(stdErr.Code),
	})
}

// Flashlight toggles the torch. The requested state is on when the transcript
// contains "on" or "enable", off otherwise. A successful toggle also returns a
// state event so the host can mirror the torch indicator.
func (h *Handler) Flashlight(transcript string) (string, *capability.StateEvent) {
	t := strings.ToLower(transcript)
	turnOn := strings.Contains(t, "on") || strings.Contains(t, "enable")

	if err := h.provider.SetTorch(turnOn); err != nil {
		h.fail("flashlight", stderrors.NewCapabilityFailedError("setTorch", err))
		return fmt.Sprintf("Unable to control flashlight: %s", err.Error()), nil
	}

	event := &capability.StateEvent{Kind: capability.FlashState, On: turnOn}
	if turnOn {
		return "Flashlight turned on", event
	}
	return "Flashlight turned off", event
}

// AdjustVolume applies the direction keyword found in the transcript to the
// media volume. With no direction keyword it reports the current level.
func (h *Handler) AdjustVolume(transcript string) (string, *capability.StateEvent) {
	t := strings.ToLower(transcript)

	levels, err := h.provider.AudioLevels()
	if err != nil {
		h.fail("volume", stderrors.NewCapabilityFailedError("audioLevels", err))
		return fmt.Sprintf("Unable to adjust volume: %s", err.Error()), nil
	}

	var target int
	var response func(newLevel int) string

	switch {
	case containsAny(t, "increase", "up", "raise"):
		target = min(levels.Current+h.config.VolumeStep, levels.Max)
		response = func(n int) string {
			return fmt.Sprintf("Volume increased to %d%%", n*100/levels.Max)
		}
	case containsAny(t, "decrease", "down", "lower"):
		target = max(levels.Current-h.config.VolumeStep, 0)
		response = func(n int) string {
			return fmt.Sprintf("Volume decreased to %d%%", n*100/levels.Max)
		}
	case strings.Contains(t, "mute"):
		target = 0
		response = func(int) string { return "Volume muted" }
	case containsAny(t, "max", "full"):
		target = levels.Max
		response = func(int) string { return "Volume set to maximum" }
	default:
		return fmt.Sprintf("Current volume is %d%%", levels.Current*100/levels.Max), nil
	}

	if err := h.provider.SetVolume(target); err != nil {
		h.fail("volume", stderrors.NewCapabilityFailedError("setVolume", err))
		return fmt.Sprintf("Unable to adjust volume: %s", err.Error()), nil
	}

	return response(target), &capability.StateEvent{Kind: capability.VolumeState, Level: target}
}

// OpenCamera launches the camera, in video mode when the transcript says so.
func (h *Handler) OpenCamera(transcript string) string {
	isVideo := strings.Contains(strings.ToLower(transcript), "video")

	if err := h.provider.LaunchCamera(isVideo); err != nil {
		h.fail("camera", stderrors.NewCapabilityFailedError("launchCamera", err))
		return fmt.Sprintf("Unable to open camera: %s", err.Error())
	}

	if isVideo {
		return "Opening video camera"
	}
	return "Opening camera"
}

func (h *Handler) OpenBluetoothSettings() string {
	if err := h.provider.OpenSettingsPanel(capability.PanelBluetooth); err != nil {
		h.fail("bluetooth", stderrors.NewCapabilityFailedError("openSettingsPanel", err))
		return "Unable to open Bluetooth settings"
	}
	return "Opening Bluetooth settings"
}

func (h *Handler) OpenWifiSettings() string {
	if err := h.provider.OpenSettingsPanel(capability.PanelWifi); err != nil {
		h.fail("wifi", stderrors.NewCapabilityFailedError("openSettingsPanel", err))
		return "Unable to open WiFi settings"
	}
	return "Opening WiFi settings"
}

func (h *Handler) OpenDisplaySettings() string {
	if err := h.provider.OpenSettingsPanel(capability.PanelDisplay); err != nil {
		h.fail("brightness", stderrors.NewCapabilityFailedError("openSettingsPanel", err))
		return "Unable to open display settings"
	}
	return "Opening display settings"
}

// BatteryInfo reports charge percent and charging state.
func (h *Handler) BatteryInfo() string {
	status, err := h.provider.BatteryStatus()
	if err != nil {
		h.fail("battery", stderrors.NewCapabilityFailedError("batteryStatus", err))
		return "Unable to get battery info"
	}

	if status.IsCharging {
		return fmt.Sprintf("Battery is at %d%% and charging", status.Percent)
	}
	return fmt.Sprintf("Battery is at %d%%", status.Percent)
}

// Screenshot returns the instructional response; no platform screenshot API
// is invoked.
func (h *Handler) Screenshot() string {
	return "To take a screenshot, press Power + Volume Down buttons simultaneously"
}

func containsAny(t string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}
