// Package apps handles app launching, music playback, navigation, and web
// search intents.
package apps

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	stderrors "voice-command-engine/internal/common/errors"
	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/metrics"
	"voice-command-engine/internal/engine/capability"
	"voice-command-engine/internal/engine/extract"
)

const HandlerName = "apps"

// appEntry maps spoken keywords to a launchable package.
type appEntry struct {
	keywords  []string
	packageID string
	name      string
}

// appTable is scanned in order; the first keyword hit wins. "x" is matched as
// a standalone word, not a substring, so it cannot swallow arbitrary commands.
var appTable = []appEntry{
	{[]string{"youtube"}, "com.google.android.youtube", "YouTube"},
	{[]string{"gmail", "email"}, "com.google.android.gm", "Gmail"},
	{[]string{"chrome", "browser"}, "com.android.chrome", "Chrome"},
	{[]string{"maps"}, "com.google.android.apps.maps", "Google Maps"},
	{[]string{"whatsapp"}, "com.whatsapp", "WhatsApp"},
	{[]string{"instagram"}, "com.instagram.android", "Instagram"},
	{[]string{"spotify"}, "com.spotify.music", "Spotify"},
	{[]string{"twitter", "x"}, "com.twitter.android", "Twitter"},
	{[]string{"facebook"}, "com.facebook.katana", "Facebook"},
	{[]string{"settings"}, "com.android.settings", "Settings"},
	{[]string{"gallery", "photos"}, "com.google.android.apps.photos", "Gallery"},
	{[]string{"calculator"}, "com.google.android.calculator", "Calculator"},
}

var wordX = regexp.MustCompile(`\bx\b`)

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
	h.logger.WithError(stdErr).Warn("app operation failed", map[string]interface{}{
		"intent":   intent,
		"category": stderrors.GetErrorCategory(stdErr.Code),
	})
}

// OpenApp matches a known app keyword in the transcript and launches it.
func (h *Handler) OpenApp(transcript string) string {
	t := strings.ToLower(transcript)

	for _, entry := range appTable {
		if !matchKeyword(t, entry.keywords) {
			continue
		}

		installed, err := h.provider.LaunchApp(entry.packageID)
		if err != nil {
			h.fail("open-app", stderrors.NewCapabilityFailedError("launchApp", err))
			return fmt.Sprintf("Unable to open %s", entry.name)
		}
		if !installed {
			h.fail("open-app", stderrors.NewAppNotInstalledError(entry.name))
			return fmt.Sprintf("%s is not installed on your device", entry.name)
		}

		h.logger.Info("launched app", map[string]interface{}{"app": entry.name})
		return fmt.Sprintf("Opening %s", entry.name)
	}

	return "Which app would you like to open?"
}

func matchKeyword(t string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "x" {
			if wordX.MatchString(t) {
				return true
			}
			continue
		}
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

// PlayMusic launches the host's music player.
func (h *Handler) PlayMusic() string {
	if err := h.provider.LaunchMusicPlayer(); err != nil {
		h.fail("play-music", stderrors.NewCapabilityFailedError("launchMusicPlayer", err))
		return "Unable to open music player"
	}
	return "Opening music player"
}

// Navigate starts turn-by-turn navigation to the extracted destination.
func (h *Handler) Navigate(destination string) string {
	if err := h.provider.LaunchNavigation(destination); err != nil {
		h.fail("navigate", stderrors.NewCapabilityFailedError("launchNavigation", err))
		return "Unable to open navigation. Make sure a maps app is installed."
	}
	return fmt.Sprintf("Navigating to %s", destination)
}

// WebSearch opens a web search for the query left after stripping trigger
// words. An empty query asks the user what to look for.
func (h *Handler) WebSearch(transcript string) string {
	query := extract.SearchQuery(transcript)
	if query == "" {
		return "What would you like me to search for?"
	}

	searchURL := "https://www.google.com/search?q=" + url.QueryEscape(query)
	if err := h.provider.OpenURL(searchURL); err != nil {
		h.fail("web-search", stderrors.NewCapabilityFailedError("openURL", err))
		return "Unable to search"
	}

	return fmt.Sprintf("Searching the web for: %s", query)
}
