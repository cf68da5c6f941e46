// Package weatherinfo answers weather intents from the OpenWeatherMap
// current-conditions API, with a per-city Redis cache in front of it.
package weatherinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	stderrors "voice-command-engine/internal/common/errors"
	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/metrics"
)

const HandlerName = "weatherinfo"

const unavailableResponse = "Weather information unavailable. Please check the weather API configuration or network connection."

// Cache is the key-value store fronting the remote lookup. database.RedisClient
// satisfies it; a nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type Handler struct {
	config *Config
	client *http.Client
	cache  Cache
	logger logger.Logger
}

func NewHandler(config *Config, cache Cache, log logger.Logger) *Handler {
	config.applyDefaults()
	return &Handler{
		config: config,
		client: &http.Client{},
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

// CurrentConditions reports the weather for city as a spoken sentence.
// Failures map to a fixed sentence, never errors.
func (h *Handler) CurrentConditions(ctx context.Context, city string) string {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	cacheKey := "weather:" + strings.ToLower(city)
	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			metrics.RemoteLookups.WithLabelValues("weather", "cache_hit").Inc()
			return cached
		}
	}

	if h.config.APIKey == "" {
		h.fail(stderrors.NewWeatherUnavailableError(fmt.Errorf("weather API key not configured")))
		return unavailableResponse
	}

	endpoint := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		h.config.BaseURL, url.QueryEscape(city), url.QueryEscape(h.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		h.fail(stderrors.NewWeatherUnavailableError(err))
		return unavailableResponse
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			h.fail(stderrors.NewNetworkTimeoutError("weather"))
		} else {
			h.fail(stderrors.NewWeatherUnavailableError(err))
		}
		return unavailableResponse
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.fail(stderrors.NewWeatherUnavailableError(fmt.Errorf("status %d", resp.StatusCode)))
		return unavailableResponse
	}

	var payload currentWeather
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		h.fail(stderrors.NewWeatherUnavailableError(fmt.Errorf("decode error: %v", err)))
		return unavailableResponse
	}
	if len(payload.Weather) == 0 {
		h.fail(stderrors.NewWeatherUnavailableError(fmt.Errorf("empty conditions")))
		return unavailableResponse
	}

	metrics.RemoteLookups.WithLabelValues("weather", "success").Inc()

	response := fmt.Sprintf("Weather in %s: %d°C, feels like %d°C, %s, Humidity: %d%%",
		city, int(payload.Main.Temp), int(payload.Main.FeelsLike),
		payload.Weather[0].Description, payload.Main.Humidity)

	if h.cache != nil && h.config.CacheTTL > 0 {
		if err := h.cache.Set(ctx, cacheKey, response, h.config.CacheTTL); err != nil {
			h.logger.Warn("weather cache write failed", map[string]interface{}{
				"key":   cacheKey,
				"error": err.Error(),
			})
		}
	}

	return response
}

func (h *Handler) fail(stdErr *stderrors.StandardError) {
	metrics.RemoteLookups.WithLabelValues("weather", "failure").Inc()
	metrics.CommandFailures.WithLabelValues("weather", string(stdErr.Code)).Inc()
	h.logger.WithError(stdErr).Warn("weather lookup failed", map[string]interface{}{
		"category": stderrors.GetErrorCategory(stdErr.Code),
	})
}
