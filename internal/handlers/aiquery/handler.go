// Package aiquery forwards free-form questions to a generative text
// completion endpoint and shapes the answer for speech.
package aiquery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	stderrors "voice-command-engine/internal/common/errors"
	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/metrics"
)

const HandlerName = "aiquery"

const (
	notConfiguredResponse = "Gemini AI is not configured. Please add your API key in the settings."
	apiErrorResponse      = "Gemini API error. Please check your API key and internet connection."
	unreachableResponse   = "Unable to connect to Gemini AI. Please check your internet connection."
)

type Handler struct {
	config *Config
	client *http.Client
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	config.applyDefaults()
	return &Handler{
		config: config,
		// No client timeout; the per-request context bounds the call.
		client: &http.Client{},
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

// Answer sends the original-case question as a single text part and returns
// the spoken reply. Failures map to fixed sentences, never errors.
func (h *Handler) Answer(ctx context.Context, question string) string {
	if h.config.APIKey == "" {
		h.fail(stderrors.NewAINotConfiguredError())
		return notConfiguredResponse
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	body, _ := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: question}}}},
	})

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		h.config.BaseURL, h.config.Model, url.QueryEscape(h.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		h.fail(stderrors.NewAIUnavailableError(err))
		return unreachableResponse
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			h.fail(stderrors.NewNetworkTimeoutError("generateContent"))
		} else {
			h.fail(stderrors.NewAIUnavailableError(err))
		}
		return unreachableResponse
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.fail(stderrors.NewAIUnavailableError(fmt.Errorf("status %d", resp.StatusCode)))
		return apiErrorResponse
	}

	var apiResponse generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		h.fail(stderrors.NewAIUnavailableError(fmt.Errorf("decode error: %v", err)))
		return apiErrorResponse
	}

	if len(apiResponse.Candidates) == 0 || len(apiResponse.Candidates[0].Content.Parts) == 0 {
		h.fail(stderrors.NewAIUnavailableError(fmt.Errorf("empty candidates")))
		return apiErrorResponse
	}

	metrics.RemoteLookups.WithLabelValues("genai", "success").Inc()

	text := apiResponse.Candidates[0].Content.Parts[0].Text
	return truncateRunes(text, h.config.MaxAnswerRunes)
}

func (h *Handler) fail(stdErr *stderrors.StandardError) {
	metrics.RemoteLookups.WithLabelValues("genai", "failure").Inc()
	metrics.CommandFailures.WithLabelValues("ask-ai", string(stdErr.Code)).Inc()
	h.logger.WithError(stdErr).Warn("AI lookup failed", map[string]interface{}{
		"category": stderrors.GetErrorCategory(stdErr.Code),
	})
}

// truncateRunes caps the answer at max runes, marking the cut with "...".
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
