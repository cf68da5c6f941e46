// Package server exposes the dispatch engine over HTTP. The transcript comes
// in as JSON, the interpreted result goes back out; speech capture and
// playback stay with the caller.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"voice-command-engine/internal/common/config"
	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/engine/capability"
	"voice-command-engine/internal/engine/dispatcher"
	"voice-command-engine/internal/engine/intent"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxRequestBytes bounds the interpret request body; transcripts are spoken
// sentences, not documents.
const maxRequestBytes = 64 * 1024

type Server struct {
	httpServer *http.Server
	dispatcher *dispatcher.Dispatcher
	logger     logger.Logger
}

// InterpretRequest is the /api/v1/interpret request body.
type InterpretRequest struct {
	Transcript string `json:"transcript"`
}

// InterpretResponse is the /api/v1/interpret response body.
type InterpretResponse struct {
	RequestID  string                 `json:"requestId"`
	Transcript string                 `json:"transcript"`
	Intent     intent.Intent          `json:"intent"`
	Response   string                 `json:"response"`
	Event      *capability.StateEvent `json:"event,omitempty"`
}

type errorResponse struct {
	RequestID string   `json:"requestId"`
	Error     string   `json:"error"`
	Details   []string `json:"details,omitempty"`
}

func New(cfg config.ServerConfig, d *dispatcher.Dispatcher, log logger.Logger) *Server {
	s := &Server{
		dispatcher: d,
		logger:     log.WithFields(map[string]interface{}{"component": "server"}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/interpret", s.handleInterpret)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Millisecond,
	}
	return s
}

// Start blocks serving HTTP until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the route table. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, requestID, "method not allowed", nil)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, requestID, "unreadable request body", []string{err.Error()})
		return
	}

	if !json.Valid(body) {
		s.writeError(w, http.StatusBadRequest, requestID, "invalid JSON body", nil)
		return
	}

	if validationErrs := validateInterpretRequest(body); len(validationErrs) > 0 {
		s.writeError(w, http.StatusBadRequest, requestID, "request validation failed", validationErrs)
		return
	}

	var req InterpretRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, requestID, "invalid JSON body", []string{err.Error()})
		return
	}

	result := s.dispatcher.Dispatch(r.Context(), req.Transcript)

	s.logger.Info("interpret request served", map[string]interface{}{
		"requestId": requestID,
		"intent":    result.Intent.String(),
	})

	s.writeJSON(w, http.StatusOK, InterpretResponse{
		RequestID:  requestID,
		Transcript: req.Transcript,
		Intent:     result.Intent,
		Response:   result.Response,
		Event:      result.Event,
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, requestID, msg string, details []string) {
	s.writeJSON(w, status, errorResponse{
		RequestID: requestID,
		Error:     msg,
		Details:   details,
	})
}
