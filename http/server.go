package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tkondo/wikitoc"
)

// Server exposes the scraping pipeline as a JSON API.
type Server struct {
	scraper wikitoc.Scraper
	logger  *slog.Logger
	mux     *http.ServeMux
}

// NewServer wires handlers onto an HTTP mux.
func NewServer(scraper wikitoc.Scraper, logger *slog.Logger) *Server {
	s := &Server{
		scraper: scraper,
		logger:  logger,
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

// ServeHTTP satisfies the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/toc", s.handleTOC)
	s.mux.HandleFunc("/health", s.handleHealth)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// tocResponse is a ScrapeResult plus the compliance disclosure fields the
// API contract promises on success.
type tocResponse struct {
	wikitoc.ScrapeResult
	RobotsCompliance string `json:"robots_compliance,omitempty"`
	UserAgent        string `json:"user_agent,omitempty"`
}

func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, http.MethodGet)
		return
	}

	requestID := uuid.NewString()
	begin := time.Now()

	target := r.URL.Query().Get("url")
	if target == "" {
		result := wikitoc.NewInputFailureResult(target,
			"please provide a Wikipedia URL using ?url=<wikipedia_url>, e.g. ?url=https://ja.wikipedia.org/wiki/Amazon_Web_Services")
		s.writeResult(w, requestID, begin, result)
		return
	}

	result := s.scraper.Scrape(r.Context(), target)
	s.writeResult(w, requestID, begin, result)
}

func (s *Server) writeResult(w http.ResponseWriter, requestID string, begin time.Time, result *wikitoc.ScrapeResult) {
	status := statusFor(result)

	resp := tocResponse{ScrapeResult: *result}
	if result.Success {
		resp.RobotsCompliance = wikitoc.RobotsCompliance
		resp.UserAgent = wikitoc.UserAgent
	}

	writeJSON(w, status, resp)

	logArgs := []any{
		"request_id", requestID,
		"url", result.URL,
		"status", status,
		"duration", time.Since(begin),
	}
	if result.Error != nil {
		logArgs = append(logArgs, "category", string(result.Error.Category))
		s.logger.Warn("toc request failed", logArgs...)
		return
	}
	s.logger.Info("toc request", append(logArgs, "total_items", result.TotalItems)...)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeJSON(w, http.StatusMethodNotAllowed, map[string]any{
		"success": false,
		"error": map[string]string{
			"category": string(wikitoc.CategoryInputFailure),
			"message":  "only " + allowed + " is supported",
		},
	})
}

// statusFor maps a result to its HTTP status: policy rejections are 403,
// upstream failures 502/504 by kind, extraction failures 500, bad input
// 400, success 200.
func statusFor(result *wikitoc.ScrapeResult) int {
	if result.Success {
		return http.StatusOK
	}
	switch result.Error.Category {
	case wikitoc.CategoryTimeout:
		return http.StatusGatewayTimeout
	case wikitoc.CategoryConnectionFailed, wikitoc.CategoryHTTPError:
		return http.StatusBadGateway
	case wikitoc.CategoryExtractionFailure, wikitoc.CategoryInternal:
		return http.StatusInternalServerError
	case wikitoc.CategoryInputFailure:
		return http.StatusBadRequest
	default:
		// Every remaining category is a policy rejection.
		return http.StatusForbidden
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}
