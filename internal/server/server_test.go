package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resumatch/internal/config"
	"resumatch/internal/errors"
	"resumatch/internal/observability"
)

func newTestServer(apiKeys []string) *Server {
	return NewServer(&config.Config{}, ServerConfig{
		Host:           "127.0.0.1",
		Port:           "0",
		Version:        "test",
		APIKeys:        apiKeys,
		MaxRequestSize: 1024,
	}, errors.NewLogger(slog.LevelError))
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(60, 2, nil)
	defer rl.Close()

	if !rl.Allow("ip:10.0.0.1") {
		t.Error("first request should be allowed")
	}
	if !rl.Allow("ip:10.0.0.1") {
		t.Error("second request should be within burst capacity")
	}
	if rl.Allow("ip:10.0.0.1") {
		t.Error("third request should exceed burst capacity")
	}

	// Different keys get independent buckets
	if !rl.Allow("ip:10.0.0.2") {
		t.Error("request from a different key should be allowed")
	}

	stats := rl.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("expected 2 active limiters, got %v", stats["active_limiters"])
	}
	if stats["burst_capacity"] != 2 {
		t.Errorf("expected burst capacity 2, got %v", stats["burst_capacity"])
	}
}

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		bearer   string
		byAPIKey bool
		byIP     bool
		want     string
	}{
		{name: "api key header", apiKey: "secret-key", byAPIKey: true, want: "api:secret-key"},
		{name: "bearer fallback", bearer: "Bearer token-123", byAPIKey: true, want: "api:token-123"},
		{name: "ip fallback", byAPIKey: true, byIP: true, want: "ip:192.0.2.1"},
		{name: "disabled", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/match", nil)
			r.RemoteAddr = "192.0.2.1:1234"
			if tt.apiKey != "" {
				r.Header.Set("X-API-Key", tt.apiKey)
			}
			if tt.bearer != "" {
				r.Header.Set("Authorization", tt.bearer)
			}

			got := getRateLimitKey(r, tt.byAPIKey, tt.byIP)
			if got != tt.want {
				t.Errorf("getRateLimitKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.RemoteAddr = "192.0.2.1:1234"
	if ip := getClientIP(r); ip != "192.0.2.1" {
		t.Errorf("expected RemoteAddr host, got %q", ip)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 192.0.2.1")
	if ip := getClientIP(r); ip != "203.0.113.7" {
		t.Errorf("expected first forwarded IP, got %q", ip)
	}

	r.Header.Del("X-Forwarded-For")
	r.Header.Set("X-Real-IP", "198.51.100.3")
	if ip := getClientIP(r); ip != "198.51.100.3" {
		t.Errorf("expected X-Real-IP, got %q", ip)
	}
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer([]string{"valid-key-12345678"})
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		apiKey     string
		authHeader string
		wantStatus int
	}{
		{name: "missing key", wantStatus: http.StatusUnauthorized},
		{name: "invalid key", apiKey: "wrong-key", wantStatus: http.StatusUnauthorized},
		{name: "valid header key", apiKey: "valid-key-12345678", wantStatus: http.StatusOK},
		{name: "valid bearer token", authHeader: "Bearer valid-key-12345678", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/match", nil)
			if tt.apiKey != "" {
				r.Header.Set("X-API-Key", tt.apiKey)
			}
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			handler(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareSkippedWithoutKeys(t *testing.T) {
	s := newTestServer(nil)
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodPost, "/match", nil)
	w := httptest.NewRecorder()
	handler(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("expected open access without configured keys, got %d", w.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer(nil)

	var seenID string
	handler := s.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = r.Header.Get(requestIDHeader)
	}))

	// Generated when absent
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if seenID == "" {
		t.Error("expected a generated request ID")
	}
	if w.Header().Get(requestIDHeader) != seenID {
		t.Error("request ID should be echoed in the response")
	}

	// Preserved when supplied by the client
	r = httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set(requestIDHeader, "client-supplied-id")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Header().Get(requestIDHeader) != "client-supplied-id" {
		t.Errorf("expected client ID to be preserved, got %q", w.Header().Get(requestIDHeader))
	}
}

func TestParseJSONRequest(t *testing.T) {
	var req MatchRequest

	r := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{"resume_text":"a","job_text":"b"}`))
	r.Header.Set("Content-Type", "application/json")
	if err := parseJSONRequest(r, &req); err != nil {
		t.Fatalf("parseJSONRequest failed: %v", err)
	}
	if req.ResumeText != "a" || req.JobText != "b" {
		t.Errorf("unexpected parsed request: %+v", req)
	}

	r = httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{}`))
	r.Header.Set("Content-Type", "text/plain")
	if err := parseJSONRequest(r, &req); err == nil {
		t.Error("expected error for wrong content type")
	}

	r = httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{not json`))
	r.Header.Set("Content-Type", "application/json")
	if err := parseJSONRequest(r, &req); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestParseATSRequestValidation(t *testing.T) {
	s := newTestServer(nil)

	r := httptest.NewRequest(http.MethodPost, "/ats/validate", strings.NewReader(`{"resume_text":"   "}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	if _, ok := s.parseATSRequest(w, r); ok {
		t.Error("expected blank resume text to be rejected")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "Missing resume text" {
		t.Errorf("unexpected error: %q", resp.Error)
	}

	// Oversized resume text is rejected against MaxRequestSize/2
	big := strings.Repeat("x", 1024)
	r = httptest.NewRequest(http.MethodPost, "/ats/validate", strings.NewReader(`{"resume_text":"`+big+`"}`))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()

	if _, ok := s.parseATSRequest(w, r); ok {
		t.Error("expected oversized resume text to be rejected")
	}
}

func TestScoreHandlerRejectsInvalidRecords(t *testing.T) {
	s := newTestServer(nil)
	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{}, nil)
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}
	handler := s.createScoreHandler(om)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			"negative years rejected",
			`{"job":{"title":"Engineer","seniority":"mid"},"candidate":{"years_of_experience":-5}}`,
			http.StatusBadRequest,
		},
		{
			"years above cap rejected",
			`{"job":{"title":"Engineer","seniority":"mid"},"candidate":{"years_of_experience":1000}}`,
			http.StatusBadRequest,
		},
		{
			"unknown seniority rejected",
			`{"job":{"title":"Engineer","seniority":"principal"},"candidate":{"years_of_experience":4}}`,
			http.StatusBadRequest,
		},
		{
			"valid records scored",
			`{"job":{"title":"Engineer","seniority":"mid","must_have_skills":["go"]},"candidate":{"years_of_experience":4,"tech_stack":["go"]}}`,
			http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("short keys should be fully masked, got %q", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("expected prefix plus mask, got %q", got)
	}
}
