package adapthttp

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookstore/internal/domain"
	"bookstore/internal/policy"
	"bookstore/internal/token"
)

func TestLoggingMiddleware(t *testing.T) {
	s := &Server{}
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("OK"))
	})

	handler := s.loggingMiddleware(nextHandler)

	var buf bytes.Buffer
	originalOutput := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(originalOutput)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "GET") || !strings.Contains(logOutput, "/test-path") || !strings.Contains(logOutput, "418") {
		t.Errorf("Log output missing expected fields. Got: %s", logOutput)
	}
}

func TestAuthenticate(t *testing.T) {
	codec, err := token.New("0123456789abcdef0123456789abcdef", time.Hour)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	s := &Server{codec: codec}

	valid, err := codec.Issue("alice", []domain.Role{domain.RoleUser}, time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name          string
		header        string
		wantSubject   string
		authenticated bool
	}{
		{"no header", "", "", false},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", false},
		{"bare token without scheme", valid, "", false},
		{"garbage token", "Bearer garbage", "", false},
		{"valid token", "Bearer " + valid, "alice", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got policy.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = identityFrom(r.Context())
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			s.authenticate(next).ServeHTTP(httptest.NewRecorder(), req)

			if got.Authenticated != tc.authenticated {
				t.Errorf("expected authenticated=%v, got %v", tc.authenticated, got.Authenticated)
			}
			if got.Subject != tc.wantSubject {
				t.Errorf("expected subject %q, got %q", tc.wantSubject, got.Subject)
			}
		})
	}
}
