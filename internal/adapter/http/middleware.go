package adapthttp

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"bookstore/internal/policy"
)

type contextKey string

const identityContextKey contextKey = "identity"

// authenticate establishes the per-request identity from a Bearer token. A
// missing header, a non-Bearer scheme, or a token that fails verification all
// leave the request anonymous: rejection is the policy check's job, decided
// per route, not the authenticator's.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := s.codec.Verify(parts[1], time.Now())
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		id := policy.Identity{
			Subject:       claims.Subject,
			Roles:         claims.Roles,
			Authenticated: true,
		}
		ctx := context.WithValue(r.Context(), identityContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identityFrom returns the identity attached to ctx, or an anonymous one.
func identityFrom(ctx context.Context) policy.Identity {
	if id, ok := ctx.Value(identityContextKey).(policy.Identity); ok {
		return id
	}
	return policy.Anonymous()
}

// require wraps a handler with the route's declared access requirement.
func (s *Server) require(req policy.Requirement, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch err := policy.Evaluate(identityFrom(r.Context()), req); err {
		case nil:
			next(w, r)
		case policy.ErrUnauthenticated:
			writeError(w, http.StatusUnauthorized, err)
		case policy.ErrForbidden:
			writeError(w, http.StatusForbidden, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs method, path, and response status for each request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d", r.Method, r.URL.Path, rec.status)
	})
}

// withCORS applies the browser cross-origin policy for the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
