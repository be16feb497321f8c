package adapthttp

import (
	"net/http"

	"bookstore/internal/app"
	"bookstore/internal/domain"
	"bookstore/internal/policy"
	"bookstore/internal/token"

	"github.com/go-playground/validator/v10"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth     *app.AuthService
	books    *app.BookService
	authors  *app.AuthorService
	stats    *app.StatsService
	codec    *token.Codec
	sso      SSOConfig
	validate *validator.Validate
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, books *app.BookService, authors *app.AuthorService, stats *app.StatsService, codec *token.Codec, sso SSOConfig) *Server {
	return &Server{
		auth:     auth,
		books:    books,
		authors:  authors,
		stats:    stats,
		codec:    codec,
		sso:      sso,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// route pairs one operation with its declared access requirement. The table
// below is the single source of truth for who may call what; the pipeline for
// every request is authenticate, then evaluate the route's requirement, then
// handle.
type route struct {
	pattern  string
	requires policy.Requirement
	handler  http.HandlerFunc
}

func (s *Server) routes() []route {
	reader := policy.AnyRole(domain.RoleUser, domain.RoleAdmin)
	admin := policy.AnyRole(domain.RoleAdmin)

	return []route{
		{"GET /api/health", policy.Public(), s.handleHealth},

		{"POST /api/auth/register", policy.Public(), s.handleRegister},
		{"POST /api/auth/login", policy.Public(), s.handleLogin},
		{"GET /api/auth/sso/login", policy.Public(), s.handleSSOLogin},
		{"GET /api/auth/sso/callback", policy.Public(), s.handleSSOCallback},

		{"POST /api/books", admin, s.handleCreateBook},
		{"GET /api/books", reader, s.handleListBooks},
		{"GET /api/books/search", reader, s.handleSearchBooks},
		{"GET /api/books/isbn/{isbn}", reader, s.handleGetBookByISBN},
		{"GET /api/books/{id}", reader, s.handleGetBook},
		{"PUT /api/books/{id}", admin, s.handleUpdateBook},
		{"DELETE /api/books/{id}", admin, s.handleDeleteBook},

		{"POST /api/authors", admin, s.handleCreateAuthor},
		{"GET /api/authors", reader, s.handleListAuthors},
		{"GET /api/authors/search", reader, s.handleSearchAuthorsByName},
		{"GET /api/authors/search-by-nationality", reader, s.handleSearchAuthorsByNationality},
		{"GET /api/authors/{id}", reader, s.handleGetAuthor},
		{"GET /api/authors/{id}/biography", reader, s.handleGetAuthorBiography},
		{"PUT /api/authors/{id}", admin, s.handleUpdateAuthor},
		{"DELETE /api/authors/{id}", admin, s.handleDeleteAuthor},

		{"GET /api/admin/dashboard", admin, s.handleAdminDashboard},
		{"GET /api/admin/reports", admin, s.handleAdminReports},
		{"GET /api/admin/settings", admin, s.handleAdminSettings},
		{"GET /api/admin/profile", policy.Authenticated(), s.handleAdminProfile},
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, rt := range s.routes() {
		mux.Handle(rt.pattern, s.require(rt.requires, rt.handler))
	}

	var h http.Handler = mux
	h = s.authenticate(h)
	h = withCORS(h)
	h = s.loggingMiddleware(h)
	return h
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
