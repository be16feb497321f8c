package adapthttp

import (
	"net/http"

	"bookstore/internal/domain"
	"bookstore/internal/policy"
)

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.GetCatalogStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to Admin Dashboard",
		"status":  "success",
		"stats":   stats,
	})
}

func (s *Server) handleAdminReports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Admin Reports Available",
		"status":  "success",
	})
}

func (s *Server) handleAdminSettings(w http.ResponseWriter, r *http.Request) {
	// The provisional admin account may not touch settings.
	if identityFrom(r.Context()).Subject == "temporary_admin" {
		writeError(w, http.StatusForbidden, policy.ErrForbidden)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Admin Settings Page",
		"status":  "success",
	})
}

func (s *Server) handleAdminProfile(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"username":        id.Subject,
		"roles":           domain.RolesToStrings(id.Roles),
		"isAuthenticated": id.Authenticated,
	})
}
