package adapthttp

import (
	"errors"
	"net/http"

	"bookstore/internal/app"
)

func (s *Server) handleCreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !req.birthYearValid() {
		writeError(w, http.StatusBadRequest, errors.New("birth year must be between 1000 and 9999"))
		return
	}

	author, err := s.authors.CreateAuthor(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, author)
}

func (s *Server) handleListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := s.authors.ListAuthors(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, authors)
}

func (s *Server) handleGetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	author, err := s.authors.GetAuthor(r.Context(), id)
	if errors.Is(err, app.ErrAuthorNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, author)
}

func (s *Server) handleUpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req authorRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !req.birthYearValid() {
		writeError(w, http.StatusBadRequest, errors.New("birth year must be between 1000 and 9999"))
		return
	}

	author, err := s.authors.UpdateAuthor(r.Context(), id, req.toDomain())
	if errors.Is(err, app.ErrAuthorNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, author)
}

func (s *Server) handleDeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	err = s.authors.DeleteAuthor(r.Context(), id)
	if errors.Is(err, app.ErrAuthorNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearchAuthorsByName(w http.ResponseWriter, r *http.Request) {
	authors, err := s.authors.SearchAuthorsByName(r.Context(), r.URL.Query().Get("name"))
	if errors.Is(err, app.ErrEmptySearch) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, authors)
}

func (s *Server) handleSearchAuthorsByNationality(w http.ResponseWriter, r *http.Request) {
	authors, err := s.authors.SearchAuthorsByNationality(r.Context(), r.URL.Query().Get("nationality"))
	if errors.Is(err, app.ErrEmptySearch) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, authors)
}

func (s *Server) handleGetAuthorBiography(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bio, err := s.authors.GetAuthorBiography(r.Context(), id)
	if errors.Is(err, app.ErrAuthorNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"biography": bio})
}
