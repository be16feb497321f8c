package app

import (
	"context"

	"bookstore/internal/domain"
)

// StatsService encapsulates catalog summary retrieval for the admin surface.
type StatsService struct {
	books   domain.BookRepository
	authors domain.AuthorRepository
	users   domain.UserRepository
}

// NewStatsService creates a StatsService backed by the given repositories.
func NewStatsService(books domain.BookRepository, authors domain.AuthorRepository, users domain.UserRepository) *StatsService {
	return &StatsService{books: books, authors: authors, users: users}
}

// CatalogStats is the summary returned by GetCatalogStats.
type CatalogStats struct {
	Books   int `json:"books"`
	Authors int `json:"authors"`
	Users   int `json:"users"`
}

// GetCatalogStats returns entity counts across the catalog.
func (s *StatsService) GetCatalogStats(ctx context.Context) (*CatalogStats, error) {
	books, err := s.books.Count(ctx)
	if err != nil {
		return nil, err
	}
	authors, err := s.authors.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &CatalogStats{Books: books, Authors: authors, Users: users}, nil
}
