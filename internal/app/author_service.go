package app

import (
	"context"
	"errors"

	"bookstore/internal/domain"
)

// ErrAuthorNotFound indicates the requested author does not exist.
var ErrAuthorNotFound = errors.New("author not found")

// AuthorService encapsulates catalog use cases for authors.
type AuthorService struct {
	repo domain.AuthorRepository
}

// NewAuthorService creates an AuthorService backed by the given repository.
func NewAuthorService(repo domain.AuthorRepository) *AuthorService {
	return &AuthorService{repo: repo}
}

// CreateAuthor stores a new author profile.
func (s *AuthorService) CreateAuthor(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	return s.repo.Create(ctx, a)
}

// GetAuthor returns the author with the given id.
func (s *AuthorService) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	author, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// ListAuthors returns all author profiles.
func (s *AuthorService) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	return s.repo.List(ctx)
}

// UpdateAuthor replaces the stored fields of an existing author.
func (s *AuthorService) UpdateAuthor(ctx context.Context, id int64, a *domain.Author) (*domain.Author, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrAuthorNotFound
	}

	existing.Name = a.Name
	existing.Biography = a.Biography
	existing.BirthDate = a.BirthDate
	existing.Email = a.Email
	existing.Nationality = a.Nationality
	return s.repo.Update(ctx, existing)
}

// DeleteAuthor removes an author profile.
func (s *AuthorService) DeleteAuthor(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAuthorNotFound
	}
	return nil
}

// SearchAuthorsByName finds authors whose name contains the term, case-insensitive.
func (s *AuthorService) SearchAuthorsByName(ctx context.Context, name string) ([]domain.Author, error) {
	if name == "" {
		return nil, ErrEmptySearch
	}
	return s.repo.SearchByName(ctx, name)
}

// SearchAuthorsByNationality finds authors of the given nationality.
func (s *AuthorService) SearchAuthorsByNationality(ctx context.Context, nationality string) ([]domain.Author, error) {
	if nationality == "" {
		return nil, ErrEmptySearch
	}
	return s.repo.SearchByNationality(ctx, nationality)
}

// GetAuthorBiography returns just the biography text for an author.
func (s *AuthorService) GetAuthorBiography(ctx context.Context, id int64) (string, error) {
	author, err := s.GetAuthor(ctx, id)
	if err != nil {
		return "", err
	}
	return author.Biography, nil
}
