package app

import (
	"context"
	"errors"

	"bookstore/internal/domain"
)

var (
	// ErrBookNotFound indicates the requested book does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrISBNTaken indicates another book already carries the ISBN.
	ErrISBNTaken = errors.New("a book with this ISBN already exists")
	// ErrEmptySearch indicates a search request without any criteria.
	ErrEmptySearch = errors.New("a search term is required")
)

// BookService encapsulates catalog use cases for books.
type BookService struct {
	repo domain.BookRepository
}

// NewBookService creates a BookService backed by the given repository.
func NewBookService(repo domain.BookRepository) *BookService {
	return &BookService{repo: repo}
}

// CreateBook stores a new book after checking ISBN uniqueness.
func (s *BookService) CreateBook(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	if b.ISBN != "" {
		exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrISBNTaken
		}
	}
	return s.repo.Create(ctx, b)
}

// GetBook returns the book with the given id.
func (s *BookService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// GetBookByISBN returns the book carrying the given ISBN.
func (s *BookService) GetBookByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	book, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// ListBooks returns the whole catalog.
func (s *BookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.repo.List(ctx)
}

// UpdateBook replaces the stored fields of an existing book. A changed ISBN
// must not collide with another book.
func (s *BookService) UpdateBook(ctx context.Context, id int64, b *domain.Book) (*domain.Book, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBookNotFound
	}

	if b.ISBN != "" && b.ISBN != existing.ISBN {
		exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrISBNTaken
		}
	}

	existing.Title = b.Title
	existing.Author = b.Author
	existing.Description = b.Description
	existing.Price = b.Price
	existing.ISBN = b.ISBN
	existing.PublicationYear = b.PublicationYear
	return s.repo.Update(ctx, existing)
}

// DeleteBook removes a book.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookNotFound
	}
	return nil
}

// SearchBooks finds books by title or author substring, case-insensitive.
// Title takes precedence when both are given.
func (s *BookService) SearchBooks(ctx context.Context, title, author string) ([]domain.Book, error) {
	switch {
	case title != "":
		return s.repo.SearchByTitle(ctx, title)
	case author != "":
		return s.repo.SearchByAuthor(ctx, author)
	default:
		return nil, ErrEmptySearch
	}
}
