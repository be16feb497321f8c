// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"bookstore/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu      sync.Mutex
	users   []*domain.User
	books   []*domain.Book
	authors []*domain.Author

	userIDCounter   int64
	bookIDCounter   int64
	authorIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.BookRepository = (*BookRepo)(nil)
var _ domain.AuthorRepository = (*AuthorRepo)(nil)

// --- UserRepository ---

// UserRepo implements user persistence.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new user repository.
func (db *DB) NewUserRepo() *UserRepo {
	return &UserRepo{db: db}
}

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == username {
			cp := *u
			cp.Roles = append([]domain.Role(nil), u.Roles...)
			return &cp, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, username, email, passwordHash string, roles []domain.Role) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
		if u.Email == email {
			return nil, errors.New("email already exists")
		}
	}

	r.db.userIDCounter++
	u := &domain.User{
		ID:           r.db.userIDCounter,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Roles:        append([]domain.Role(nil), roles...),
		Enabled:      true,
		CreatedAt:    time.Now().UTC(),
	}
	r.db.users = append(r.db.users, u)
	cp := *u
	return &cp, nil
}

// ExistsByUsername reports whether a user with this username exists.
func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByEmail reports whether a user with this email exists.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Count returns the total number of users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.users), nil
}

// SetEnabled toggles an account for tests of the disabled-login path.
func (r *UserRepo) SetEnabled(username string, enabled bool) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == username {
			u.Enabled = enabled
			return
		}
	}
}

// --- BookRepository ---

// BookRepo implements book persistence.
type BookRepo struct {
	db *DB
}

// NewBookRepo creates a new book repository.
func (db *DB) NewBookRepo() *BookRepo {
	return &BookRepo{db: db}
}

// Create creates a new book.
func (r *BookRepo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.bookIDCounter++
	now := time.Now().UTC()
	stored := *b
	stored.ID = r.db.bookIDCounter
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.db.books = append(r.db.books, &stored)
	cp := stored
	return &cp, nil
}

// GetByID retrieves a book by ID.
func (r *BookRepo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, b := range r.db.books {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByISBN retrieves a book by ISBN.
func (r *BookRepo) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, b := range r.db.books {
		if b.ISBN != "" && b.ISBN == isbn {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

// List returns all books.
func (r *BookRepo) List(ctx context.Context) ([]domain.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]domain.Book, 0, len(r.db.books))
	for _, b := range r.db.books {
		result = append(result, *b)
	}
	return result, nil
}

// Update replaces the stored fields of a book.
func (r *BookRepo) Update(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, stored := range r.db.books {
		if stored.ID == b.ID {
			updated := *b
			updated.CreatedAt = stored.CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			r.db.books[i] = &updated
			cp := updated
			return &cp, nil
		}
	}
	return nil, nil
}

// Delete removes a book by ID.
func (r *BookRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, b := range r.db.books {
		if b.ID == id {
			r.db.books = append(r.db.books[:i], r.db.books[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// SearchByTitle finds books whose title contains the term, case-insensitive.
func (r *BookRepo) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.Book
	for _, b := range r.db.books {
		if containsFold(b.Title, title) {
			result = append(result, *b)
		}
	}
	return result, nil
}

// SearchByAuthor finds books whose author contains the term, case-insensitive.
func (r *BookRepo) SearchByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.Book
	for _, b := range r.db.books {
		if containsFold(b.Author, author) {
			result = append(result, *b)
		}
	}
	return result, nil
}

// ExistsByISBN reports whether any book carries the ISBN.
func (r *BookRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	b, err := r.GetByISBN(ctx, isbn)
	return b != nil, err
}

// Count returns the number of books.
func (r *BookRepo) Count(ctx context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.books), nil
}

// --- AuthorRepository ---

// AuthorRepo implements author persistence.
type AuthorRepo struct {
	db *DB
}

// NewAuthorRepo creates a new author repository.
func (db *DB) NewAuthorRepo() *AuthorRepo {
	return &AuthorRepo{db: db}
}

// Create creates a new author.
func (r *AuthorRepo) Create(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.authorIDCounter++
	now := time.Now().UTC()
	stored := *a
	stored.ID = r.db.authorIDCounter
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.db.authors = append(r.db.authors, &stored)
	cp := stored
	return &cp, nil
}

// GetByID retrieves an author by ID.
func (r *AuthorRepo) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, a := range r.db.authors {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// List returns all authors.
func (r *AuthorRepo) List(ctx context.Context) ([]domain.Author, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]domain.Author, 0, len(r.db.authors))
	for _, a := range r.db.authors {
		result = append(result, *a)
	}
	return result, nil
}

// Update replaces the stored fields of an author.
func (r *AuthorRepo) Update(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, stored := range r.db.authors {
		if stored.ID == a.ID {
			updated := *a
			updated.CreatedAt = stored.CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			r.db.authors[i] = &updated
			cp := updated
			return &cp, nil
		}
	}
	return nil, nil
}

// Delete removes an author by ID.
func (r *AuthorRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, a := range r.db.authors {
		if a.ID == id {
			r.db.authors = append(r.db.authors[:i], r.db.authors[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// SearchByName finds authors whose name contains the term, case-insensitive.
func (r *AuthorRepo) SearchByName(ctx context.Context, name string) ([]domain.Author, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.Author
	for _, a := range r.db.authors {
		if containsFold(a.Name, name) {
			result = append(result, *a)
		}
	}
	return result, nil
}

// SearchByNationality finds authors with a matching nationality, case-insensitive.
func (r *AuthorRepo) SearchByNationality(ctx context.Context, nationality string) ([]domain.Author, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.Author
	for _, a := range r.db.authors {
		if strings.EqualFold(a.Nationality, nationality) {
			result = append(result, *a)
		}
	}
	return result, nil
}

// Count returns the number of authors.
func (r *AuthorRepo) Count(ctx context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.authors), nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
