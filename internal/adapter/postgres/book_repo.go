package postgres

import (
	"context"
	"database/sql"
	"time"

	"bookstore/internal/domain"
)

// BookRepo implements domain.BookRepository on DB.
type BookRepo struct {
	db *DB
}

// NewBookRepo wraps a DB as a BookRepository.
func NewBookRepo(db *DB) *BookRepo {
	return &BookRepo{db: db}
}

const bookColumns = "id, title, author, description, price, isbn, publication_year, created_at, updated_at"

func scanBook(row interface{ Scan(...any) error }) (*domain.Book, error) {
	var b domain.Book
	var isbn sql.NullString
	var year sql.NullInt64
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Description, &b.Price, &isbn, &year, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.ISBN = isbn.String
	b.PublicationYear = int(year.Int64)
	return &b, nil
}

func nullISBN(isbn string) sql.NullString {
	return sql.NullString{String: isbn, Valid: isbn != ""}
}

func nullYear(year int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(year), Valid: year != 0}
}

// Create inserts a new book.
func (r *BookRepo) Create(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	now := time.Now()
	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO books (title, author, description, price, isbn, publication_year, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 RETURNING `+bookColumns,
		b.Title, b.Author, b.Description, b.Price, nullISBN(b.ISBN), nullYear(b.PublicationYear), now,
	)
	return scanBook(row)
}

// GetByID retrieves a book by id.
func (r *BookRepo) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+bookColumns+" FROM books WHERE id = $1", id)
	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return b, err
}

// GetByISBN retrieves a book by its ISBN.
func (r *BookRepo) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+bookColumns+" FROM books WHERE isbn = $1", isbn)
	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return b, err
}

// List returns all books ordered by id.
func (r *BookRepo) List(ctx context.Context) ([]domain.Book, error) {
	return r.query(ctx, "SELECT "+bookColumns+" FROM books ORDER BY id")
}

// Update replaces the mutable fields of a book.
func (r *BookRepo) Update(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	row := r.db.sql.QueryRowContext(ctx,
		`UPDATE books
		 SET title = $2, author = $3, description = $4, price = $5, isbn = $6, publication_year = $7, updated_at = $8
		 WHERE id = $1
		 RETURNING `+bookColumns,
		b.ID, b.Title, b.Author, b.Description, b.Price, nullISBN(b.ISBN), nullYear(b.PublicationYear), time.Now(),
	)
	updated, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return updated, err
}

// Delete removes a book, reporting whether a row was deleted.
func (r *BookRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// SearchByTitle finds books whose title contains the term, case-insensitive.
func (r *BookRepo) SearchByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	return r.query(ctx,
		"SELECT "+bookColumns+" FROM books WHERE title ILIKE '%' || $1 || '%' ORDER BY id", title)
}

// SearchByAuthor finds books whose author contains the term, case-insensitive.
func (r *BookRepo) SearchByAuthor(ctx context.Context, author string) ([]domain.Book, error) {
	return r.query(ctx,
		"SELECT "+bookColumns+" FROM books WHERE author ILIKE '%' || $1 || '%' ORDER BY id", author)
}

// ExistsByISBN reports whether any book carries the ISBN.
func (r *BookRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var exists bool
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)", isbn).Scan(&exists)
	return exists, err
}

// Count returns the number of books.
func (r *BookRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count)
	return count, err
}

func (r *BookRepo) query(ctx context.Context, q string, args ...any) ([]domain.Book, error) {
	rows, err := r.db.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}
