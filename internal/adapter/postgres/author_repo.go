package postgres

import (
	"context"
	"database/sql"
	"time"

	"bookstore/internal/domain"
)

// AuthorRepo implements domain.AuthorRepository on DB.
type AuthorRepo struct {
	db *DB
}

// NewAuthorRepo wraps a DB as an AuthorRepository.
func NewAuthorRepo(db *DB) *AuthorRepo {
	return &AuthorRepo{db: db}
}

const authorColumns = "id, name, biography, birth_date, email, nationality, created_at, updated_at"

func scanAuthor(row interface{ Scan(...any) error }) (*domain.Author, error) {
	var a domain.Author
	var birthDate time.Time
	err := row.Scan(&a.ID, &a.Name, &a.Biography, &birthDate, &a.Email, &a.Nationality, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.BirthDate = birthDate.Format("2006-01-02")
	return &a, nil
}

// Create inserts a new author profile.
func (r *AuthorRepo) Create(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	now := time.Now()
	row := r.db.sql.QueryRowContext(ctx,
		`INSERT INTO authors (name, biography, birth_date, email, nationality, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)
		 RETURNING `+authorColumns,
		a.Name, a.Biography, a.BirthDate, a.Email, a.Nationality, now,
	)
	return scanAuthor(row)
}

// GetByID retrieves an author by id.
func (r *AuthorRepo) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	row := r.db.sql.QueryRowContext(ctx,
		"SELECT "+authorColumns+" FROM authors WHERE id = $1", id)
	a, err := scanAuthor(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return a, err
}

// List returns all authors ordered by id.
func (r *AuthorRepo) List(ctx context.Context) ([]domain.Author, error) {
	return r.query(ctx, "SELECT "+authorColumns+" FROM authors ORDER BY id")
}

// Update replaces the mutable fields of an author.
func (r *AuthorRepo) Update(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	row := r.db.sql.QueryRowContext(ctx,
		`UPDATE authors
		 SET name = $2, biography = $3, birth_date = $4, email = $5, nationality = $6, updated_at = $7
		 WHERE id = $1
		 RETURNING `+authorColumns,
		a.ID, a.Name, a.Biography, a.BirthDate, a.Email, a.Nationality, time.Now(),
	)
	updated, err := scanAuthor(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return updated, err
}

// Delete removes an author, reporting whether a row was deleted.
func (r *AuthorRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// SearchByName finds authors whose name contains the term, case-insensitive.
func (r *AuthorRepo) SearchByName(ctx context.Context, name string) ([]domain.Author, error) {
	return r.query(ctx,
		"SELECT "+authorColumns+" FROM authors WHERE name ILIKE '%' || $1 || '%' ORDER BY id", name)
}

// SearchByNationality finds authors with a matching nationality, case-insensitive.
func (r *AuthorRepo) SearchByNationality(ctx context.Context, nationality string) ([]domain.Author, error) {
	return r.query(ctx,
		"SELECT "+authorColumns+" FROM authors WHERE nationality ILIKE $1 ORDER BY id", nationality)
}

// Count returns the number of authors.
func (r *AuthorRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM authors").Scan(&count)
	return count, err
}

func (r *AuthorRepo) query(ctx context.Context, q string, args ...any) ([]domain.Author, error) {
	rows, err := r.db.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []domain.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		authors = append(authors, *a)
	}
	return authors, rows.Err()
}
