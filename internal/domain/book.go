package domain

import (
	"context"
	"time"
)

// Book represents a single catalog entry.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	ISBN            string    `json:"isbn,omitempty"`
	PublicationYear int       `json:"publicationYear,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookRepository is the port for book persistence.
type BookRepository interface {
	Create(ctx context.Context, b *Book) (*Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	GetByISBN(ctx context.Context, isbn string) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Update(ctx context.Context, b *Book) (*Book, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SearchByTitle(ctx context.Context, title string) ([]Book, error)
	SearchByAuthor(ctx context.Context, author string) ([]Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	Count(ctx context.Context) (int, error)
}
