package domain

import (
	"context"
	"time"
)

// Author represents a catalog author profile.
type Author struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Biography   string    `json:"biography,omitempty"`
	BirthDate   string    `json:"birthDate"` // "2006-01-02"
	Email       string    `json:"email,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthorRepository is the port for author persistence.
type AuthorRepository interface {
	Create(ctx context.Context, a *Author) (*Author, error)
	GetByID(ctx context.Context, id int64) (*Author, error)
	List(ctx context.Context) ([]Author, error)
	Update(ctx context.Context, a *Author) (*Author, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SearchByName(ctx context.Context, name string) ([]Author, error)
	SearchByNationality(ctx context.Context, nationality string) ([]Author, error)
	Count(ctx context.Context) (int, error)
}
