package adapthttp

import (
	"strconv"

	"bookstore/internal/domain"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	Username  string `json:"username"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type bookRequest struct {
	Title           string  `json:"title" validate:"required,max=100"`
	Author          string  `json:"author" validate:"required,max=100"`
	Description     string  `json:"description" validate:"max=500"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	ISBN            string  `json:"isbn" validate:"omitempty,numeric,min=10,max=13"`
	PublicationYear int     `json:"publicationYear" validate:"omitempty,min=1000,max=9999"`
}

func (req *bookRequest) toDomain() *domain.Book {
	return &domain.Book{
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		Price:           req.Price,
		ISBN:            req.ISBN,
		PublicationYear: req.PublicationYear,
	}
}

type authorRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Nationality string `json:"nationality" validate:"max=50"`
	Email       string `json:"email" validate:"omitempty,email,max=100"`
	Biography   string `json:"biography" validate:"max=500"`
	BirthDate   string `json:"birthDate" validate:"required,datetime=2006-01-02"`
}

func (req *authorRequest) toDomain() *domain.Author {
	return &domain.Author{
		Name:        req.Name,
		Nationality: req.Nationality,
		Email:       req.Email,
		Biography:   req.Biography,
		BirthDate:   req.BirthDate,
	}
}

// birthYearValid reports whether the already format-checked date carries a
// plausible four-digit year.
func (req *authorRequest) birthYearValid() bool {
	if len(req.BirthDate) < 4 {
		return false
	}
	year, err := strconv.Atoi(req.BirthDate[:4])
	return err == nil && year >= 1000 && year <= 9999
}
