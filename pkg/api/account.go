package api

import (
	"time"

	"github.com/iudanet/bookshelf/internal/models"
)

// AccountResponse представляет аккаунт в ответах API.
// Хеш пароля никогда не попадает в ответ.
type AccountResponse struct {
	CreatedAt  time.Time   `json:"created_at"`
	ID         string      `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	SavedBooks []BookInput `json:"saved_books"`
	BookCount  int         `json:"book_count"`
}

// BookInput представляет сохраняемую книгу в запросах и ответах
type BookInput struct {
	BookID      string   `json:"bookId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Link        string   `json:"link,omitempty"`
	Authors     []string `json:"authors"`
}

// NewAccountResponse строит ответ из модели аккаунта
func NewAccountResponse(account *models.Account) AccountResponse {
	books := make([]BookInput, 0, len(account.SavedBooks))
	for _, b := range account.SavedBooks {
		books = append(books, NewBookInput(b))
	}

	return AccountResponse{
		ID:         account.ID,
		Username:   account.Username,
		Email:      account.Email,
		CreatedAt:  account.CreatedAt,
		SavedBooks: books,
		BookCount:  account.BookCount(),
	}
}

// NewBookInput строит DTO книги из модели
func NewBookInput(b models.SavedBook) BookInput {
	authors := b.Authors
	if authors == nil {
		authors = []string{}
	}
	return BookInput{
		BookID:      b.BookID,
		Title:       b.Title,
		Authors:     authors,
		Description: b.Description,
		Image:       b.Image,
		Link:        b.Link,
	}
}

// Model преобразует DTO в модель книги
func (b BookInput) Model() models.SavedBook {
	return models.SavedBook{
		BookID:      b.BookID,
		Title:       b.Title,
		Authors:     b.Authors,
		Description: b.Description,
		Image:       b.Image,
		Link:        b.Link,
	}
}
