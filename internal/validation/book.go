package validation

import (
	"fmt"
	"strings"

	"github.com/iudanet/bookshelf/internal/models"
)

const (
	// MaxBookIDLen ограничение на длину идентификатора книги во внешнем каталоге
	MaxBookIDLen = 128
	// MaxBookAuthors максимальное количество авторов у одной книги
	MaxBookAuthors = 64
)

// ValidateBookID проверяет ключ книги
func ValidateBookID(bookID string) error {
	if strings.TrimSpace(bookID) == "" {
		return fmt.Errorf("bookId cannot be empty")
	}
	if len(bookID) > MaxBookIDLen {
		return fmt.Errorf("bookId must not exceed %d characters", MaxBookIDLen)
	}
	return nil
}

// ValidateBook проверяет книгу перед сохранением.
// Обязательны bookId и title, остальные поля опциональны.
func ValidateBook(book models.SavedBook) error {
	if err := ValidateBookID(book.BookID); err != nil {
		return err
	}
	if strings.TrimSpace(book.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len(book.Authors) > MaxBookAuthors {
		return fmt.Errorf("book must not have more than %d authors", MaxBookAuthors)
	}
	return nil
}
