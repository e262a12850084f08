package models

import "time"

// Account представляет зарегистрированного пользователя
type Account struct {
	CreatedAt    time.Time   `json:"created_at"`  // время регистрации
	ID           string      `json:"id"`          // UUID аккаунта
	Username     string      `json:"username"`    // уникальный username
	Email        string      `json:"email"`       // уникальный email (нормализованный)
	PasswordHash string      `json:"-"`           // argon2id хеш пароля, наружу не отдается
	SavedBooks   []SavedBook `json:"saved_books"` // сохраненные книги, порядок добавления
}

// BookCount возвращает количество сохраненных книг
func (a *Account) BookCount() int {
	return len(a.SavedBooks)
}

// HasBook проверяет, сохранена ли книга с данным bookId
func (a *Account) HasBook(bookID string) bool {
	for _, b := range a.SavedBooks {
		if b.BookID == bookID {
			return true
		}
	}
	return false
}

// SavedBook ссылка на книгу из внешнего каталога, сохраненная пользователем.
// Ключ - BookID: у аккаунта не может быть двух книг с одинаковым BookID.
type SavedBook struct {
	BookID      string   `json:"bookId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
	Authors     []string `json:"authors"`
}
