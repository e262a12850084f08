package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
)

const accountColumns = `id, username, email, password_hash, saved_books, created_at`

// CreateAccount creates a new account in the storage
func (s *Storage) CreateAccount(ctx context.Context, account *models.Account) error {
	books, err := encodeBooks(account.SavedBooks)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO accounts (id, username, email, password_hash, saved_books, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		account.ID,
		account.Username,
		account.Email,
		account.PasswordHash,
		books,
		account.CreatedAt,
	)
	if err != nil {
		// Дубликат username или email
		if isUniqueViolation(err) {
			return storage.ErrAccountAlreadyExists
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetAccountByEmail retrieves account by email
func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = ?`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, email), true)
	if err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccountByID retrieves account by ID
func (s *Storage) GetAccountByID(ctx context.Context, accountID string, withBooks bool) (*models.Account, error) {
	// Без книг не тянем JSON массив из БД
	booksColumn := "'[]'"
	if withBooks {
		booksColumn = "saved_books"
	}

	query := `
		SELECT id, username, email, password_hash, ` + booksColumn + `, created_at
		FROM accounts
		WHERE id = ?
	`

	return scanAccount(s.db.QueryRowContext(ctx, query, accountID), withBooks)
}

// AddSavedBook appends book unless a book with the same BookID is already saved.
// Проверка и вставка выполняются одним UPDATE, поэтому параллельные вызовы
// с одинаковым bookId сходятся к одной записи.
func (s *Storage) AddSavedBook(ctx context.Context, accountID string, book models.SavedBook) (*models.Account, error) {
	if book.Authors == nil {
		book.Authors = []string{}
	}

	data, err := json.Marshal(book)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal book: %w", err)
	}

	query := `
		UPDATE accounts
		SET saved_books = json_insert(saved_books, '$[#]', json(?))
		WHERE id = ?
		  AND NOT EXISTS (
		      SELECT 1 FROM json_each(accounts.saved_books) AS b
		      WHERE json_extract(b.value, '$.bookId') = ?
		  )
		RETURNING ` + accountColumns

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, string(data), accountID, book.BookID), true)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, storage.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to add saved book: %w", err)
	}

	// Ни одна строка не обновлена: либо книга уже сохранена, либо нет аккаунта
	return s.GetAccountByID(ctx, accountID, true)
}

// RemoveSavedBook removes every saved book with the given BookID
func (s *Storage) RemoveSavedBook(ctx context.Context, accountID, bookID string) (*models.Account, error) {
	query := `
		UPDATE accounts
		SET saved_books = (
		    SELECT json_group_array(json(b.value))
		    FROM json_each(accounts.saved_books) AS b
		    WHERE json_extract(b.value, '$.bookId') IS NOT ?
		)
		WHERE id = ?
		RETURNING ` + accountColumns

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, bookID, accountID), true)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to remove saved book: %w", err)
	}

	return account, nil
}

// scanAccount сканирует одну строку аккаунта
func scanAccount(row *sql.Row, withBooks bool) (*models.Account, error) {
	account := &models.Account{}
	var books string

	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&books,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if withBooks {
		if account.SavedBooks, err = decodeBooks(books); err != nil {
			return nil, err
		}
	}

	return account, nil
}

func encodeBooks(books []models.SavedBook) (string, error) {
	if books == nil {
		return "[]", nil
	}
	data, err := json.Marshal(books)
	if err != nil {
		return "", fmt.Errorf("failed to marshal saved books: %w", err)
	}
	return string(data), nil
}

func decodeBooks(data string) ([]models.SavedBook, error) {
	books := []models.SavedBook{}
	if data == "" {
		return books, nil
	}
	if err := json.Unmarshal([]byte(data), &books); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved books: %w", err)
	}
	return books, nil
}

// isUniqueViolation проверяет нарушение UNIQUE/PRIMARY KEY ограничения
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// без расширенных кодов остается только текст ошибки
		return strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
	}

	return false
}
