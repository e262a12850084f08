package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
)

// uniqueViolation SQLSTATE нарушения UNIQUE ограничения
const uniqueViolation = "23505"

// invalidTextRepresentation SQLSTATE для некорректного UUID в запросе
const invalidTextRepresentation = "22P02"

const accountColumns = `id::text, username, email, password_hash, saved_books, created_at`

// CreateAccount creates a new account in the storage
func (s *Storage) CreateAccount(ctx context.Context, account *models.Account) error {
	books := account.SavedBooks
	if books == nil {
		books = []models.SavedBook{}
	}

	data, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("failed to marshal saved books: %w", err)
	}

	query := `
		INSERT INTO accounts (id, username, email, password_hash, saved_books, created_at)
		VALUES ($1, $2, $3, $4, $5::text::jsonb, $6)
	`

	_, err = s.pool.Exec(ctx, query,
		account.ID,
		account.Username,
		account.Email,
		account.PasswordHash,
		string(data),
		account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return storage.ErrAccountAlreadyExists
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetAccountByEmail retrieves account by email
func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	return scanAccount(s.pool.QueryRow(ctx, query, email), true)
}

// GetAccountByID retrieves account by ID
func (s *Storage) GetAccountByID(ctx context.Context, accountID string, withBooks bool) (*models.Account, error) {
	booksColumn := "'[]'::jsonb"
	if withBooks {
		booksColumn = "saved_books"
	}

	query := `
		SELECT id::text, username, email, password_hash, ` + booksColumn + `, created_at
		FROM accounts
		WHERE id = $1::text::uuid
	`

	return scanAccount(s.pool.QueryRow(ctx, query, accountID), withBooks)
}

// AddSavedBook appends book unless a book with the same BookID is already saved.
// Под READ COMMITTED конкурирующий UPDATE той же строки ждет блокировку и
// перепроверяет WHERE на новой версии строки, поэтому дубликата не будет.
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
		SET saved_books = saved_books || jsonb_build_array($2::text::jsonb)
		WHERE id = $1::text::uuid
		  AND NOT EXISTS (
		      SELECT 1 FROM jsonb_array_elements(saved_books) AS b
		      WHERE b->>'bookId' = $3
		  )
		RETURNING ` + accountColumns

	account, err := scanAccount(s.pool.QueryRow(ctx, query, accountID, string(data), book.BookID), true)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, storage.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to add saved book: %w", err)
	}

	// Книга уже сохранена или аккаунта нет
	return s.GetAccountByID(ctx, accountID, true)
}

// RemoveSavedBook removes every saved book with the given BookID
func (s *Storage) RemoveSavedBook(ctx context.Context, accountID, bookID string) (*models.Account, error) {
	query := `
		UPDATE accounts
		SET saved_books = COALESCE((
		    SELECT jsonb_agg(b.elem ORDER BY b.ord)
		    FROM jsonb_array_elements(saved_books) WITH ORDINALITY AS b(elem, ord)
		    WHERE b.elem->>'bookId' IS DISTINCT FROM $2
		), '[]'::jsonb)
		WHERE id = $1::text::uuid
		RETURNING ` + accountColumns

	account, err := scanAccount(s.pool.QueryRow(ctx, query, accountID, bookID), true)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to remove saved book: %w", err)
	}

	return account, nil
}

// scanAccount сканирует одну строку аккаунта
func scanAccount(row pgx.Row, withBooks bool) (*models.Account, error) {
	account := &models.Account{}
	var books []byte

	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&books,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if withBooks {
		account.SavedBooks = []models.SavedBook{}
		if len(books) > 0 {
			if err := json.Unmarshal(books, &account.SavedBooks); err != nil {
				return nil, fmt.Errorf("failed to unmarshal saved books: %w", err)
			}
		}
	}

	return account, nil
}
