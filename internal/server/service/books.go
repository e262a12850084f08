package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
	"github.com/iudanet/bookshelf/internal/validation"
)

// SavedBooks управляет коллекцией сохраненных книг аккаунта с семантикой множества по bookId.
// Каждая операция - один атомарный вызов хранилища.
type SavedBooks struct {
	logger  *slog.Logger
	storage storage.AccountStorage
}

// NewSavedBooks создает новый SavedBooks
func NewSavedBooks(logger *slog.Logger, accounts storage.AccountStorage) *SavedBooks {
	return &SavedBooks{
		logger:  logger,
		storage: accounts,
	}
}

// Save добавляет книгу, если книги с таким bookId еще нет.
// Повторное сохранение того же bookId ничего не меняет.
func (b *SavedBooks) Save(ctx context.Context, accountID string, book models.SavedBook) (*models.Account, error) {
	if err := validation.ValidateBook(book); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if book.Authors == nil {
		book.Authors = []string{}
	}

	account, err := b.storage.AddSavedBook(ctx, accountID, book)
	if err != nil {
		return nil, b.mutationError(ctx, "save book", accountID, err)
	}

	b.logger.DebugContext(ctx, "book saved",
		slog.String("user_id", accountID),
		slog.String("book_id", book.BookID),
		slog.Int("book_count", account.BookCount()))

	return account, nil
}

// Remove удаляет все книги с данным bookId.
// Если такой книги нет, операция успешна и возвращает аккаунт без изменений.
func (b *SavedBooks) Remove(ctx context.Context, accountID, bookID string) (*models.Account, error) {
	if validation.ValidateBookID(bookID) != nil {
		// такой ключ не мог быть сохранен: удалять нечего
		account, err := b.storage.GetAccountByID(ctx, accountID, true)
		if err != nil {
			return nil, b.mutationError(ctx, "remove book", accountID, err)
		}
		return account, nil
	}

	account, err := b.storage.RemoveSavedBook(ctx, accountID, bookID)
	if err != nil {
		return nil, b.mutationError(ctx, "remove book", accountID, err)
	}

	b.logger.DebugContext(ctx, "book removed",
		slog.String("user_id", accountID),
		slog.String("book_id", bookID),
		slog.Int("book_count", account.BookCount()))

	return account, nil
}

// mutationError: аккаунта за валидным токеном больше нет - считаем сессию недействительной
func (b *SavedBooks) mutationError(ctx context.Context, operation, accountID string, err error) error {
	if errors.Is(err, storage.ErrAccountNotFound) {
		b.logger.WarnContext(ctx, "account from token not found", slog.String("user_id", accountID))
		return ErrUnauthenticated
	}
	return collaboratorFailure(ctx, b.logger, operation, err)
}
