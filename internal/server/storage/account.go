package storage

import (
	"context"

	"github.com/iudanet/bookshelf/internal/models"
)

// AccountStorage defines interface for account persistence.
// Saved books are embedded in the account record; every mutation is a single
// atomic conditional update, so implementations never read-modify-write.
type AccountStorage interface {
	// CreateAccount stores a new account
	// Returns ErrAccountAlreadyExists if username or email is taken
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccountByEmail retrieves account by normalized email with saved books
	// Returns ErrAccountNotFound if account doesn't exist
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetAccountByID retrieves account by ID
	// Saved books are loaded only when withBooks is true
	// Returns ErrAccountNotFound if account doesn't exist
	GetAccountByID(ctx context.Context, accountID string, withBooks bool) (*models.Account, error)

	// AddSavedBook appends book unless a book with the same BookID is already saved
	// Returns the account after the update
	// Returns ErrAccountNotFound if account doesn't exist
	AddSavedBook(ctx context.Context, accountID string, book models.SavedBook) (*models.Account, error)

	// RemoveSavedBook removes every saved book with the given BookID
	// Removing a book that is not saved is a no-op
	// Returns ErrAccountNotFound if account doesn't exist
	RemoveSavedBook(ctx context.Context, accountID, bookID string) (*models.Account, error)

	// Ping checks that the storage is reachable
	Ping(ctx context.Context) error

	// Close releases underlying resources
	Close() error
}
