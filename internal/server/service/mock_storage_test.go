package service

import (
	"context"
	"testing"

	"github.com/iudanet/bookshelf/internal/models"
)

// mockAccountStorage is a mock implementation of storage.AccountStorage for testing.
// Unset functions fail the test when t is set.
type mockAccountStorage struct {
	t                 *testing.T
	createAccount     func(ctx context.Context, account *models.Account) error
	getAccountByEmail func(ctx context.Context, email string) (*models.Account, error)
	getAccountByID    func(ctx context.Context, accountID string, withBooks bool) (*models.Account, error)
	addSavedBook      func(ctx context.Context, accountID string, book models.SavedBook) (*models.Account, error)
	removeSavedBook   func(ctx context.Context, accountID, bookID string) (*models.Account, error)
}

func (m *mockAccountStorage) unexpected(method string) {
	if m.t != nil {
		m.t.Fatalf("unexpected storage call: %s", method)
	}
}

func (m *mockAccountStorage) CreateAccount(ctx context.Context, account *models.Account) error {
	if m.createAccount == nil {
		m.unexpected("CreateAccount")
		return nil
	}
	return m.createAccount(ctx, account)
}

func (m *mockAccountStorage) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	if m.getAccountByEmail == nil {
		m.unexpected("GetAccountByEmail")
		return nil, nil
	}
	return m.getAccountByEmail(ctx, email)
}

func (m *mockAccountStorage) GetAccountByID(ctx context.Context, accountID string, withBooks bool) (*models.Account, error) {
	if m.getAccountByID == nil {
		m.unexpected("GetAccountByID")
		return nil, nil
	}
	return m.getAccountByID(ctx, accountID, withBooks)
}

func (m *mockAccountStorage) AddSavedBook(ctx context.Context, accountID string, book models.SavedBook) (*models.Account, error) {
	if m.addSavedBook == nil {
		m.unexpected("AddSavedBook")
		return nil, nil
	}
	return m.addSavedBook(ctx, accountID, book)
}

func (m *mockAccountStorage) RemoveSavedBook(ctx context.Context, accountID, bookID string) (*models.Account, error) {
	if m.removeSavedBook == nil {
		m.unexpected("RemoveSavedBook")
		return nil, nil
	}
	return m.removeSavedBook(ctx, accountID, bookID)
}

func (m *mockAccountStorage) Ping(context.Context) error {
	m.unexpected("Ping")
	return nil
}

func (m *mockAccountStorage) Close() error {
	return nil
}
