package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
	"github.com/iudanet/bookshelf/internal/validation"
)

// PasswordHasher хеширует пароли и сверяет их с сохраненным хешем
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(password, encoded string) bool
}

// FindOptions параметры поиска аккаунта
type FindOptions struct {
	IncludeSavedBooks bool
}

// AccountDirectory создает и ищет аккаунты.
// Хранит только хеш пароля, уникальность username и email обеспечивает хранилище.
type AccountDirectory struct {
	logger  *slog.Logger
	storage storage.AccountStorage
	hasher  PasswordHasher
	now     func() time.Time
}

// NewAccountDirectory создает новый AccountDirectory
func NewAccountDirectory(logger *slog.Logger, accounts storage.AccountStorage, hasher PasswordHasher) *AccountDirectory {
	return &AccountDirectory{
		logger:  logger,
		storage: accounts,
		hasher:  hasher,
		now:     time.Now,
	}
}

// CreateAccount регистрирует новый аккаунт.
// Токен не выпускает - это делает вызывающий код.
func (d *AccountDirectory) CreateAccount(ctx context.Context, username, email, password string) (*models.Account, error) {
	email = validation.NormalizeEmail(email)

	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := d.hasher.Hash(password)
	if err != nil {
		return nil, collaboratorFailure(ctx, d.logger, "hash password", err)
	}

	account := &models.Account{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		SavedBooks:   []models.SavedBook{},
		CreatedAt:    d.now().UTC(),
	}

	if err := d.storage.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, storage.ErrAccountAlreadyExists) {
			d.logger.WarnContext(ctx, "account already exists", slog.String("username", username))
			return nil, ErrDuplicateIdentity
		}
		return nil, collaboratorFailure(ctx, d.logger, "create account", err)
	}

	d.logger.InfoContext(ctx, "account created",
		slog.String("user_id", account.ID),
		slog.String("username", account.Username))

	return account, nil
}

// FindByEmail ищет аккаунт по email. Возвращает nil, если аккаунта нет.
func (d *AccountDirectory) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	account, err := d.storage.GetAccountByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, collaboratorFailure(ctx, d.logger, "find account by email", err)
	}

	return account, nil
}

// FindByID ищет аккаунт по ID. Возвращает nil, если аккаунта нет.
func (d *AccountDirectory) FindByID(ctx context.Context, accountID string, opts FindOptions) (*models.Account, error) {
	account, err := d.storage.GetAccountByID(ctx, accountID, opts.IncludeSavedBooks)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, collaboratorFailure(ctx, d.logger, "find account by id", err)
	}

	return account, nil
}
