package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/session"
	"github.com/iudanet/bookshelf/internal/server/storage"
	"github.com/iudanet/bookshelf/internal/validation"
)

// TokenIssuer выпускает токены для аккаунтов
type TokenIssuer interface {
	Issue(account *models.Account) (string, time.Time, error)
}

// Recorder принимает исходы операций (метрики)
type Recorder interface {
	RecordOperation(operation, outcome string)
}

// Исходы операций для Recorder
const (
	OutcomeSuccess            = "success"
	OutcomeUnauthenticated    = "unauthenticated"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeDuplicate          = "duplicate"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeFailure            = "failure"
)

type noopRecorder struct{}

func (noopRecorder) RecordOperation(string, string) {}

// AuthResult результат login и signup
type AuthResult struct {
	ExpiresAt time.Time
	Account   *models.Account
	Token     string
}

// Service операции приложения: me, login, signup, saveBook, removeBook
type Service struct {
	logger    *slog.Logger
	accounts  *AccountDirectory
	books     *SavedBooks
	hasher    PasswordHasher
	tokens    TokenIssuer
	recorder  Recorder
	dummyOnce sync.Once
	dummyHash string
}

// Option настраивает Service
type Option func(*Service)

// WithRecorder подключает сбор метрик
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// New создает Service поверх хранилища аккаунтов
func New(logger *slog.Logger, accounts storage.AccountStorage, hasher PasswordHasher, tokens TokenIssuer, opts ...Option) *Service {
	s := &Service{
		logger:   logger,
		accounts: NewAccountDirectory(logger, accounts, hasher),
		books:    NewSavedBooks(logger, accounts),
		hasher:   hasher,
		tokens:   tokens,
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Directory возвращает AccountDirectory сервиса
func (s *Service) Directory() *AccountDirectory {
	return s.accounts
}

// Me возвращает аккаунт текущей сессии вместе с сохраненными книгами
func (s *Service) Me(ctx context.Context, sess *session.Session) (account *models.Account, err error) {
	defer func() { s.record("me", err) }()

	accountID, err := authorize(sess)
	if err != nil {
		return nil, err
	}

	account, err = s.accounts.FindByID(ctx, accountID, FindOptions{IncludeSavedBooks: true})
	if err != nil {
		return nil, err
	}
	if account == nil {
		s.logger.WarnContext(ctx, "account from token not found", slog.String("user_id", accountID))
		return nil, ErrUnauthenticated
	}

	return account, nil
}

// Login проверяет email и пароль и выпускает токен.
// Неизвестный email и неверный пароль дают одну и ту же ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (result *AuthResult, err error) {
	defer func() { s.record("login", err) }()

	email = validation.NormalizeEmail(email)
	if validation.ValidateEmail(email) != nil || password == "" {
		s.burnVerification(password)
		return nil, ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		// Та же стоимость, что и у проверки настоящего пароля
		s.burnVerification(password)
		s.logger.WarnContext(ctx, "login failed")
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Matches(password, account.PasswordHash) {
		s.logger.WarnContext(ctx, "login failed", slog.String("user_id", account.ID))
		return nil, ErrInvalidCredentials
	}

	result, err = s.issue(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", account.ID))

	return result, nil
}

// Signup создает аккаунт и выпускает для него токен
func (s *Service) Signup(ctx context.Context, username, email, password string) (result *AuthResult, err error) {
	defer func() { s.record("signup", err) }()

	account, err := s.accounts.CreateAccount(ctx, username, email, password)
	if err != nil {
		return nil, err
	}

	return s.issue(ctx, account)
}

// SaveBook добавляет книгу в сохраненные книги текущего аккаунта
func (s *Service) SaveBook(ctx context.Context, sess *session.Session, book models.SavedBook) (account *models.Account, err error) {
	defer func() { s.record("save_book", err) }()

	accountID, err := authorize(sess)
	if err != nil {
		return nil, err
	}

	return s.books.Save(ctx, accountID, book)
}

// RemoveBook удаляет книгу из сохраненных книг текущего аккаунта
func (s *Service) RemoveBook(ctx context.Context, sess *session.Session, bookID string) (account *models.Account, err error) {
	defer func() { s.record("remove_book", err) }()

	accountID, err := authorize(sess)
	if err != nil {
		return nil, err
	}

	return s.books.Remove(ctx, accountID, bookID)
}

// issue выпускает токен для аккаунта
func (s *Service) issue(ctx context.Context, account *models.Account) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(account)
	if err != nil {
		return nil, collaboratorFailure(ctx, s.logger, "issue token", err)
	}

	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   account,
	}, nil
}

// burnVerification выполняет проверку пароля против фиктивного хеша,
// чтобы ответ для несуществующего email стоил столько же, сколько для существующего
func (s *Service) burnVerification(password string) {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("bookshelf-dummy-password")
		if err != nil {
			s.logger.Error("failed to prepare dummy hash", slog.Any("error", err))
			return
		}
		s.dummyHash = hash
	})

	if s.dummyHash != "" {
		_ = s.hasher.Matches(password, s.dummyHash)
	}
}

func (s *Service) record(operation string, err error) {
	s.recorder.RecordOperation(operation, Outcome(err))
}

// Outcome отображает ошибку операции в метку исхода
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrUnauthenticated):
		return OutcomeUnauthenticated
	case errors.Is(err, ErrInvalidCredentials):
		return OutcomeInvalidCredentials
	case errors.Is(err, ErrDuplicateIdentity):
		return OutcomeDuplicate
	case errors.Is(err, ErrInvalidInput):
		return OutcomeInvalidInput
	default:
		return OutcomeFailure
	}
}
