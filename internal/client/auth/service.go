// Package auth управляет локальной сессией клиента: вход, регистрация, выход.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/bookshelf/internal/client/storage"
	"github.com/iudanet/bookshelf/internal/validation"
	"github.com/iudanet/bookshelf/pkg/api"
)

// ErrNotAuthenticated нет сохраненной сессии или токен истек
var ErrNotAuthenticated = errors.New("not authenticated, please run 'bookshelf login' first")

//go:generate moq -out api_mock.go . APIClient

// APIClient запросы авторизации к серверу
type APIClient interface {
	Signup(ctx context.Context, req api.SignupRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
}

// Service предоставляет функции авторизации
type Service struct {
	apiClient APIClient
	store     storage.AuthStorage
	now       func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient APIClient, store storage.AuthStorage) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
		now:       time.Now,
	}
}

// Signup регистрирует аккаунт и сохраняет полученный токен
func (s *Service) Signup(ctx context.Context, username, email, password string) (*storage.AuthData, error) {
	// Валидация до запроса, чтобы не гонять заведомо плохие данные
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	email = validation.NormalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Signup(ctx, api.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	return s.save(ctx, resp)
}

// Login выполняет вход и сохраняет полученный токен
func (s *Service) Login(ctx context.Context, email, password string) (*storage.AuthData, error) {
	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Email:    validation.NormalizeEmail(email),
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.save(ctx, resp)
}

// Logout удаляет локальную сессию. Сервер не уведомляется:
// токен просто перестает использоваться и истекает сам.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	return nil
}

// Session возвращает сохраненную сессию, даже истекшую
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	return auth, nil
}

// Token возвращает действующий токен для запросов к серверу
func (s *Service) Token(ctx context.Context) (string, error) {
	auth, err := s.Session(ctx)
	if err != nil {
		return "", err
	}
	if auth.Expired(s.now()) {
		return "", ErrNotAuthenticated
	}
	return auth.Token, nil
}

func (s *Service) save(ctx context.Context, resp *api.AuthResponse) (*storage.AuthData, error) {
	auth := &storage.AuthData{
		Username:  resp.Account.Username,
		Email:     resp.Account.Email,
		UserID:    resp.Account.ID,
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.Unix(),
	}

	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	return auth, nil
}
