// Package session описывает аутентифицированную личность запроса.
//
// Session строится один раз на запрос из bearer токена и дальше передается
// явным параметром в каждую операцию, которой нужна личность.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/bookshelf/internal/server/jwt"
)

// ErrNoToken запрос пришел без токена
var ErrNoToken = errors.New("no token")

// Session аутентифицированный аккаунт текущего запроса
type Session struct {
	ExpiresAt time.Time
	AccountID string
	Username  string
	Email     string
}

// TokenVerifier проверяет токен и возвращает его claims
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// FromToken проверяет токен и строит Session.
// Пустой токен - ErrNoToken, невалидный - ошибка верификатора.
func FromToken(verifier TokenVerifier, token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNoToken
	}

	claims, err := verifier.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	s := &Session{
		AccountID: claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}

	return s, nil
}

// BearerToken извлекает токен из значения заголовка Authorization.
// Ожидается формат "Bearer <token>", префикс без учета регистра.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}

// contextKey тип для ключей контекста
type contextKey struct{}

// WithSession кладет Session в контекст запроса (используется только HTTP слоем)
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext достает Session из контекста, nil если запрос анонимный
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
