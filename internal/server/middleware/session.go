package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/bookshelf/internal/server/session"
)

// SessionMiddleware создает middleware, которое строит сессию из Bearer токена.
// Отсутствующий или невалидный токен не прерывает запрос: сессия просто
// не попадает в контекст, а решение об отказе принимает сервис.
func SessionMiddleware(logger *slog.Logger, verifier session.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := session.BearerToken(header)
			if !ok {
				logger.DebugContext(r.Context(), "ignoring malformed Authorization header")
				next.ServeHTTP(w, r)
				return
			}

			s, err := session.FromToken(verifier, token)
			if err != nil {
				logger.DebugContext(r.Context(), "ignoring invalid token", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			logger.DebugContext(r.Context(), "session established", slog.String("user_id", s.AccountID))

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}
