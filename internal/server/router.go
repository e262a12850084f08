// Package server собирает HTTP API: маршруты, middleware и жизненный цикл сервера.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/bookshelf/internal/server/handlers"
	"github.com/iudanet/bookshelf/internal/server/metrics"
	"github.com/iudanet/bookshelf/internal/server/middleware"
	"github.com/iudanet/bookshelf/internal/server/session"
)

// RouterDeps зависимости NewRouter
type RouterDeps struct {
	Logger      *slog.Logger
	Service     handlers.AccountService
	Store       handlers.Pinger
	Verifier    session.TokenVerifier
	Metrics     *metrics.Collector
	Gatherer    prometheus.Gatherer
	AuthLimiter *middleware.RateLimiter
}

// NewRouter возвращает chi.Router со всеми маршрутами API.
//
// Порядок middleware:
//
//	Recovery → RequestID → Session → Logging → Metrics
//
// Rate limit применяется только к /api/v1/auth/*.
// Session никогда не отказывает сама: доступ проверяет сервис.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(chimw.RequestID)
	r.Use(middleware.SessionMiddleware(deps.Logger, deps.Verifier))
	r.Use(middleware.LoggingWithSkip(deps.Logger, []string{"/api/v1/health", "/metrics"}))
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	authHandler := handlers.NewAuthHandler(deps.Logger, deps.Service)
	booksHandler := handlers.NewBooksHandler(deps.Logger, deps.Service)
	healthHandler := handlers.NewHealthHandler(deps.Logger, deps.Store)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Route("/auth", func(r chi.Router) {
			if deps.AuthLimiter != nil {
				r.Use(deps.AuthLimiter.Middleware)
			}
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/me", func(r chi.Router) {
			r.Get("/", booksHandler.Me)
			r.Post("/books", booksHandler.SaveBook)
			r.Delete("/books/{bookId}", booksHandler.RemoveBook)
		})
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))

	return r
}
