package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitRecorder учитывает отклоненные запросы
type RateLimitRecorder interface {
	RecordRateLimited()
}

// clientLimiter лимитер клиента и время последнего обращения
type clientLimiter struct {
	lastAccess time.Time
	limiter    *rate.Limiter
}

// RateLimiter ограничивает частоту запросов по IP клиента (token bucket)
type RateLimiter struct {
	clients  map[string]*clientLimiter
	logger   *slog.Logger
	recorder RateLimitRecorder
	stopC    chan struct{}
	now      func() time.Time
	idleTTL  time.Duration
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	// trustProxy разрешает брать IP из X-Forwarded-For / X-Real-IP
	trustProxy bool
}

// RateLimiterOption настраивает RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithTrustedProxyHeaders включает чтение IP клиента из заголовков прокси.
// Только для сервера за reverse proxy, который перезаписывает эти заголовки.
func WithTrustedProxyHeaders(trust bool) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.trustProxy = trust
	}
}

// NewRateLimiter создает rate limiter.
// limit - запросов в секунду, burst - размер бакета.
// Неактивные клиенты удаляются фоновой горутиной до вызова Stop.
func NewRateLimiter(limit rate.Limit, burst int, logger *slog.Logger, recorder RateLimitRecorder, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientLimiter),
		logger:   logger,
		recorder: recorder,
		stopC:    make(chan struct{}),
		now:      time.Now,
		idleTTL:  10 * time.Minute,
		limit:    limit,
		burst:    burst,
	}
	for _, opt := range opts {
		opt(rl)
	}

	go rl.cleanup()

	return rl
}

// cleanup периодически удаляет неактивных клиентов
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopC:
			return
		}
	}
}

// evictIdle удаляет клиентов, не обращавшихся дольше idleTTL
func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, c := range rl.clients {
		if now.Sub(c.lastAccess) > rl.idleTTL {
			delete(rl.clients, key)
		}
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopC)
}

// Allow проверяет, разрешен ли запрос для данного ключа (обычно IP адрес)
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	now := rl.now()
	c.lastAccess = now
	rl.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// Middleware возвращает middleware, отвечающее 429 при превышении лимита
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := getClientIP(r, rl.trustProxy)

		if !rl.Allow(key) {
			rl.logger.WarnContext(r.Context(), "Rate limit exceeded",
				slog.String("ip", key),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if rl.recorder != nil {
				rl.recorder.RecordRateLimited()
			}

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too Many Requests","message":"rate limit exceeded, please try again later"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClientIP извлекает IP адрес клиента из запроса.
// Заголовки X-Forwarded-For и X-Real-IP учитываются только при trustProxy,
// иначе клиент мог бы обходить лимит, подставляя произвольный адрес.
func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}

		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
