package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	route  string
	method string
	status int
}

type spyRequestRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (s *spyRequestRecorder) RecordRequest(route, method string, statusCode int, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, recordedRequest{route, method, statusCode})
}

func TestMetricsMiddleware(t *testing.T) {
	rec := &spyRequestRecorder{}

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(rec))
	r.Delete("/api/v1/me/books/{bookId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/api/v1/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodDelete, "/api/v1/me/books/isbn-1", nil),
		httptest.NewRequest(http.MethodDelete, "/api/v1/me/books/isbn-2", nil),
		httptest.NewRequest(http.MethodGet, "/api/v1/me", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, rec.requests, 3)
	// bookId не попадает в метку маршрута
	assert.Equal(t, recordedRequest{"/api/v1/me/books/{bookId}", http.MethodDelete, http.StatusOK}, rec.requests[0])
	assert.Equal(t, rec.requests[0], rec.requests[1])
	assert.Equal(t, recordedRequest{"/api/v1/me", http.MethodGet, http.StatusUnauthorized}, rec.requests[2])
}

func TestMetricsMiddleware_WithoutRouter(t *testing.T) {
	rec := &spyRequestRecorder{}
	handler := MetricsMiddleware(rec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))

	require.Len(t, rec.requests, 1)
	assert.Equal(t, recordedRequest{"unmatched", http.MethodGet, http.StatusOK}, rec.requests[0])
}
