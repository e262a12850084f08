package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/iudanet/bookshelf/internal/server/session"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		handler       http.HandlerFunc
		name          string
		method        string
		path          string
		expectedLevel string
		expectedCode  int
	}{
		{
			name:   "GET request with 200 OK",
			method: http.MethodGet,
			path:   "/api/v1/me",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("success"))
			},
			expectedCode:  http.StatusOK,
			expectedLevel: "level=INFO",
		},
		{
			name:   "POST request with 401",
			method: http.MethodPost,
			path:   "/api/v1/auth/login",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedLevel: "level=WARN",
		},
		{
			name:   "server error",
			method: http.MethodDelete,
			path:   "/api/v1/me/books/b1",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedLevel: "level=ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := LoggingMiddleware(bufferLogger(&buf))(tt.handler)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer super-secret-token")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			logOutput := buf.String()
			assert.Contains(t, logOutput, tt.expectedLevel)
			assert.Contains(t, logOutput, "method="+tt.method)
			assert.Contains(t, logOutput, "path="+tt.path)
			assert.NotContains(t, logOutput, "super-secret-token")
		})
	}
}

func TestLoggingMiddleware_RequestIDAndUser(t *testing.T) {
	var buf bytes.Buffer
	inner := LoggingMiddleware(bufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// сессия кладется в контекст до логирования, как в роутере
	handler := chimw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := session.WithSession(r.Context(), &session.Session{AccountID: "acc-1"})
		inner.ServeHTTP(w, r.WithContext(ctx))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	assert.Contains(t, logOutput, "request_id=")
	assert.Contains(t, logOutput, "user_id=acc-1")
	assert.Contains(t, logOutput, "status=204")
}

func TestLoggingMiddleware_CapturesBytesWritten(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingMiddleware(bufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("12345"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "bytes_written=5")
	assert.Contains(t, buf.String(), "status=200")
}

func TestLoggingWithSkip(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingWithSkip(bufferLogger(&buf), []string{"/api/v1/health", "/metrics"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	for _, path := range []string{"/api/v1/health", "/metrics"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Empty(t, buf.String())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Contains(t, buf.String(), "path=/api/v1/me")
}
