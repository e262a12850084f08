package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scrape возвращает текст экспозиции метрик из реестра
func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCollector_RecordOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordOperation("login", "success")
	c.RecordOperation("login", "success")
	c.RecordOperation("login", "invalid_credentials")

	body := scrape(t, reg)
	assert.Contains(t, body, `bookshelf_operations_total{operation="login",outcome="success"} 2`)
	assert.Contains(t, body, `bookshelf_operations_total{operation="login",outcome="invalid_credentials"} 1`)
}

func TestCollector_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest("/api/v1/me", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	c.RecordRequest("/api/v1/me", http.MethodGet, http.StatusUnauthorized, time.Millisecond)

	body := scrape(t, reg)
	assert.Contains(t, body, `bookshelf_http_requests_total{method="GET",route="/api/v1/me",status_code="200"} 1`)
	assert.Contains(t, body, `bookshelf_http_requests_total{method="GET",route="/api/v1/me",status_code="401"} 1`)
	assert.Contains(t, body, `bookshelf_http_request_duration_seconds_count{method="GET",route="/api/v1/me"} 2`)
}

func TestCollector_RecordRateLimited(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRateLimited()

	assert.Contains(t, scrape(t, reg), "bookshelf_rate_limited_total 1")
}

func TestNewCollector_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewCollector(reg)

	assert.Panics(t, func() { _ = NewCollector(reg) })
}
