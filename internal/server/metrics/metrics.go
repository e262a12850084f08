// Package metrics собирает Prometheus метрики сервера.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector собирает метрики HTTP запросов и исходов операций сервиса.
// Реализует service.Recorder.
type Collector struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	operations  *prometheus.CounterVec
	rateLimited prometheus.Counter
}

// NewCollector создает Collector и регистрирует метрики в reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookshelf_http_requests_total",
			Help: "Количество HTTP запросов по маршруту, методу и статусу",
		}, []string{"route", "method", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bookshelf_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP запросов (секунды)",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookshelf_operations_total",
			Help: "Исходы операций сервиса",
		}, []string{"operation", "outcome"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookshelf_rate_limited_total",
			Help: "Количество запросов, отклоненных rate limiter",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.operations,
		c.rateLimited,
	)

	return c
}

// RecordRequest записывает завершенный HTTP запрос
func (c *Collector) RecordRequest(route, method string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordOperation записывает исход операции сервиса
func (c *Collector) RecordOperation(operation, outcome string) {
	c.operations.WithLabelValues(operation, outcome).Inc()
}

// RecordRateLimited записывает отклоненный rate limiter запрос
func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

// Handler возвращает HTTP handler для Prometheus scrape
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
