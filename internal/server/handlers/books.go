package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/bookshelf/internal/server/session"
	"github.com/iudanet/bookshelf/pkg/api"
)

// BooksHandler обрабатывает запросы текущего аккаунта и его сохраненных книг.
// Сессия берется из контекста, проверку доступа выполняет сервис.
type BooksHandler struct {
	logger  *slog.Logger
	service AccountService
}

// NewBooksHandler создает новый handler для /api/v1/me
func NewBooksHandler(logger *slog.Logger, svc AccountService) *BooksHandler {
	return &BooksHandler{
		logger:  logger,
		service: svc,
	}
}

// Me обрабатывает GET /api/v1/me
func (h *BooksHandler) Me(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.Me(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, api.NewAccountResponse(account), http.StatusOK)
}

// SaveBook обрабатывает POST /api/v1/me/books
func (h *BooksHandler) SaveBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session.FromContext(ctx)

	var req api.BookInput
	if err := decodeJSON(w, r, &req); err != nil {
		// без сессии отвечаем 401 независимо от тела
		if sess == nil {
			sendError(h.logger, w, "not authenticated", http.StatusUnauthorized)
			return
		}
		h.logger.WarnContext(ctx, "failed to decode book", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.service.SaveBook(ctx, sess, req.Model())
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, api.NewAccountResponse(account), http.StatusOK)
}

// RemoveBook обрабатывает DELETE /api/v1/me/books/{bookId}
func (h *BooksHandler) RemoveBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := h.service.RemoveBook(ctx, session.FromContext(ctx), bookIDParam(r))
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, api.NewAccountResponse(account), http.StatusOK)
}

// bookIDParam возвращает декодированный {bookId}.
// chi маршрутизирует по RawPath, если он есть, и тогда параметр остается экранированным.
func bookIDParam(r *http.Request) string {
	id := chi.URLParam(r, "bookId")
	if r.URL.RawPath == "" {
		return id
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}
