package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/service"
	"github.com/iudanet/bookshelf/internal/server/session"
	"github.com/iudanet/bookshelf/pkg/api"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 20

// AccountService операции сервиса, доступные через HTTP
type AccountService interface {
	Signup(ctx context.Context, username, email, password string) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	Me(ctx context.Context, sess *session.Session) (*models.Account, error)
	SaveBook(ctx context.Context, sess *session.Session, book models.SavedBook) (*models.Account, error)
	RemoveBook(ctx context.Context, sess *session.Session, bookID string) (*models.Account, error)
}

// decodeJSON читает JSON тело запроса в dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// sendServiceError отображает ошибку сервиса в HTTP статус.
// Неизвестные ошибки отдаются как 500 без деталей.
func sendServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, message := StatusFor(err)
	if status == http.StatusInternalServerError && !errors.Is(err, service.ErrStorageFailure) {
		logger.ErrorContext(r.Context(), "unexpected service error", slog.Any("error", err))
	}
	sendError(logger, w, message, status)
}

// StatusFor возвращает HTTP статус и сообщение для ошибки сервиса
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, service.ErrUnauthenticated.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, service.ErrInvalidCredentials.Error()
	case errors.Is(err, service.ErrDuplicateIdentity):
		return http.StatusConflict, service.ErrDuplicateIdentity.Error()
	case errors.Is(err, service.ErrInvalidInput):
		// сообщение валидации безопасно для клиента
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
