package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/bookshelf/internal/server/service"
	"github.com/iudanet/bookshelf/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger  *slog.Logger
	service AccountService
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, svc AccountService) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		service: svc,
	}
}

// Signup обрабатывает POST /api/v1/auth/signup
// Регистрация нового аккаунта, в ответе сразу выдается токен
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signup request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "account registered",
		slog.String("user_id", result.Account.ID),
		slog.String("username", result.Account.Username))

	sendJSON(h.logger, w, authResponse(result), http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		sendServiceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, authResponse(result), http.StatusOK)
}

func authResponse(result *service.AuthResult) api.AuthResponse {
	return api.AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Account:   api.NewAccountResponse(result.Account),
	}
}
