package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookshelf/internal/crypto"
	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/jwt"
	"github.com/iudanet/bookshelf/internal/server/service"
	"github.com/iudanet/bookshelf/internal/server/session"
	"github.com/iudanet/bookshelf/internal/server/storage/sqlite"
	"github.com/iudanet/bookshelf/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	router  http.Handler
	tokens  *jwt.Service
	service *service.Service
	store   *sqlite.Storage
}

// setupTestEnv собирает handlers поверх настоящего сервиса и in-memory SQLite
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := setupTestLogger()
	tokens := jwt.NewService("test-secret-key", time.Hour)
	hasher := crypto.NewArgon2Hasher(crypto.Params{Memory: 1024, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32})
	svc := service.New(logger, store, hasher, tokens)

	return &testEnv{
		router:  newTestRouter(logger, svc, store, tokens),
		tokens:  tokens,
		service: svc,
		store:   store,
	}
}

// newTestRouter повторяет маршруты сервера с упрощенной сессией
func newTestRouter(logger *slog.Logger, svc AccountService, store Pinger, verifier session.TokenVerifier) http.Handler {
	auth := NewAuthHandler(logger, svc)
	books := NewBooksHandler(logger, svc)
	health := NewHealthHandler(logger, store)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := session.BearerToken(r.Header.Get("Authorization")); ok && verifier != nil {
				if s, err := session.FromToken(verifier, token); err == nil {
					r = r.WithContext(session.WithSession(r.Context(), s))
				}
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Post("/api/v1/auth/signup", auth.Signup)
	r.Post("/api/v1/auth/login", auth.Login)
	r.Get("/api/v1/me", books.Me)
	r.Post("/api/v1/me/books", books.SaveBook)
	r.Delete("/api/v1/me/books/{bookId}", books.RemoveBook)
	r.Get("/api/v1/health", health.Health)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func (e *testEnv) signup(t *testing.T, username, email, password string) api.AuthResponse {
	t.Helper()
	w := doRequest(t, e.router, http.MethodPost, "/api/v1/auth/signup", "",
		api.SignupRequest{Username: username, Email: email, Password: password})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[api.AuthResponse](t, w)
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupTestEnv(t)

	resp := env.signup(t, "alice", "a@x.com", "secret")

	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.ExpiresAt.IsZero())
	assert.Equal(t, "alice", resp.Account.Username)
	assert.Equal(t, "a@x.com", resp.Account.Email)
	assert.Empty(t, resp.Account.SavedBooks)

	claims, err := env.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Account.ID, claims.UserID)
}

func TestAuthHandler_SignupErrors(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "alice", "a@x.com", "secret")

	tests := []struct {
		body       any
		name       string
		wantStatus int
	}{
		{name: "duplicate email", body: api.SignupRequest{Username: "bob", Email: "a@x.com", Password: "secret"}, wantStatus: http.StatusConflict},
		{name: "duplicate username", body: api.SignupRequest{Username: "alice", Email: "b@x.com", Password: "secret"}, wantStatus: http.StatusConflict},
		{name: "invalid username", body: api.SignupRequest{Username: "a b", Email: "c@x.com", Password: "secret"}, wantStatus: http.StatusBadRequest},
		{name: "short password", body: api.SignupRequest{Username: "carol", Email: "c@x.com", Password: "123"}, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: "{not json", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, env.router, http.MethodPost, "/api/v1/auth/signup", "", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			errResp := decodeBody[api.ErrorResponse](t, w)
			assert.Equal(t, http.StatusText(tt.wantStatus), errResp.Error)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	created := env.signup(t, "alice", "a@x.com", "secret")

	w := doRequest(t, env.router, http.MethodPost, "/api/v1/auth/login", "",
		api.LoginRequest{Email: "a@x.com", Password: "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[api.AuthResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, created.Account.ID, resp.Account.ID)
}

func TestAuthHandler_LoginFailuresAreIndistinguishable(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "alice", "a@x.com", "secret")

	wrongPassword := doRequest(t, env.router, http.MethodPost, "/api/v1/auth/login", "",
		api.LoginRequest{Email: "a@x.com", Password: "nope"})
	unknownEmail := doRequest(t, env.router, http.MethodPost, "/api/v1/auth/login", "",
		api.LoginRequest{Email: "nobody@x.com", Password: "secret"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestBooksHandler_Flow(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "alice", "a@x.com", "secret").Token

	book := api.BookInput{BookID: "b1", Title: "Dune", Authors: []string{"Frank Herbert"}}

	w := doRequest(t, env.router, http.MethodPost, "/api/v1/me/books", token, book)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, decodeBody[api.AccountResponse](t, w).BookCount)

	// повторное сохранение не дублирует
	w = doRequest(t, env.router, http.MethodPost, "/api/v1/me/books", token, book)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeBody[api.AccountResponse](t, w).BookCount)

	w = doRequest(t, env.router, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody[api.AccountResponse](t, w)
	require.Len(t, me.SavedBooks, 1)
	assert.Equal(t, book, me.SavedBooks[0])

	w = doRequest(t, env.router, http.MethodDelete, "/api/v1/me/books/b1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[api.AccountResponse](t, w).SavedBooks)

	// удаление отсутствующей книги - успешный no-op
	w = doRequest(t, env.router, http.MethodDelete, "/api/v1/me/books/b1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBooksHandler_Unauthenticated(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		body   any
		name   string
		method string
		path   string
		token  string
	}{
		{name: "me without token", method: http.MethodGet, path: "/api/v1/me"},
		{name: "me with garbage token", method: http.MethodGet, path: "/api/v1/me", token: "garbage"},
		{name: "save without token", method: http.MethodPost, path: "/api/v1/me/books", body: api.BookInput{BookID: "b1", Title: "t"}},
		{name: "save malformed body without token", method: http.MethodPost, path: "/api/v1/me/books", body: "{"},
		{name: "remove without token", method: http.MethodDelete, path: "/api/v1/me/books/b1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, env.router, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestBooksHandler_SaveBookInvalid(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "alice", "a@x.com", "secret").Token

	w := doRequest(t, env.router, http.MethodPost, "/api/v1/me/books", token, api.BookInput{Title: "no id"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, env.router, http.MethodPost, "/api/v1/me/books", token, "{")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// failingService отвечает ErrStorageFailure на все операции
type failingService struct{}

func (failingService) Signup(context.Context, string, string, string) (*service.AuthResult, error) {
	return nil, service.ErrStorageFailure
}

func (failingService) Login(context.Context, string, string) (*service.AuthResult, error) {
	return nil, service.ErrStorageFailure
}

func (failingService) Me(context.Context, *session.Session) (*models.Account, error) {
	return nil, errors.New("disk I/O error at /var/lib/bookshelf.db")
}

func (failingService) SaveBook(context.Context, *session.Session, models.SavedBook) (*models.Account, error) {
	return nil, service.ErrStorageFailure
}

func (failingService) RemoveBook(context.Context, *session.Session, string) (*models.Account, error) {
	return nil, service.ErrStorageFailure
}

func TestHandlers_StorageFailureIsGeneric(t *testing.T) {
	router := newTestRouter(setupTestLogger(), failingService{}, nil, nil)

	for _, path := range []string{"/api/v1/auth/login", "/api/v1/auth/signup"} {
		w := doRequest(t, router, http.MethodPost, path, "", api.LoginRequest{Email: "a@x.com", Password: "secret"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decodeBody[api.ErrorResponse](t, w).Message)
	}

	w := doRequest(t, router, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "/var/lib")
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err        error
		name       string
		wantStatus int
	}{
		{name: "unauthenticated", err: service.ErrUnauthenticated, wantStatus: http.StatusUnauthorized},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "duplicate", err: service.ErrDuplicateIdentity, wantStatus: http.StatusConflict},
		{name: "invalid input", err: service.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "storage failure", err: service.ErrStorageFailure, wantStatus: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := StatusFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestBooksHandler_RemoveEscapedBookID(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "alice", "a@x.com", "secret").Token

	w := doRequest(t, env.router, http.MethodPost, "/api/v1/me/books", token,
		api.BookInput{BookID: "isbn 978/1", Title: "Slashed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, env.router, http.MethodDelete, "/api/v1/me/books/isbn%20978%2F1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[api.AccountResponse](t, w).SavedBooks)
}
