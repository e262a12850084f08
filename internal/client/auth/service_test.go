package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookshelf/internal/client/storage"
	"github.com/iudanet/bookshelf/internal/client/storage/boltdb"
	"github.com/iudanet/bookshelf/pkg/api"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func authResponse() *api.AuthResponse {
	return &api.AuthResponse{
		Token:     "jwt-token",
		ExpiresAt: testNow.Add(2 * time.Hour),
		Account:   api.AccountResponse{ID: "acc-1", Username: "alice", Email: "a@x.com"},
	}
}

func setupService(t *testing.T, apiClient APIClient) (*Service, storage.AuthStorage) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc := NewService(apiClient, store)
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func TestService_Signup(t *testing.T) {
	mockAPI := &APIClientMock{
		SignupFunc: func(ctx context.Context, req api.SignupRequest) (*api.AuthResponse, error) {
			return authResponse(), nil
		},
	}
	svc, store := setupService(t, mockAPI)

	auth, err := svc.Signup(context.Background(), "alice", " A@X.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", auth.Token)

	require.Len(t, mockAPI.SignupCalls(), 1)
	assert.Equal(t, "a@x.com", mockAPI.SignupCalls()[0].Req.Email)

	stored, err := store.GetAuth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, auth, stored)
	assert.Equal(t, testNow.Add(2*time.Hour).Unix(), stored.ExpiresAt)
}

func TestService_SignupValidatesLocally(t *testing.T) {
	mockAPI := &APIClientMock{}
	svc, _ := setupService(t, mockAPI)

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{name: "bad username", username: "a", email: "a@x.com", password: "secret"},
		{name: "bad email", username: "alice", email: "nope", password: "secret"},
		{name: "short password", username: "alice", email: "a@x.com", password: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.username, tt.email, tt.password)
			assert.Error(t, err)
		})
	}

	// без обращения к серверу
	assert.Empty(t, mockAPI.SignupCalls())
}

func TestService_LoginFailureKeepsPreviousSession(t *testing.T) {
	ctx := context.Background()
	mockAPI := &APIClientMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
			if req.Password == "secret" {
				return authResponse(), nil
			}
			return nil, errors.New("server error (401): incorrect email or password")
		},
	}
	svc, _ := setupService(t, mockAPI)

	_, err := svc.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	require.Error(t, err)

	token, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestService_TokenAndLogout(t *testing.T) {
	ctx := context.Background()
	mockAPI := &APIClientMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
			return authResponse(), nil
		},
	}
	svc, _ := setupService(t, mockAPI)

	_, err := svc.Token(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Login(ctx, "a@x.com", "secret")
	require.NoError(t, err)

	token, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	// истекший токен не отдается, но сессия видна для status
	svc.now = func() time.Time { return testNow.Add(3 * time.Hour) }
	_, err = svc.Token(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	sess, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Username)

	require.NoError(t, svc.Logout(ctx))
	assert.ErrorIs(t, svc.Logout(ctx), ErrNotAuthenticated)
	_, err = svc.Session(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
