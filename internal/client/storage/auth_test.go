package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthData_Expired(t *testing.T) {
	expiresAt := time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)
	auth := &AuthData{ExpiresAt: expiresAt.Unix()}

	assert.False(t, auth.Expired(expiresAt.Add(-time.Second)))
	assert.True(t, auth.Expired(expiresAt))
	assert.True(t, auth.Expired(expiresAt.Add(time.Hour)))
}
