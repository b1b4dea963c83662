package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breedwise/breedwise/internal/config"
)

func testJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testJWTService("secret-a").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = testJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenEmpty(t *testing.T) {
	_, err := testJWTService("test-secret").ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := testJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
