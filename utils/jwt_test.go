package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmsoc-api/config"
)

func setTestConfig(t *testing.T, secret, expiry string) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: secret, JWTExpiry: expiry}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndValidateToken(t *testing.T) {
	setTestConfig(t, "test-secret", "1h")

	token, err := GenerateToken("u1", "alice@example.com", "consumer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "consumer", claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t, "test-secret", "1h")
	token, err := GenerateToken("u1", "alice@example.com", "consumer")
	require.NoError(t, err)

	setTestConfig(t, "other-secret", "1h")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	setTestConfig(t, "test-secret", "1h")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestGenerateTokenFallsBackOnBadExpiry(t *testing.T) {
	setTestConfig(t, "test-secret", "not-a-duration")

	token, err := GenerateToken("u1", "alice@example.com", "farmer")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "farmer", claims.Role)
}
