package auth

import (
	"testing"
	"time"

	"restro/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testJWTConfig(""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	tokenString, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	token, err := svc.ValidateAccessToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
}

func TestJWTService_WrongSecretFails(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("issuer-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testJWTConfig("other-secret"))
	require.NoError(t, err)

	tokenString, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_GarbageTokenFails(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}
