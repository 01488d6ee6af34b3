package auth

import (
	"testing"
	"time"

	"orda/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// The access token resolves back to the issuing user.
	subject, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, subject)

	// A refresh token must not be accepted where an access token is expected,
	// and vice versa.
	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	// The refresh token resolves through its own validator.
	subject, err = jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	hash := jwtService.HashToken("some-refresh-token")
	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.Equal(t, hash, jwtService.HashToken("some-refresh-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("another-token"))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	subject, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, subject)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.SecretKey.Access = "another_access_secret_key_very_long_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	accessToken, _, err := otherService.GenerateTokens(uuid.New())
	assert.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	// Default when not configured.
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.Equal(t, time.Hour*24*7, jwtService.GetRefreshTokenDuration())

	// Configured TTLs win.
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: time.Hour * 48}
	jwtService, err = NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour*48, jwtService.GetRefreshTokenDuration())
}
