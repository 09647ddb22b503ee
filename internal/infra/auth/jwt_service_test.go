package auth

import (
	"testing"
	"time"

	"raseed/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	adminID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(adminID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	parsedAccess, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, parsedAccess.Valid)

	accessClaims, ok := parsedAccess.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, adminID.String(), accessClaims["sub"])
	assert.Equal(t, "access", accessClaims["type"])

	// Validate refresh token
	parsedRefresh, err := jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	assert.True(t, parsedRefresh.Valid)

	refreshClaims, ok := parsedRefresh.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", refreshClaims["type"])
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Access token must not validate against the refresh secret
	_, err = jwtService.ValidateToken(accessToken, cfg.SecretKey.Refresh)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	duration := jwtService.GetRefreshTokenDuration()
	assert.Equal(t, time.Hour*24*7, duration)
}
