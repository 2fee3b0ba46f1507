package auth

import (
	"testing"
	"time"

	"crave/config"
	"crave/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{
		AccessTokenTTL:  10 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	sessionID := uuid.New()
	roles := []string{"customer", "admin"}

	accessToken, refreshToken, err := svc.GenerateTokens(userID, sessionID, roles)
	require.NoError(t, err)

	access, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, access.UserID)
	assert.Equal(t, sessionID, access.SessionID)
	assert.Equal(t, roles, access.Roles)
	assert.Equal(t, service.TokenTypeAccess, access.Type)

	refresh, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refresh.UserID)
	assert.Equal(t, sessionID, refresh.SessionID)
	assert.Nil(t, refresh.Roles)

	assert.Equal(t, 10*time.Minute, svc.GetAccessTokenDuration())
	assert.Equal(t, 24*time.Hour, svc.GetRefreshTokenDuration())
}

func TestJWTService_RejectsSwappedTokens(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issued := time.Now().Add(-time.Hour)
	impl.now = func() time.Time { return issued }

	accessToken, _, err := svc.GenerateTokens(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
