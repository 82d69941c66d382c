package server

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielcho/resume-composer/internal/config"
)

func testJWTService(t *testing.T, hours int) *JWTService {
	t.Helper()
	return NewJWTService(&config.JWTConfig{
		Secret:          "0123456789abcdef0123456789abcdef",
		ExpirationHours: hours,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := testJWTService(t, 1)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService(t, 1).GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:          "ffffffffffffffffffffffffffffffff",
		ExpirationHours: 1,
	})

	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature")
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	// A negative lifetime produces a token that is already expired.
	svc := testJWTService(t, -1)

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	svc := testJWTService(t, 1)

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestJWTService_ValidateToken_Empty(t *testing.T) {
	_, err := testJWTService(t, 1).ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	svc := testJWTService(t, 1)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}
