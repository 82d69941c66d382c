package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_Default(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewPasswordConfig()

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestNewPasswordConfig_CustomCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := NewPasswordConfig()

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestNewPasswordConfig_RejectsOutOfRange(t *testing.T) {
	for _, v := range []string{"9", "15", "abc"} {
		t.Setenv("BCRYPT_COST", v)
		_, err := NewPasswordConfig()
		assert.Error(t, err, v)
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}
	assert.False(t, cfg.VerifyPassword("anything", "not-a-bcrypt-hash"))
}
