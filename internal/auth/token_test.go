package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, 42, claims.UserID)
	require.NotEmpty(t, claims.ID)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(42, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestValidateTokenWrongKey(t *testing.T) {
	original := SecretKey
	defer func() { SecretKey = original }()

	SecretKey = []byte("one-key")
	token, err := GenerateToken(42, time.Hour)
	require.NoError(t, err)

	SecretKey = []byte("another-key")
	_, err = ValidateToken(token)
	require.Error(t, err)
}
