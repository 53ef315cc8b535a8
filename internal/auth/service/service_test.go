package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretService_HashAndCompare(t *testing.T) {
	svc := NewSecretService()

	hashed, err := svc.HashSecret("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", hashed)

	assert.True(t, svc.CompareSecret("Passw0rd", hashed))
	assert.False(t, svc.CompareSecret("wrong-password", hashed))
}

func TestSecretService_CompareWithGarbageHash(t *testing.T) {
	svc := NewSecretService()
	assert.False(t, svc.CompareSecret("Passw0rd", "not-a-valid-hash"))
}

func TestTokenService_GenerateToken(t *testing.T) {
	svc := NewTokenService()

	plain, hash, err := svc.GenerateToken()
	require.NoError(t, err)
	assert.NotEmpty(t, plain)
	assert.Len(t, hash, 64, "sha256 hex digest")
	assert.Equal(t, hash, svc.HashToken(plain))
}

func TestTokenService_TokensAreUnique(t *testing.T) {
	svc := NewTokenService()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		plain, _, err := svc.GenerateToken()
		require.NoError(t, err)
		assert.False(t, seen[plain], "generated duplicate token")
		seen[plain] = true
	}
}
