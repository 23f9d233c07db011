package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_CompareRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "secret1", hash)

	assert.True(t, ComparePassword(hash, "secret1"))
	assert.False(t, ComparePassword(hash, "secret2"))
}

func TestComparePassword_EmptyHash(t *testing.T) {
	assert.False(t, ComparePassword("", "anything"))
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := HashPassword("secret1", bcrypt.MaxCost+1)
	require.Error(t, err)
}
