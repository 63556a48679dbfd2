package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cure-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cure-pass", hash)

	// Same input, different salt
	second, err := HashPassword("s3cure-pass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cure-pass")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "s3cure-pass"))
	assert.False(t, VerifyPassword(hash, "wrong-pass"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cure-pass"))
}
