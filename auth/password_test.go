package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyHashMatchesKnownDigest(t *testing.T) {
	// Unsalted single-round SHA-256, hex encoded. Must stay byte-for-byte
	// compatible with rows written before the bcrypt migration.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		LegacyHash("password"))
}

func TestHashPasswordProducesSaltedHashes(t *testing.T) {
	h1, err := HashPassword("iskolar123")
	require.NoError(t, err)
	h2, err := HashPassword("iskolar123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(h1, "$2"))
	assert.NotEqual(t, h1, h2, "bcrypt salts must differ per hash")
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("iskolar123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "iskolar123"))
	assert.False(t, VerifyPassword(hash, "iskolar124"))
}

func TestVerifyPasswordLegacyScheme(t *testing.T) {
	stored := LegacyHash("iskolar123")

	assert.True(t, VerifyPassword(stored, "iskolar123"))
	assert.False(t, VerifyPassword(stored, "iskolar124"))
}
