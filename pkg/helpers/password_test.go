package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesOriginal(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPassword(hash, "secret1"))
}

func TestCheckPassword_RejectsOtherPlaintext(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.False(t, CheckPassword(hash, "secret2"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword(hash, "Secret1"))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	// bcrypt embeds a fresh salt per hash
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword(h1, "secret1"))
	assert.True(t, CheckPassword(h2, "secret1"))
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "secret1"))
}
