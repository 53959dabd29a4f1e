package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher(t *testing.T) {
	h := NewHasher(4) // minimum bcrypt cost, keeps the test fast

	t.Run("verify accepts the original password", func(t *testing.T) {
		for _, pw := range []string{"secret", "пароль", "a much longer password phrase", ""} {
			hash, err := h.Hash(pw)
			require.NoError(t, err)
			assert.True(t, h.Verify(pw, hash), "password %q", pw)
		}
	})

	t.Run("verify rejects a different password", func(t *testing.T) {
		hash, err := h.Hash("secret")
		require.NoError(t, err)
		assert.False(t, h.Verify("Secret", hash))
		assert.False(t, h.Verify("secret ", hash))
		assert.False(t, h.Verify("", hash))
	})

	t.Run("same password hashes to different encodings", func(t *testing.T) {
		h1, err := h.Hash("secret")
		require.NoError(t, err)
		h2, err := h.Hash("secret")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
		assert.True(t, h.Verify("secret", h1))
		assert.True(t, h.Verify("secret", h2))
	})

	t.Run("malformed hash verifies false, not panic", func(t *testing.T) {
		assert.False(t, h.Verify("secret", ""))
		assert.False(t, h.Verify("secret", "not-a-bcrypt-hash"))
		assert.False(t, h.Verify("secret", "$2a$xx$garbage"))
	})

	t.Run("zero cost uses the library default", func(t *testing.T) {
		def := NewHasher(0)
		hash, err := def.Hash("secret")
		require.NoError(t, err)
		assert.True(t, def.Verify("secret", hash))
	})
}
