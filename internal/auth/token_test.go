package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecret(b byte) []byte {
	s := make([]byte, 32)
	for i := range s {
		s[i] = b
	}
	return s
}

func TestNewTokenService(t *testing.T) {
	t.Run("rejects short secret", func(t *testing.T) {
		_, err := NewTokenService([]byte("too short"), time.Minute)
		assert.Error(t, err)
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		svc, err := NewTokenService(testSecret(1), 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultTokenTTL, svc.ttl)
	})
}

func TestTokenService_IssueValidate(t *testing.T) {
	svc, err := NewTokenService(testSecret(1), 30*time.Minute)
	require.NoError(t, err)

	t.Run("roundtrip returns subject", func(t *testing.T) {
		token, err := svc.Issue("alice")
		require.NoError(t, err)
		assert.True(t, strings.Count(token, ".") == 2)

		subject, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", subject)
	})

	t.Run("token never validates as another subject", func(t *testing.T) {
		tokenA, err := svc.Issue("alice")
		require.NoError(t, err)
		tokenB, err := svc.Issue("bob")
		require.NoError(t, err)

		subjA, err := svc.Validate(tokenA)
		require.NoError(t, err)
		subjB, err := svc.Validate(tokenB)
		require.NoError(t, err)
		assert.NotEqual(t, subjA, subjB)
	})

	t.Run("token signed with a different key is rejected", func(t *testing.T) {
		other, err := NewTokenService(testSecret(2), 30*time.Minute)
		require.NoError(t, err)
		token, err := other.Issue("alice")
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		token, err := svc.Issue("alice")
		require.NoError(t, err)
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		// Flip the last payload character, keep the signature.
		last := parts[1][len(parts[1])-1]
		repl := byte('A')
		if last == 'A' {
			repl = 'B'
		}
		parts[1] = parts[1][:len(parts[1])-1] + string(repl)
		_, err = svc.Validate(strings.Join(parts, "."))
		assert.Error(t, err)
	})

	t.Run("garbage is malformed", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrTokenMalformed)
	})

	t.Run("empty string is malformed", func(t *testing.T) {
		_, err := svc.Validate("")
		assert.ErrorIs(t, err, ErrTokenMalformed)
	})
}

func TestTokenService_Expiry(t *testing.T) {
	const ttl = 30 * time.Minute
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newServiceAt := func(t *testing.T, now time.Time) *TokenService {
		t.Helper()
		svc, err := NewTokenService(testSecret(1), ttl)
		require.NoError(t, err)
		svc.now = func() time.Time { return now }
		return svc
	}

	issuer := newServiceAt(t, issuedAt)
	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	t.Run("accepted one second before expiry", func(t *testing.T) {
		svc := newServiceAt(t, issuedAt.Add(ttl-time.Second))
		subject, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", subject)
	})

	t.Run("rejected one second after expiry", func(t *testing.T) {
		svc := newServiceAt(t, issuedAt.Add(ttl+time.Second))
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestSecrets(t *testing.T) {
	t.Run("NewSecret returns 32 random bytes", func(t *testing.T) {
		a, err := NewSecret()
		require.NoError(t, err)
		b, err := NewSecret()
		require.NoError(t, err)
		assert.Len(t, a, 32)
		assert.NotEqual(t, a, b)
	})

	t.Run("ParseSecret accepts 32 hex bytes", func(t *testing.T) {
		s, err := ParseSecret(strings.Repeat("ab", 32))
		require.NoError(t, err)
		assert.Len(t, s, 32)
	})

	t.Run("ParseSecret rejects short input", func(t *testing.T) {
		_, err := ParseSecret("abcd")
		assert.Error(t, err)
	})

	t.Run("ParseSecret rejects non-hex input", func(t *testing.T) {
		_, err := ParseSecret(strings.Repeat("zz", 32))
		assert.Error(t, err)
	})
}
