package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasherHash(t *testing.T) {
	h := NewHasher("pepper")

	for _, pw := range []string{"password123", "P@ssw0rd!#$%^&*()", strings.Repeat("a", 100), "", "pässwörd 密码"} {
		hash, err := h.Hash(pw)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"), hash)
		require.Len(t, strings.Split(hash, "$"), 6)
		require.NoError(t, h.Verify(pw, hash))
	}
}

func TestHasherUniqueSalts(t *testing.T) {
	h := NewHasher("pepper")
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestHasherVerify(t *testing.T) {
	h := NewHasher("pepper")
	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		require.ErrorIs(t, h.Verify("battery staple", hash), ErrPasswordMismatch)
	})

	t.Run("wrong pepper", func(t *testing.T) {
		require.ErrorIs(t, NewHasher("other").Verify("correct horse", hash), ErrPasswordMismatch)
	})

	t.Run("malformed hashes", func(t *testing.T) {
		for _, bad := range []string{
			"",
			"plaintext",
			"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
			"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
			"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
			"$argon2id$v=19$m=1,t=1,p=1$!!$aGFzaA",
			"$argon2id$v=19$m=1,t=1,p=1$c2FsdA$",
		} {
			require.ErrorIs(t, h.Verify("x", bad), ErrInvalidHash, bad)
		}
	})
}
