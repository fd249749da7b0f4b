package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_VerifyRoundTrip(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher()

	for _, pw := range []string{"s3cret-pass", "ünïcødé-pässwörd", "      "} {
		hash, err := h.Hash(pw)
		require.NoError(t, err)
		assert.True(t, h.Verify(pw, hash), "password %q should verify against its own hash", pw)
		assert.NotEqual(t, pw, hash)
	}
}

func TestPasswordHasher_RejectsOtherPassword(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher()

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.False(t, h.Verify("battery staple", hash))
	assert.False(t, h.Verify("", hash))
	assert.False(t, h.Verify("correct horse", "not-a-bcrypt-hash"))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestPasswordHasher_UsesCostTen(t *testing.T) {
	t.Parallel()
	hash, err := NewPasswordHasher().Hash("pw123456")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}
