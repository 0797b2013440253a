package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-1", PurposeAccess, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(testSecret, token, PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateTokenRejects(t *testing.T) {
	valid, err := GenerateToken(testSecret, "user-1", PurposeAccess, time.Hour)
	require.NoError(t, err)

	expired, err := GenerateToken(testSecret, "user-1", PurposeAccess, -time.Minute)
	require.NoError(t, err)

	state, err := GenerateToken(testSecret, "state", PurposeOAuthState, time.Minute)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Purpose: PurposeAccess})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"wrong secret":  valid,
		"expired":       expired,
		"wrong purpose": state,
		"garbage":       "not-a-token",
		"alg none":      unsigned,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			secret := testSecret
			if name == "wrong secret" {
				secret = "other"
			}
			_, err := ValidateToken(secret, tok, PurposeAccess)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenCipherRoundTrip(t *testing.T) {
	c, err := NewTokenCipher([]byte(strings.Repeat("k", 32)))
	require.NoError(t, err)

	sealed, err := c.Encrypt("mock-instagram-token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "mock-instagram-token")

	again, err := c.Encrypt("mock-instagram-token")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must differ per call")

	plain, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "mock-instagram-token", plain)

	_, err = c.Decrypt("AAAA")
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestNewTokenCipherBadKey(t *testing.T) {
	_, err := NewTokenCipher([]byte("short"))
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.NoError(t, CheckPassword("secret1", hash))
	assert.ErrorIs(t, CheckPassword("secret2", hash), ErrPasswordMismatch)

	other, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salt must differ per hash")

	_, err = HashPassword("")
	assert.Error(t, err)

	_, err = HashPassword(strings.Repeat("é", 40))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = HashPassword(strings.Repeat("a", MaxPasswordBytes))
	assert.NoError(t, err)
}

func TestGenerateRandomKey(t *testing.T) {
	a, err := GenerateRandomKey(32)
	require.NoError(t, err)
	b, err := GenerateRandomKey(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 44)
}
