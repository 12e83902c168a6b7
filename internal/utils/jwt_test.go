package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err, "missing scheme")

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err, "empty token")

	_, err = ParseBearerToken("")
	assert.Error(t, err)
}

func TestParseOwnerIDFromJWT(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "42"})

	id, err := ParseOwnerIDFromJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseOwnerIDFromJWT_Invalid(t *testing.T) {
	_, err := ParseOwnerIDFromJWT("not-a-token")
	assert.Error(t, err)

	_, err = ParseOwnerIDFromJWT(signedToken(t, jwt.MapClaims{"sub": "not-a-number"}))
	assert.Error(t, err)

	_, err = ParseOwnerIDFromJWT(signedToken(t, jwt.MapClaims{"aud": "praxis"}))
	assert.Error(t, err, "missing sub claim")
}
