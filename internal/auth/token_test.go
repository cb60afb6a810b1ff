package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestOwnerFromToken_RoundTrip(t *testing.T) {
	v := NewTokenVerifier(testSecret)
	token, err := v.SignToken("42", time.Hour)
	require.NoError(t, err)

	owner, err := v.OwnerFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", owner)

	owner, err = v.OwnerFromToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "42", owner)
}

func TestOwnerFromToken_NumericClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	owner, err := NewTokenVerifier(testSecret).OwnerFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7", owner)
}

func TestOwnerFromToken_Missing(t *testing.T) {
	_, err := NewTokenVerifier(testSecret).OwnerFromToken("  ")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = NewTokenVerifier(testSecret).OwnerFromToken("Bearer ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestOwnerFromToken_Expired(t *testing.T) {
	v := NewTokenVerifier(testSecret)
	token, err := v.SignToken("42", time.Hour)
	require.NoError(t, err)

	v.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = v.OwnerFromToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestOwnerFromToken_WrongSecret(t *testing.T) {
	token, err := NewTokenVerifier("another-secret-another-secret-xx").SignToken("42", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenVerifier(testSecret).OwnerFromToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestOwnerFromToken_NoExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "42"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenVerifier(testSecret).OwnerFromToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestOwnerFromToken_WrongAlgorithm(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"user_id": "42",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenVerifier(testSecret).OwnerFromToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestOwnerFromToken_MissingOwnerClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenVerifier(testSecret).OwnerFromToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
