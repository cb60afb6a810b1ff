package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const ownerClaim = "user_id"

var (
	ErrMissingToken = errors.New("token missing")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TokenVerifier resolves the owner of a request from an HS256 token whose
// user_id claim is a string or a number.
type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
	now    func() time.Time
}

func NewTokenVerifier(secret string) *TokenVerifier {
	v := &TokenVerifier{secret: []byte(secret), now: time.Now}
	v.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return v.now() }),
	)
	return v
}

// OwnerFromToken accepts the raw Authorization header value, with or without a Bearer prefix.
func (v *TokenVerifier) OwnerFromToken(raw string) (string, error) {
	fields := strings.Fields(raw)
	if len(fields) > 0 && strings.EqualFold(fields[0], "bearer") {
		fields = fields[1:]
	}
	switch len(fields) {
	case 0:
		return "", ErrMissingToken
	case 1:
	default:
		return "", ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(fields[0], claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	switch owner := claims[ownerClaim].(type) {
	case string:
		if owner != "" {
			return owner, nil
		}
	case float64:
		return strconv.FormatFloat(owner, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("%w: missing %s claim", ErrInvalidToken, ownerClaim)
}

// SignToken issues a token for ownerID. Login lives elsewhere; this serves the CLI and tests.
func (v *TokenVerifier) SignToken(ownerID string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ownerClaim: ownerID,
		"exp":      jwt.NewNumericDate(v.now().Add(ttl)),
	})
	return token.SignedString(v.secret)
}
