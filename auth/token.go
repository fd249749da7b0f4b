package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure outcome of Verify: malformed, badly signed,
// wrong algorithm and expired tokens are not distinguished.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload. The user identifier travels in the `id` claim.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenVerifier is what the middleware needs from a token manager.
type TokenVerifier interface {
	Verify(tokenString string) (*Claims, error)
}

// TokenManager issues and verifies HS256 bearer tokens signed with a shared secret.
type TokenManager struct {
	secret []byte
	// ttl of zero issues tokens without an exp claim.
	ttl time.Duration
	now func() time.Time
}

// NewTokenManager creates a TokenManager. A zero ttl produces non-expiring tokens.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token whose `id` claim is userID.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := m.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks the signature (and exp, when the token carries one) and returns the claims.
// There is no revocation list.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
