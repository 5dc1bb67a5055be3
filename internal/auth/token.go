// Package auth implements bearer token issuance/verification and the static
// admin credential check.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token is malformed, tampered with, or expired.
var ErrInvalidToken = errors.New("invalid token")

// TokenTTL is the absolute lifetime of an issued token. There is no
// revocation; tokens stay valid until natural expiry.
const TokenTTL = 2 * time.Hour

// TokenService issues and verifies HMAC-signed bearer tokens bound to a username.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue creates a signed JWT carrying the username with a fixed expiry.
func (s *TokenService) Issue(usuario string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("JWT secret not configured")
	}

	now := s.now()
	claims := jwt.MapClaims{
		"usuario": usuario,
		"exp":     now.Add(s.ttl).Unix(),
		"iat":     now.Unix(),
		"jti":     uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the username the token was
// issued for. Any failure collapses to ErrInvalidToken; callers do not need
// to distinguish why a token was rejected.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Only accept HMAC; anything else is an attempted algorithm swap.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	usuario, ok := claims["usuario"].(string)
	if !ok || usuario == "" {
		return "", ErrInvalidToken
	}

	return usuario, nil
}
