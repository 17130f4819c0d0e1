// Package token issues and verifies the signed, time-bound identity
// tokens used by the API's bearer authentication.
package token

import (
	"errors"
	"strconv"
	"time"

	"bloglist/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is used when no expiry is configured.
const DefaultTTL = time.Hour

// Claims are the fields embedded in an issued token. The user ID travels
// in the registered subject claim as a decimal string.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a user identifier.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Service signs and verifies HS256 tokens with an explicitly provided
// secret. Verification is stateless: signature plus expiry only, no
// revocation list and no store lookup.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. A zero ttl falls back to DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the user's id and username together with
// issue and expiry timestamps.
func (s *Service) Issue(userID uint, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify decodes and validates a raw token string. Expired tokens surface
// as TokenExpired; anything else that fails structurally or
// cryptographically surfaces as TokenInvalid. Verify does not guarantee
// the subject still exists in the store.
func (s *Service) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, models.NewTokenExpiredError()
		}
		return nil, models.NewTokenInvalidError()
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, models.NewTokenInvalidError()
	}
	return claims, nil
}
