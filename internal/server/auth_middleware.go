package server

import (
	"strings"

	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	tokenLocal = "bearerToken"
	userLocal  = "authedUser"
)

const bearerPrefix = "bearer "

// TokenExtractor runs on every API request and never rejects one. When
// the Authorization header carries a case-insensitive "Bearer " prefix,
// the raw token is stored on the request; otherwise nothing is stored
// and public endpoints proceed without a credential.
func (s *Server) TokenExtractor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if len(auth) >= len(bearerPrefix) && strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
			c.Locals(tokenLocal, auth[len(bearerPrefix):])
		}
		return c.Next()
	}
}

// tokenFromContext reports the extracted bearer token, if one was present.
func tokenFromContext(c *fiber.Ctx) (string, bool) {
	raw, ok := c.Locals(tokenLocal).(string)
	return raw, ok
}

// UserExtractor resolves the extracted token to a full identity and is
// attached only to routes that require an authenticated actor. A missing
// token fails fast without touching the token service. A token whose
// subject no longer exists in the store yields a nil identity rather
// than an error; downstream checks must treat nil as a denial.
func (s *Server) UserExtractor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := tokenFromContext(c)
		if !ok {
			return models.NewTokenMissingError()
		}

		claims, err := s.tokens.Verify(raw)
		if err != nil {
			return err
		}

		id, err := claims.UserID()
		if err != nil {
			return models.NewTokenInvalidError()
		}

		user, err := s.userRepo.GetByID(c.Context(), id)
		if err != nil {
			return err
		}

		c.Locals(userLocal, user)
		return c.Next()
	}
}

// userFromContext returns the resolved identity, nil when the token's
// user has been deleted since issuance.
func userFromContext(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(userLocal).(*models.User)
	return u
}
