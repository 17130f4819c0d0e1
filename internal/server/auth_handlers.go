package server

import (
	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login handles POST /api/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("invalid request body")
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return models.NewInvalidCredentialsError()
	}

	tok, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return models.NewInternalError(err)
	}

	return c.JSON(fiber.Map{
		"token":    tok,
		"username": user.Username,
		"name":     user.Name,
	})
}
