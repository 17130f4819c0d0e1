package server

import (
	"unicode/utf8"

	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("invalid request body")
	}

	// Password length is checked up front; the hash hides it from the
	// store-side validation the other fields get.
	if utf8.RuneCountInString(req.Password) < 4 {
		return models.NewValidationError("Password must be at least 4 characters")
	}
	if req.Username == "" {
		return models.NewValidationError("username is required")
	}
	// Character count, not byte count; multibyte usernames count per rune.
	if utf8.RuneCountInString(req.Username) < 4 {
		return models.NewValidationError("username must be at least 4 characters")
	}
	if req.Name == "" {
		return models.NewValidationError("name is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	// A duplicate username surfaces here, from the store's unique index.
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.List(c.Context())
	if err != nil {
		return err
	}

	type blogRef struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	type userEntry struct {
		ID       uint      `json:"id"`
		Username string    `json:"username"`
		Name     string    `json:"name"`
		Blogs    []blogRef `json:"blogs"`
	}

	resp := make([]userEntry, 0, len(users))
	for _, u := range users {
		entry := userEntry{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Blogs:    make([]blogRef, 0, len(u.Blogs)),
		}
		for _, b := range u.Blogs {
			entry.Blogs = append(entry.Blogs, blogRef{ID: b.ID, Title: b.Title})
		}
		resp = append(resp, entry)
	}

	return c.JSON(resp)
}
