package server

import (
	"strconv"
	"time"

	"bloglist/internal/cache"
	"bloglist/internal/models"
	"bloglist/internal/stats"

	"github.com/gofiber/fiber/v2"
)

const (
	blogListCacheKey = "blogs:all"
	blogListCacheTTL = 30 * time.Second
)

// GetBlogs handles GET /api/blogs. Public; no credential required.
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	var blogs []models.Blog
	err := cache.CacheAside(c.Context(), blogListCacheKey, &blogs, blogListCacheTTL, func() error {
		var ferr error
		blogs, ferr = s.blogRepo.List(c.Context())
		return ferr
	})
	if err != nil {
		return err
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	return c.JSON(blogs)
}

// GetBlogStats handles GET /api/blogs/stats. Public aggregate view over
// the full blog list.
func (s *Server) GetBlogStats(c *fiber.Ctx) error {
	blogs, err := s.blogRepo.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"totalLikes": stats.TotalLikes(blogs),
		"favorite":   stats.Favorite(blogs),
		"mostBlogs":  stats.MostBlogs(blogs),
		"mostLikes":  stats.MostLikes(blogs),
	})
}

// CreateBlog handles POST /api/blogs. Requires a resolved identity.
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	user := userFromContext(c)
	if user == nil {
		// Token verified but its subject no longer exists.
		return models.NewTokenInvalidError()
	}

	var req struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  int    `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("invalid request body")
	}

	if req.Title == "" {
		return models.NewValidationError("title is required")
	}
	if req.Author == "" {
		return models.NewValidationError("author is required")
	}

	blog := &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		UserID: user.ID,
	}
	if err := s.blogRepo.Create(c.Context(), blog); err != nil {
		return err
	}

	// Reload with the owner populated
	created, err := s.blogRepo.GetByID(c.Context(), blog.ID)
	if err != nil {
		return err
	}

	cache.Invalidate(c.Context(), blogListCacheKey)

	// 200 rather than 201, matching the existing API's create response
	return c.JSON(created)
}

// UpdateBlogLikes handles PUT /api/blogs/:id. Any caller may update
// likes; there is no ownership check on this path. That asymmetry with
// delete is inherited behavior, kept intentionally.
func (s *Server) UpdateBlogLikes(c *fiber.Ctx) error {
	id, err := blogIDParam(c)
	if err != nil {
		return err
	}

	var req struct {
		Likes int `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("invalid request body")
	}

	blog, err := s.blogRepo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	blog.Likes = req.Likes
	if err := s.blogRepo.Update(c.Context(), blog); err != nil {
		return err
	}

	cache.Invalidate(c.Context(), blogListCacheKey)
	return c.JSON(blog)
}

// DeleteBlog handles DELETE /api/blogs/:id. Only the owner may delete.
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	id, err := blogIDParam(c)
	if err != nil {
		return err
	}

	blog, err := s.blogRepo.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	if err := authorizeDelete(blog, userFromContext(c)); err != nil {
		return err
	}

	if err := s.blogRepo.Delete(c.Context(), blog.ID); err != nil {
		return err
	}

	cache.Invalidate(c.Context(), blogListCacheKey)
	return c.SendStatus(fiber.StatusNoContent)
}

// authorizeDelete compares the record's owner against the requester.
// Identifiers are normalized to their canonical decimal string form
// before comparison since they arrive from different layers. A nil
// requester (token subject deleted after issuance) is a denial, never a
// crash.
func authorizeDelete(blog *models.Blog, requester *models.User) error {
	if requester == nil {
		return models.NewPermissionError()
	}
	owner := strconv.FormatUint(uint64(blog.UserID), 10)
	actor := strconv.FormatUint(uint64(requester.ID), 10)
	if owner != actor {
		return models.NewPermissionError()
	}
	return nil
}

func blogIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, models.NewMalformedIDError()
	}
	return uint(id), nil
}
