// Package server contains the HTTP surface: route wiring, the
// authentication middleware chain, request handlers, and the error
// dispatcher that translates tagged failures into responses.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"

	"bloglist/internal/cache"
	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/middleware"
	"bloglist/internal/models"
	"bloglist/internal/repository"
	"bloglist/internal/token"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config   *config.Config
	db       *gorm.DB
	redis    *redis.Client
	userRepo repository.UserRepository
	blogRepo repository.BlogRepository
	tokens   *token.Service
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	ttl, err := cfg.TokenTTLDuration()
	if err != nil {
		return nil, fmt.Errorf("invalid token TTL: %w", err)
	}

	return &Server{
		config:   cfg,
		db:       db,
		redis:    cache.GetClient(),
		userRepo: repository.NewUserRepository(db),
		blogRepo: repository.NewBlogRepository(db),
		tokens:   token.NewService(cfg.JWTSecret, ttl),
	}, nil
}

// App builds the Fiber application with middleware, routes, and the
// error dispatcher installed.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Bloglist API",
		ErrorHandler: s.dispatchError,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	app.Use(requestid.New())
	app.Use(middleware.StructuredLogger())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Prometheus collectors register globally, so keep them out of tests
	// where multiple apps are built per process.
	if s.config.Env != "test" {
		prom := fiberprometheus.New("bloglist")
		prom.RegisterAt(app, "/metrics")
		app.Use(prom.Middleware)
	}
}

// SetupRoutes configures all routes for the application. Routes that
// mutate owned data attach UserExtractor themselves; the route table is
// the declaration of each endpoint's auth obligation.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api", s.TokenExtractor())

	api.Post("/users", s.CreateUser)
	api.Get("/users", s.GetUsers)
	api.Post("/login", s.Login)

	blogs := api.Group("/blogs")
	blogs.Get("/", s.GetBlogs)
	blogs.Get("/stats", s.GetBlogStats)
	blogs.Post("/", s.UserExtractor(), s.CreateBlog)
	blogs.Put("/:id", s.UpdateBlogLikes)
	blogs.Delete("/:id", s.UserExtractor(), s.DeleteBlog)

	// Everything unmatched, any method
	app.Use(func(c *fiber.Ctx) error {
		return models.NewUnknownEndpointError()
	})
}

// dispatchError is the single terminal point translating internal
// failures to client-visible responses. Handlers never format their own
// error bodies.
func (s *Server) dispatchError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		if appErr.Status() >= fiber.StatusInternalServerError {
			middleware.Logger.Error("request error",
				slog.String("path", c.Path()),
				slog.String("error", appErr.Error()))
		}
		return c.Status(appErr.Status()).JSON(models.ErrorResponse{Error: appErr.Message})
	}

	// Anything untagged gets a generic 500 body; details stay in the log.
	middleware.Logger.Error("unclassified error",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))
	return c.Status(fiber.StatusInternalServerError).
		JSON(models.ErrorResponse{Error: "internal server error"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}
	if err := cache.Close(); err != nil {
		log.Printf("error closing redis: %v", err)
	}
	return nil
}
