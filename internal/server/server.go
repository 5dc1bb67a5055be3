// Package server contains the HTTP handlers and routing for the posts API.
package server

import (
	"strings"
	"time"

	"redator/internal/auth"
	"redator/internal/config"
	"redator/internal/database"
	"redator/internal/middleware"
	"redator/internal/models"
	"redator/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config   *config.Config
	db       *gorm.DB
	postRepo repository.PostRepository
	tokens   *auth.TokenService
	creds    *auth.Credentials
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db)
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Used by tests and by any bootstrap layer that establishes the DB itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	creds, err := auth.NewCredentials(cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:   cfg,
		db:       db,
		postRepo: repository.NewPostRepository(db),
		tokens:   auth.NewTokenService(cfg.JWTSecret),
		creds:    creds,
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into slog
	app.Use(middleware.ContextMiddleware())

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	app.Post("/login", s.Login)

	// Public post routes
	app.Get("/posts", s.GetPosts)
	app.Get("/posts/:id", s.GetPost)

	// Protected post routes
	app.Post("/posts", s.AuthRequired(), s.CreatePost)
	app.Put("/posts/:id", s.AuthRequired(), s.UpdatePost)
	app.Delete("/posts/:id", s.AuthRequired(), s.DeletePost)
}

// AuthRequired returns the authentication middleware guarding write routes.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("not authorized"))
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("invalid token"))
		}

		usuario, err := s.tokens.Verify(parts[1])
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("invalid token"))
		}

		// Attach the decoded identity to the request
		c.Locals("usuario", usuario)
		return c.Next()
	}
}

// HealthCheck handles GET /health and reports database reachability.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "ok"
	status := fiber.StatusOK

	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil || sqlDB.PingContext(c.Context()) != nil {
			dbStatus = "unreachable"
			status = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"status": dbStatus,
		"time":   time.Now(),
	})
}
