package server

import (
	"redator/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /login. It validates the static admin credentials and
// issues a bearer token valid for two hours.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Usuario string `json:"usuario"`
		Senha   string `json:"senha"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	if !s.creds.Match(req.Usuario, req.Senha) {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("invalid credentials"))
	}

	token, err := s.tokens.Issue(req.Usuario)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"token": token})
}
