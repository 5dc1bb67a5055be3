package server

import (
	"errors"

	"redator/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// postRequest is the JSON body shared by create and update.
type postRequest struct {
	Titulo    string `json:"titulo"`
	Resumo    string `json:"resumo"`
	Conteudo  string `json:"conteudo"`
	Categoria string `json:"categoria"`
	Imagem    string `json:"imagem"`
}

// GetPosts handles GET /posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("post not found"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	post := &models.Post{
		Titulo:    req.Titulo,
		Resumo:    req.Resumo,
		Conteudo:  req.Conteudo,
		Categoria: req.Categoria,
		Imagem:    req.Imagem,
	}

	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"id": post.ID})
}

// UpdatePost handles PUT /posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	post := &models.Post{
		Titulo:    req.Titulo,
		Resumo:    req.Resumo,
		Conteudo:  req.Conteudo,
		Categoria: req.Categoria,
		Imagem:    req.Imagem,
	}

	affected, err := s.postRepo.Update(c.Context(), id, post)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// A miss reports zero affected rows rather than 404, matching the
	// original service's contract.
	return c.JSON(fiber.Map{"updated": affected})
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	affected, err := s.postRepo.Delete(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"deleted": affected})
}
