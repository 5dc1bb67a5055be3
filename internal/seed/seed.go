// Package seed fills the posts table with sample content for development.
package seed

import (
	"context"
	"fmt"
	"log"

	"redator/internal/models"
	"redator/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var categorias = []string{
	"tecnologia", "viagem", "culinaria", "esportes", "cultura", "opiniao",
}

// Posts inserts n fake posts through the regular repository so seeded rows
// get the same server-assigned dates as real ones.
func Posts(db *gorm.DB, n int) error {
	repo := repository.NewPostRepository(db)

	for i := 0; i < n; i++ {
		post := &models.Post{
			Titulo:    gofakeit.Sentence(5),
			Resumo:    gofakeit.Sentence(12),
			Conteudo:  gofakeit.Paragraph(3, 4, 10, "\n\n"),
			Categoria: categorias[gofakeit.Number(0, len(categorias)-1)],
			Imagem:    fmt.Sprintf("https://picsum.photos/seed/%d/800/400", gofakeit.Number(1, 10000)),
		}
		if err := repo.Create(context.Background(), post); err != nil {
			return fmt.Errorf("failed to seed post %d: %w", i+1, err)
		}
	}

	log.Printf("Seeded %d posts", n)
	return nil
}

// Clean truncates the posts table before reseeding.
func Clean(db *gorm.DB) error {
	return db.Exec("DELETE FROM posts").Error
}
