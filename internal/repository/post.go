// Package repository provides the data access layer for posts.
package repository

import (
	"context"
	"time"

	"redator/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. Every method
// runs exactly one parameterized statement; storage failures surface to the
// caller unwrapped.
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, id uint, post *models.Post) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, now: time.Now}
}

// List returns all posts ordered by id descending (newest first). An empty
// table yields an empty slice, not an error.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID returns the post with the given id, or gorm.ErrRecordNotFound.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts the post with a server-assigned creation date. The database
// assigns the id; both are written back into the given struct.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	post.ID = 0
	post.Data = r.now().Format("2006-01-02")
	return r.db.WithContext(ctx).Create(post).Error
}

// Update replaces the mutable fields of the post matching id. The id and the
// creation date are never touched. Returns the number of affected rows; zero
// means no post matched.
func (r *postRepository) Update(ctx context.Context, id uint, post *models.Post) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Select("titulo", "resumo", "conteudo", "categoria", "imagem").
		Updates(map[string]any{
			"titulo":    post.Titulo,
			"resumo":    post.Resumo,
			"conteudo":  post.Conteudo,
			"categoria": post.Categoria,
			"imagem":    post.Imagem,
		})
	return result.RowsAffected, result.Error
}

// Delete removes the post matching id. Returns the number of affected rows;
// zero means no post matched.
func (r *postRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	return result.RowsAffected, result.Error
}
