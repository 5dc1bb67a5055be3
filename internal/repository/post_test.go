package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"redator/internal/database"
	"redator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database per test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func samplePost(i int) *models.Post {
	return &models.Post{
		Titulo:    fmt.Sprintf("Titulo %d", i),
		Resumo:    fmt.Sprintf("Resumo %d", i),
		Conteudo:  fmt.Sprintf("Conteudo %d", i),
		Categoria: "tecnologia",
		Imagem:    fmt.Sprintf("https://example.com/%d.png", i),
	}
}

func TestPostRepository_CreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := samplePost(1)
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Titulo, got.Titulo)
	assert.Equal(t, post.Resumo, got.Resumo)
	assert.Equal(t, post.Conteudo, got.Conteudo)
	assert.Equal(t, post.Categoria, got.Categoria)
	assert.Equal(t, post.Imagem, got.Imagem)
	assert.Equal(t, time.Now().Format("2006-01-02"), got.Data)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostRepository_List_EmptyTable(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepository(db)

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostRepository_List_OrderedNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	created := make([]uint, 0, 5)
	for i := 1; i <= 5; i++ {
		post := samplePost(i)
		require.NoError(t, repo.Create(ctx, post))
		created = append(created, post.ID)
	}

	// Remove one; the remaining four come back id-descending.
	affected, err := repo.Delete(ctx, created[2])
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 4)
	for i := 1; i < len(posts); i++ {
		assert.Greater(t, posts[i-1].ID, posts[i].ID)
	}
}

func TestPostRepository_Update(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := samplePost(1)
	require.NoError(t, repo.Create(ctx, post))
	originalData := post.Data

	affected, err := repo.Update(ctx, post.ID, &models.Post{
		Titulo:    "Novo Titulo",
		Resumo:    "Novo Resumo",
		Conteudo:  "Novo Conteudo",
		Categoria: "viagem",
		Imagem:    "https://example.com/new.png",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Novo Titulo", got.Titulo)
	assert.Equal(t, "viagem", got.Categoria)
	// The creation date is write-once.
	assert.Equal(t, originalData, got.Data)
}

func TestPostRepository_Update_NonExistent(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	affected, err := repo.Update(ctx, 999, samplePost(1))
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	// A missed update must not create a row.
	posts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_Delete_NonExistent(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepository(db)

	affected, err := repo.Delete(context.Background(), 999)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}
