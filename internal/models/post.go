// Package models defines the persisted entities and the API error types.
package models

// Post is the single content entity managed by the service. Column and JSON
// names keep the Portuguese naming of the original database schema.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Titulo    string `gorm:"column:titulo" json:"titulo"`
	Resumo    string `gorm:"column:resumo" json:"resumo"`
	Conteudo  string `gorm:"column:conteudo" json:"conteudo"`
	Categoria string `gorm:"column:categoria" json:"categoria"`
	Imagem    string `gorm:"column:imagem" json:"imagem"`
	// Data is the creation date in YYYY-MM-DD form, set once at insert time
	// and never updated.
	Data string `gorm:"column:data" json:"data"`
}

// TableName overrides the GORM table name.
func (Post) TableName() string {
	return "posts"
}
