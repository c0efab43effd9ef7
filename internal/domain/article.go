package domain

import (
	"time"

	"gorm.io/gorm"
)

// Article represents a published article within a tenant site
type Article struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SiteID    string         `gorm:"column:site_id;size:50;index" json:"site_id"`
	AuthorID  string         `gorm:"column:author_id;size:50;index" json:"author_id"`
	Title     string         `gorm:"column:title;size:255" json:"title"`
	Content   string         `gorm:"column:content;type:text" json:"content"`
	Views     int64          `gorm:"column:views;default:0" json:"views"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Article) TableName() string { return "articles" }

// CreateArticleRequest represents an article creation request
type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

// UpdateArticleRequest represents an article update request
type UpdateArticleRequest struct {
	Title   string `json:"title" binding:"omitempty,max=255"`
	Content string `json:"content"`
}

// ArticleResponse represents an article in API responses
type ArticleResponse struct {
	ID         uint64 `json:"id"`
	SiteID     string `json:"site_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Views      int64  `json:"views"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ToResponse converts Article to ArticleResponse
func (a *Article) ToResponse(authorName string) *ArticleResponse {
	return &ArticleResponse{
		ID:         a.ID,
		SiteID:     a.SiteID,
		AuthorID:   a.AuthorID,
		AuthorName: authorName,
		Title:      a.Title,
		Content:    a.Content,
		Views:      a.Views,
		CreatedAt:  a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
