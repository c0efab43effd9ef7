package repository

import (
	"github.com/teamnest/teamnest-backend/internal/domain"
	"gorm.io/gorm"
)

// ArticleRepository article data access, scoped by tenant site
type ArticleRepository interface {
	Create(article *domain.Article) error
	FindByID(id uint64) (*domain.Article, error)
	List(siteID string, page, limit int) ([]*domain.Article, int64, error)
	Update(article *domain.Article) error
	Delete(id uint64) error
	IncrementViews(id uint64) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *domain.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) FindByID(id uint64) (*domain.Article, error) {
	var article domain.Article
	err := r.db.Where("id = ?", id).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(siteID string, page, limit int) ([]*domain.Article, int64, error) {
	var articles []*domain.Article
	var total int64

	query := r.db.Model(&domain.Article{}).Where("site_id = ?", siteID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) Update(article *domain.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint64) error {
	return r.db.Where("id = ?", id).Delete(&domain.Article{}).Error
}

func (r *articleRepository) IncrementViews(id uint64) error {
	return r.db.Model(&domain.Article{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
