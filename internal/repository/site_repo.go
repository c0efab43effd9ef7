package repository

import (
	"github.com/teamnest/teamnest-backend/internal/domain"
	"gorm.io/gorm"
)

// SiteRepository tenant site data access
type SiteRepository interface {
	FindBySubdomain(subdomain string) (*domain.Site, error)
	FindByID(id string) (*domain.Site, error)
}

type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new SiteRepository
func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) FindBySubdomain(subdomain string) (*domain.Site, error) {
	var site domain.Site
	err := r.db.Where("subdomain = ? AND active = true", subdomain).First(&site).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *siteRepository) FindByID(id string) (*domain.Site, error) {
	var site domain.Site
	err := r.db.Where("id = ?", id).First(&site).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}
