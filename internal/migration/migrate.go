package migration

import (
	"github.com/teamnest/teamnest-backend/internal/domain"
	"gorm.io/gorm"
)

// Run applies schema migrations for all application models
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Site{},
		&domain.User{},
		&domain.Message{},
		&domain.Article{},
		&domain.Todo{},
	)
}
