package repository

import (
	"github.com/teamnest/teamnest-backend/internal/domain"
	"gorm.io/gorm"
)

// TodoRepository to-do data access
type TodoRepository interface {
	Create(todo *domain.Todo) error
	FindByID(id uint64) (*domain.Todo, error)
	ListByOwner(ownerID string) ([]*domain.Todo, error)
	Update(todo *domain.Todo) error
	Delete(id uint64) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(todo *domain.Todo) error {
	return r.db.Create(todo).Error
}

func (r *todoRepository) FindByID(id uint64) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.Where("id = ?", id).First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) ListByOwner(ownerID string) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	err := r.db.Where("owner_id = ?", ownerID).
		Order("done ASC, due_at IS NULL, due_at ASC, id DESC").
		Find(&todos).Error
	return todos, err
}

func (r *todoRepository) Update(todo *domain.Todo) error {
	return r.db.Save(todo).Error
}

func (r *todoRepository) Delete(id uint64) error {
	return r.db.Where("id = ?", id).Delete(&domain.Todo{}).Error
}
