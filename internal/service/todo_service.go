package service

import (
	"errors"

	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"github.com/teamnest/teamnest-backend/internal/repository"
	"github.com/teamnest/teamnest-backend/pkg/logger"
	"gorm.io/gorm"
)

// TodoService owner-scoped to-do CRUD
type TodoService interface {
	Create(ownerID string, req *domain.CreateTodoRequest) (*domain.Todo, error)
	List(ownerID string) ([]*domain.Todo, error)
	Update(ownerID string, id uint64, req *domain.UpdateTodoRequest) (*domain.Todo, error)
	Toggle(ownerID string, id uint64) (*domain.Todo, error)
	Delete(ownerID string, id uint64) error
}

type todoService struct {
	repo repository.TodoRepository
}

// NewTodoService creates a new TodoService
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) Create(ownerID string, req *domain.CreateTodoRequest) (*domain.Todo, error) {
	todo := &domain.Todo{
		OwnerID: ownerID,
		Title:   req.Title,
		DueAt:   req.DueAt,
	}
	if err := s.repo.Create(todo); err != nil {
		logger.GetLogger().Error().Err(err).Msg("todo create failed")
		return nil, common.NewDatabaseError("failed to create todo")
	}
	return todo, nil
}

func (s *todoService) List(ownerID string) ([]*domain.Todo, error) {
	todos, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		logger.GetLogger().Error().Err(err).Msg("todo list failed")
		return nil, common.NewDatabaseError("failed to list todos")
	}
	return todos, nil
}

func (s *todoService) Update(ownerID string, id uint64, req *domain.UpdateTodoRequest) (*domain.Todo, error) {
	todo, err := s.findOwned(ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Done != nil {
		todo.Done = *req.Done
	}
	if req.DueAt != nil {
		todo.DueAt = req.DueAt
	}
	if err := s.repo.Update(todo); err != nil {
		logger.GetLogger().Error().Err(err).Msg("todo update failed")
		return nil, common.NewDatabaseError("failed to update todo")
	}
	return todo, nil
}

func (s *todoService) Toggle(ownerID string, id uint64) (*domain.Todo, error) {
	todo, err := s.findOwned(ownerID, id)
	if err != nil {
		return nil, err
	}

	todo.Done = !todo.Done
	if err := s.repo.Update(todo); err != nil {
		logger.GetLogger().Error().Err(err).Msg("todo toggle failed")
		return nil, common.NewDatabaseError("failed to update todo")
	}
	return todo, nil
}

func (s *todoService) Delete(ownerID string, id uint64) error {
	if _, err := s.findOwned(ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		logger.GetLogger().Error().Err(err).Msg("todo delete failed")
		return common.NewDatabaseError("failed to delete todo")
	}
	return nil
}

func (s *todoService) findOwned(ownerID string, id uint64) (*domain.Todo, error) {
	todo, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("todo not found")
		}
		logger.GetLogger().Error().Err(err).Msg("todo lookup failed")
		return nil, common.NewDatabaseError("failed to load todo")
	}
	if todo.OwnerID != ownerID {
		return nil, common.NewAuthorizationError("not permitted to access todo")
	}
	return todo, nil
}
