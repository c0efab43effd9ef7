package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"gorm.io/gorm"
)

// MockTodoRepository is a mock implementation of TodoRepository
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) Create(todo *domain.Todo) error {
	args := m.Called(todo)
	return args.Error(0)
}

func (m *MockTodoRepository) FindByID(id uint64) (*domain.Todo, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoRepository) ListByOwner(ownerID string) ([]*domain.Todo, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Todo), args.Error(1)
}

func (m *MockTodoRepository) Update(todo *domain.Todo) error {
	args := m.Called(todo)
	return args.Error(0)
}

func (m *MockTodoRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestTodoToggle_FlipsDone(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewTodoService(repo)

	repo.On("FindByID", uint64(1)).Return(&domain.Todo{ID: 1, OwnerID: "u1", Done: false}, nil).Once()
	repo.On("Update", mock.MatchedBy(func(todo *domain.Todo) bool {
		return todo.ID == 1 && todo.Done
	})).Return(nil).Once()

	todo, err := svc.Toggle("u1", 1)

	assert.NoError(t, err)
	assert.True(t, todo.Done)
	repo.AssertExpectations(t)
}

func TestTodoToggle_NotOwner(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewTodoService(repo)

	repo.On("FindByID", uint64(1)).Return(&domain.Todo{ID: 1, OwnerID: "u1"}, nil).Once()

	_, err := svc.Toggle("u2", 1)

	appErr, ok := common.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, common.KindAuthorization, appErr.Kind)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestTodoDelete_NotFound(t *testing.T) {
	repo := new(MockTodoRepository)
	svc := NewTodoService(repo)

	repo.On("FindByID", uint64(9)).Return(nil, gorm.ErrRecordNotFound).Once()

	err := svc.Delete("u1", 9)

	appErr, ok := common.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, common.KindNotFound, appErr.Kind)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}
