package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"gorm.io/gorm"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *domain.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(id uint64) (*domain.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) List(siteID string, page, limit int) ([]*domain.Article, int64, error) {
	args := m.Called(siteID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) Update(article *domain.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) IncrementViews(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCacheService is a mock implementation of cache.Service
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCacheService) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheService) GetArticles(ctx context.Context, siteID string, page, limit int) ([]byte, error) {
	args := m.Called(ctx, siteID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheService) SetArticles(ctx context.Context, siteID string, page, limit int, data interface{}) error {
	args := m.Called(ctx, siteID, page, limit, data)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateArticles(ctx context.Context, siteID string) error {
	args := m.Called(ctx, siteID)
	return args.Error(0)
}

func (m *MockCacheService) GetUser(ctx context.Context, userID string) ([]byte, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheService) SetUser(ctx context.Context, userID string, data interface{}) error {
	args := m.Called(ctx, userID, data)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCacheService) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func storedArticle() *domain.Article {
	return &domain.Article{
		ID:       10,
		SiteID:   "site1",
		AuthorID: "alice",
		Title:    "first post",
		Content:  "hello",
	}
}

func TestArticleUpdate_AuthorOnly(t *testing.T) {
	repo := new(MockArticleRepository)
	userRepo := new(MockUserRepository)
	svc := NewArticleService(repo, userRepo, nil)

	repo.On("FindByID", uint64(10)).Return(storedArticle(), nil)

	_, err := svc.Update("site1", "mallory", 10, &domain.UpdateArticleRequest{Title: "hijacked"})

	assertKind(t, err, common.KindAuthorization)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestArticleUpdate_ByAuthor_InvalidatesCache(t *testing.T) {
	repo := new(MockArticleRepository)
	userRepo := new(MockUserRepository)
	cacheSvc := new(MockCacheService)
	svc := NewArticleService(repo, userRepo, cacheSvc)

	repo.On("FindByID", uint64(10)).Return(storedArticle(), nil)
	repo.On("Update", mock.Anything).Return(nil)
	userRepo.On("FindByUserID", "alice").Return(&domain.User{ID: "alice", Name: "Alice"}, nil)
	cacheSvc.On("IsAvailable").Return(true)
	cacheSvc.On("InvalidateArticles", mock.Anything, "site1").Return(nil)

	updated, err := svc.Update("site1", "alice", 10, &domain.UpdateArticleRequest{Title: "edited"})

	assert.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
	cacheSvc.AssertCalled(t, "InvalidateArticles", mock.Anything, "site1")
}

func TestArticleUpdate_CrossTenant_NotFound(t *testing.T) {
	repo := new(MockArticleRepository)
	userRepo := new(MockUserRepository)
	svc := NewArticleService(repo, userRepo, nil)

	// row exists but belongs to another site; hidden as not found
	repo.On("FindByID", uint64(10)).Return(storedArticle(), nil)

	_, err := svc.Update("site2", "alice", 10, &domain.UpdateArticleRequest{Title: "edited"})

	assertKind(t, err, common.KindNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestArticleDelete_NonAuthor_Authorization(t *testing.T) {
	repo := new(MockArticleRepository)
	userRepo := new(MockUserRepository)
	svc := NewArticleService(repo, userRepo, nil)

	repo.On("FindByID", uint64(10)).Return(storedArticle(), nil)

	err := svc.Delete("site1", "mallory", 10)

	assertKind(t, err, common.KindAuthorization)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestArticleDelete_ByAuthor(t *testing.T) {
	repo := new(MockArticleRepository)
	userRepo := new(MockUserRepository)
	cacheSvc := new(MockCacheService)
	svc := NewArticleService(repo, userRepo, cacheSvc)

	repo.On("FindByID", uint64(10)).Return(storedArticle(), nil)
	repo.On("Delete", uint64(10)).Return(nil)
	cacheSvc.On("IsAvailable").Return(true)
	cacheSvc.On("InvalidateArticles", mock.Anything, "site1").Return(nil)

	err := svc.Delete("site1", "alice", 10)

	assert.NoError(t, err)
	repo.AssertCalled(t, "Delete", uint64(10))
	cacheSvc.AssertCalled(t, "InvalidateArticles", mock.Anything, "site1")
}

func TestArticleGet_CrossTenant_NotFound(t *testing.T) {
	repo := new(MockArticleRepository)
	userRepo := new(MockUserRepository)
	svc := NewArticleService(repo, userRepo, nil)

	repo.On("FindByID", uint64(10)).Return(storedArticle(), nil)

	_, err := svc.Get(context.Background(), "site2", 10)

	assertKind(t, err, common.KindNotFound)
	repo.AssertNotCalled(t, "IncrementViews", mock.Anything)
}

func TestArticleGet_Missing_NotFound(t *testing.T) {
	repo := new(MockArticleRepository)
	userRepo := new(MockUserRepository)
	svc := NewArticleService(repo, userRepo, nil)

	repo.On("FindByID", uint64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), "site1", 99)

	assertKind(t, err, common.KindNotFound)
}

func TestArticleGet_RepositoryFailure_Database(t *testing.T) {
	repo := new(MockArticleRepository)
	userRepo := new(MockUserRepository)
	svc := NewArticleService(repo, userRepo, nil)

	repo.On("FindByID", uint64(10)).Return(nil, errors.New("connection reset"))

	_, err := svc.Get(context.Background(), "site1", 10)

	appErr := assertKind(t, err, common.KindDatabase)
	assert.NotContains(t, appErr.Message, "connection reset")
}
