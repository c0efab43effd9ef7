package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"github.com/teamnest/teamnest-backend/internal/repository"
	"github.com/teamnest/teamnest-backend/pkg/cache"
	"github.com/teamnest/teamnest-backend/pkg/logger"
	"gorm.io/gorm"
)

// ArticleList paginated article list payload (also the cached shape)
type ArticleList struct {
	Articles []*domain.ArticleResponse `json:"articles"`
	Total    int64                     `json:"total"`
}

// ArticleService article CRUD scoped to a tenant site. Update and delete
// are author-only.
type ArticleService interface {
	Create(siteID, authorID string, req *domain.CreateArticleRequest) (*domain.ArticleResponse, error)
	Get(ctx context.Context, siteID string, id uint64) (*domain.ArticleResponse, error)
	List(ctx context.Context, siteID string, page, limit int) (*ArticleList, error)
	Update(siteID, userID string, id uint64, req *domain.UpdateArticleRequest) (*domain.ArticleResponse, error)
	Delete(siteID, userID string, id uint64) error
}

type articleService struct {
	repo     repository.ArticleRepository
	userRepo repository.UserRepository
	cache    cache.Service
}

// NewArticleService creates a new ArticleService
func NewArticleService(repo repository.ArticleRepository, userRepo repository.UserRepository, cacheService cache.Service) ArticleService {
	return &articleService{
		repo:     repo,
		userRepo: userRepo,
		cache:    cacheService,
	}
}

func (s *articleService) Create(siteID, authorID string, req *domain.CreateArticleRequest) (*domain.ArticleResponse, error) {
	article := &domain.Article{
		SiteID:   siteID,
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := s.repo.Create(article); err != nil {
		logger.GetLogger().Error().Err(err).Msg("article create failed")
		return nil, common.NewDatabaseError("failed to create article")
	}

	s.invalidateList(siteID)
	return article.ToResponse(s.authorName(authorID)), nil
}

func (s *articleService) Get(ctx context.Context, siteID string, id uint64) (*domain.ArticleResponse, error) {
	article, err := s.findInSite(siteID, id)
	if err != nil {
		return nil, err
	}

	// view count is best effort
	if err := s.repo.IncrementViews(id); err == nil {
		article.Views++
	}

	return article.ToResponse(s.authorName(article.AuthorID)), nil
}

func (s *articleService) List(ctx context.Context, siteID string, page, limit int) (*ArticleList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	if s.cache != nil && s.cache.IsAvailable() {
		if data, err := s.cache.GetArticles(ctx, siteID, page, limit); err == nil {
			var cached ArticleList
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	articles, total, err := s.repo.List(siteID, page, limit)
	if err != nil {
		logger.GetLogger().Error().Err(err).Msg("article list failed")
		return nil, common.NewDatabaseError("failed to list articles")
	}

	responses := make([]*domain.ArticleResponse, len(articles))
	for i, a := range articles {
		responses[i] = a.ToResponse(s.authorName(a.AuthorID))
	}
	list := &ArticleList{Articles: responses, Total: total}

	if s.cache != nil && s.cache.IsAvailable() {
		_ = s.cache.SetArticles(ctx, siteID, page, limit, list)
	}
	return list, nil
}

func (s *articleService) Update(siteID, userID string, id uint64, req *domain.UpdateArticleRequest) (*domain.ArticleResponse, error) {
	article, err := s.findInSite(siteID, id)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, common.NewAuthorizationError("not permitted to update article")
	}

	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Content != "" {
		article.Content = req.Content
	}
	if err := s.repo.Update(article); err != nil {
		logger.GetLogger().Error().Err(err).Msg("article update failed")
		return nil, common.NewDatabaseError("failed to update article")
	}

	s.invalidateList(siteID)
	return article.ToResponse(s.authorName(article.AuthorID)), nil
}

func (s *articleService) Delete(siteID, userID string, id uint64) error {
	article, err := s.findInSite(siteID, id)
	if err != nil {
		return err
	}

	if article.AuthorID != userID {
		return common.NewAuthorizationError("not permitted to delete article")
	}

	if err := s.repo.Delete(id); err != nil {
		logger.GetLogger().Error().Err(err).Msg("article delete failed")
		return common.NewDatabaseError("failed to delete article")
	}

	s.invalidateList(siteID)
	return nil
}

// findInSite loads an article and hides cross-tenant rows as not found
func (s *articleService) findInSite(siteID string, id uint64) (*domain.Article, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("article not found")
		}
		logger.GetLogger().Error().Err(err).Msg("article lookup failed")
		return nil, common.NewDatabaseError("failed to load article")
	}
	if article.SiteID != siteID {
		return nil, common.NewNotFoundError("article not found")
	}
	return article, nil
}

func (s *articleService) authorName(authorID string) string {
	user, err := s.userRepo.FindByUserID(authorID)
	if err != nil {
		return ""
	}
	return user.Name
}

func (s *articleService) invalidateList(siteID string) {
	if s.cache != nil && s.cache.IsAvailable() {
		_ = s.cache.InvalidateArticles(context.Background(), siteID)
	}
}
