package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"github.com/teamnest/teamnest-backend/internal/middleware"
	"github.com/teamnest/teamnest-backend/internal/service"
)

// ArticleHandler handles article API endpoints
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func tenantSiteID(c *gin.Context) (string, bool) {
	tenant := middleware.GetTenant(c)
	if tenant == nil {
		common.ErrorResponse(c, 400, "tenant could not be resolved")
		return "", false
	}
	return tenant.SiteID, true
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	siteID, ok := tenantSiteID(c)
	if !ok {
		return
	}

	var req domain.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "invalid request body")
		return
	}

	article, err := h.articleService.Create(siteID, middleware.GetUserID(c), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.CreatedResponse(c, article)
}

// List handles GET /api/v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
	siteID, ok := tenantSiteID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, err := h.articleService.List(c.Request.Context(), siteID, page, limit)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, list.Articles, &common.Meta{
		Page:  page,
		Limit: limit,
		Total: list.Total,
	})
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	siteID, ok := tenantSiteID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "invalid article id")
		return
	}

	article, err := h.articleService.Get(c.Request.Context(), siteID, id)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, article, nil)
}

// Update handles PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	siteID, ok := tenantSiteID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "invalid article id")
		return
	}

	var req domain.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "invalid request body")
		return
	}

	article, err := h.articleService.Update(siteID, middleware.GetUserID(c), id, &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, article, nil)
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	siteID, ok := tenantSiteID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "invalid article id")
		return
	}

	if err := h.articleService.Delete(siteID, middleware.GetUserID(c), id); err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
