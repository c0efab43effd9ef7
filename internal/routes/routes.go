package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/teamnest/teamnest-backend/internal/handler"
	"github.com/teamnest/teamnest-backend/internal/middleware"
	"github.com/teamnest/teamnest-backend/internal/repository"
	"github.com/teamnest/teamnest-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	messageHandler *handler.MessageHandler,
	articleHandler *handler.ArticleHandler,
	todoHandler *handler.TodoHandler,
	siteRepo repository.SiteRepository,
	jwtManager *jwt.Manager,
	baseDomain string,
) {
	api := router.Group("/api/v1")

	// Authentication endpoints (no auth required except profile)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/profile", middleware.JWTAuth(jwtManager), authHandler.Profile)

	// Private messages (all authenticated, user-scoped)
	messages := api.Group("/messages", middleware.JWTAuth(jwtManager))
	{
		messages.POST("", messageHandler.Send)
		messages.GET("/inbox", messageHandler.Inbox)
		messages.GET("/sent", messageHandler.Sent)
		messages.PATCH("/:id/read", messageHandler.MarkAsRead)
		messages.DELETE("/:id", messageHandler.Delete)
	}

	// Articles (tenant-scoped; reads are public, writes authenticated)
	articles := api.Group("/articles", middleware.Tenant(siteRepo, baseDomain))
	{
		articles.GET("", articleHandler.List)
		articles.GET("/:id", articleHandler.Get)
		articles.POST("", middleware.JWTAuth(jwtManager), articleHandler.Create)
		articles.PUT("/:id", middleware.JWTAuth(jwtManager), articleHandler.Update)
		articles.DELETE("/:id", middleware.JWTAuth(jwtManager), articleHandler.Delete)
	}

	// To-dos (all authenticated, owner-scoped)
	todos := api.Group("/todos", middleware.JWTAuth(jwtManager))
	{
		todos.POST("", todoHandler.Create)
		todos.GET("", todoHandler.List)
		todos.PUT("/:id", todoHandler.Update)
		todos.PATCH("/:id/toggle", todoHandler.Toggle)
		todos.DELETE("/:id", todoHandler.Delete)
	}
}
