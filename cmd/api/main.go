package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teamnest/teamnest-backend/internal/config"
	"github.com/teamnest/teamnest-backend/internal/handler"
	"github.com/teamnest/teamnest-backend/internal/middleware"
	"github.com/teamnest/teamnest-backend/internal/migration"
	"github.com/teamnest/teamnest-backend/internal/repository"
	"github.com/teamnest/teamnest-backend/internal/routes"
	"github.com/teamnest/teamnest-backend/internal/service"
	pkgcache "github.com/teamnest/teamnest-backend/pkg/cache"
	pkgjwt "github.com/teamnest/teamnest-backend/pkg/jwt"
	pkglogger "github.com/teamnest/teamnest-backend/pkg/logger"
	pkgredis "github.com/teamnest/teamnest-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	zlog := pkglogger.GetLogger()
	zlog.Info().Str("env", env).Strs("dotenv", dotenvFiles).Msg("starting")

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	zlog.Info().Msg("connected to MySQL")

	if err := migration.Run(db); err != nil {
		zlog.Warn().Err(err).Msg("migration warning")
	}

	// Redis is optional; the app degrades to uncached reads without it
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	var cacheService pkgcache.Service
	if err != nil {
		zlog.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
	} else {
		zlog.Info().Msg("connected to Redis")
		cacheService = pkgcache.NewService(redisClient)
	}

	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	siteRepo := repository.NewSiteRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	messageService := service.NewMessageService(messageRepo)
	articleService := service.NewArticleService(articleRepo, userRepo, cacheService)
	todoService := service.NewTodoService(todoRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	messageHandler := handler.NewMessageHandler(messageService)
	articleHandler := handler.NewArticleHandler(articleService)
	todoHandler := handler.NewTodoHandler(todoService)

	if env != "local" && env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders,
		"Authorization", "X-Request-ID", "X-Tenant-Subdomain")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Setup(router,
		authHandler, messageHandler, articleHandler, todoHandler,
		siteRepo, jwtManager, cfg.Tenant.BaseDomain)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// report pool usage to prometheus
	go reportDBStats(ctx, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}
	go func() {
		zlog.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	zlog.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("shutdown error")
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)
	mysqlCfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	gormLogLevel := gormlogger.Warn
	if cfg.Server.Env == "local" || cfg.Server.Env == "development" {
		gormLogLevel = gormlogger.Info
	}
	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func reportDBStats(ctx context.Context, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			middleware.SetDBConnectionsActive(float64(sqlDB.Stats().InUse))
		}
	}
}
