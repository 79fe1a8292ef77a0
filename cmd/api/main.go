package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/creatorlab/creator-backend/internal/config"
	"github.com/creatorlab/creator-backend/internal/handler"
	"github.com/creatorlab/creator-backend/internal/middleware"
	"github.com/creatorlab/creator-backend/internal/migration"
	"github.com/creatorlab/creator-backend/internal/repository"
	"github.com/creatorlab/creator-backend/internal/routes"
	"github.com/creatorlab/creator-backend/internal/service"
	pkgcache "github.com/creatorlab/creator-backend/pkg/cache"
	"github.com/creatorlab/creator-backend/pkg/jwt"
	pkglogger "github.com/creatorlab/creator-backend/pkg/logger"
	"github.com/creatorlab/creator-backend/pkg/openrouter"
	pkgredis "github.com/creatorlab/creator-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Creator Backend API
// @version         1.0
// @description     AI content creation backend - per-type CRUD plus LLM generation
//
// @host            localhost:3001
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

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

	pkglogger.Init()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional: without it the dashboard stats cache degrades
	// to per-request queries.
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Info("Warning: Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}
	cacheService := pkgcache.NewService(redisClient)

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	generator := openrouter.NewClient(openrouter.Config{
		APIKey:      cfg.OpenRouter.APIKey,
		Model:       cfg.OpenRouter.Model,
		BaseURL:     cfg.OpenRouter.BaseURL,
		MaxTokens:   cfg.OpenRouter.MaxTokens,
		Temperature: cfg.OpenRouter.Temperature,
		Referer:     cfg.OpenRouter.Referer,
		AppTitle:    "Creator Backend",
	})

	userRepo := repository.NewUserRepository(db)
	contentRepo := repository.NewContentRepository(db)

	authSvc := service.NewAuthService(userRepo, jwtManager)
	contentSvc := service.NewContentService(contentRepo, generator)
	dashboardSvc := service.NewDashboardService(contentRepo, cacheService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupMeta(router)
	routes.SetupAuth(router, handler.NewAuthHandler(authSvc), jwtManager)
	routes.SetupContent(router, contentSvc, jwtManager)
	routes.SetupDashboard(router, handler.NewDashboardHandler(dashboardSvc), jwtManager)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
