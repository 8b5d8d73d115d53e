package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/config"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/handler"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/middleware"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/migration"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/repository"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/routes"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/internal/service"
	pkgcache "github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/cache"
	"github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/jwt"
	pkglogger "github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/logger"
	pkgredis "github.com/Butterfingersthebrilliant/IPM-SkillCircle/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           SkillCircle API
// @version         1.0
// @description     Campus-restricted student services marketplace API
//
// @host            localhost:8080
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

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	logger := pkglogger.GetLogger()
	logger.Info().Str("env", env).Strs("env_files", dotenvFiles).Msg("Starting")

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info().Msg("Connected to MySQL")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional: caching and rate limiting degrade gracefully
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, continuing without cache and rate limiting")
		redisClient = nil
	} else {
		logger.Info().Msg("Connected to Redis")
	}

	cacheService := pkgcache.NewService(redisClient)

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TTLHours)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	listingRepo := repository.NewListingRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	notificationService := service.NewNotificationService(notificationRepo)
	messageService := service.NewMessageService(messageRepo, userRepo, notificationService)
	requestService := service.NewRequestService(db, requestRepo, messageRepo, userRepo, notificationService)
	authService := service.NewAuthService(userRepo, verificationRepo, jwtManager, cfg.Auth.AllowedEmailDomain, cfg.Auth.VerificationTTLMinutes)
	userService := service.NewUserService(userRepo, cacheService)
	listingService := service.NewListingService(listingRepo, userRepo, notificationService, cacheService)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	listingHandler := handler.NewListingHandler(listingService)
	requestHandler := handler.NewRequestHandler(requestService)
	messageHandler := handler.NewMessageHandler(messageService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	if redisClient != nil && cfg.RateLimit.Enabled {
		rlCfg := middleware.DefaultRateLimitConfig()
		if cfg.RateLimit.RequestsPerMinute > 0 {
			rlCfg.RequestsPerMinute = cfg.RateLimit.RequestsPerMinute
		}
		router.Use(middleware.RateLimit(redisClient, rlCfg))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "skillcircle-api",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(
		router,
		authHandler,
		userHandler,
		listingHandler,
		requestHandler,
		messageHandler,
		notificationHandler,
		jwtManager,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info().Str("addr", addr).Msg("Server listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDB opens the MySQL connection pool through GORM
func initDB(cfg *config.Config) (*gorm.DB, error) {
	dsnCfg := mysqldriver.NewConfig()
	dsnCfg.User = cfg.Database.User
	dsnCfg.Passwd = cfg.Database.Password
	dsnCfg.Net = "tcp"
	dsnCfg.Addr = fmt.Sprintf("%s:%d", cfg.Database.Host, cfg.Database.Port)
	dsnCfg.DBName = cfg.Database.Name
	dsnCfg.ParseTime = true
	dsnCfg.Loc = time.UTC
	dsnCfg.Params = map[string]string{"charset": "utf8mb4"}

	gormCfg := &gorm.Config{}
	if cfg.App.Env == "production" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(mysql.Open(dsnCfg.FormatDSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
