package main

import (
	"context"
	"fmt"
	"time"

	"coursemarket/config"
	"coursemarket/internal/application/usecase"
	"coursemarket/internal/domain"
	"coursemarket/internal/infrastructure/assistant"
	"coursemarket/internal/infrastructure/cache"
	"coursemarket/internal/infrastructure/email"
	"coursemarket/internal/infrastructure/repository"
	"coursemarket/internal/infrastructure/security"
	"coursemarket/internal/middleware"
	handlers "coursemarket/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	// 1. Конфиг
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Postgres
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	// Миграция
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Course{},
		&domain.Lesson{},
		&domain.CartItem{},
		&domain.Purchase{},
		&domain.CourseProgress{},
		&domain.CourseReview{},
		&domain.ContactMessage{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// 3. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Infow("connected to redis", "addr", cfg.RedisAddr)

	// 4. Инфраструктура
	tokenManager := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret,
		parseTTL(cfg.AccessTokenTTL, log), parseTTL(cfg.RefreshTokenTTL, log))
	hasher := security.NewPasswordHasher()
	tokenCache := cache.NewTokenCache(rdb, tokenManager.RefreshTTL(), cache.DefaultResetTTL)
	emailSender := email.NewEmailSender(cfg.SendgridAPIKey, cfg.SenderEmail, cfg.FrontendURL)

	gemini, err := assistant.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to init Gemini client: %v", err)
	}

	// 5. Репозитории
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db, rdb)
	cartRepo := repository.NewCartRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// 6. Юзкейсы
	authUC := usecase.NewAuthUseCase(userRepo, tokenCache, hasher, tokenManager, emailSender, log)
	catalogUC := usecase.NewCatalogUseCase(courseRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, courseRepo)
	checkoutUC := usecase.NewCheckoutUseCase(cartRepo, checkoutRepo, purchaseRepo)
	progressUC := usecase.NewProgressUseCase(progressRepo)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, progressRepo)
	assistantUC := usecase.NewAssistantUseCase(courseRepo, gemini, log)
	contactUC := usecase.NewContactUseCase(contactRepo, emailSender, cfg.SupportEmail, log)

	// 7. Роутер
	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:           handlers.NewAuthHandler(authUC),
		Course:         handlers.NewCourseHandler(catalogUC, reviewUC),
		Cart:           handlers.NewCartHandler(cartUC),
		Payment:        handlers.NewPaymentHandler(checkoutUC),
		Progress:       handlers.NewProgressHandler(progressUC),
		Review:         handlers.NewReviewHandler(reviewUC),
		Assistant:      handlers.NewAssistantHandler(assistantUC),
		Contact:        handlers.NewContactHandler(contactUC),
		TokenManager:   tokenManager,
		Limiter:        middleware.NewRateLimiter(rdb, log),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	log.Infow("coursemarket running", "port", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// parseTTL: пустое значение — нулевая длительность, дефолт подставит TokenManager
func parseTTL(raw string, log *zap.SugaredLogger) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Warnw("bad token TTL in config, falling back to default", "value", raw, "error", err)
		return 0
	}
	return d
}
