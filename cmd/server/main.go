package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"faqdesk/backend/internal/cache"
	"faqdesk/backend/internal/config"
	"faqdesk/backend/internal/db"
	"faqdesk/backend/internal/handler"
	transport "faqdesk/backend/internal/http"
	"faqdesk/backend/internal/logger"
	"faqdesk/backend/internal/model"
	"faqdesk/backend/internal/repository"
	"faqdesk/backend/internal/service"
	"faqdesk/backend/internal/snowflake"
	"faqdesk/backend/internal/translate"
)

// noopQueue swallows translation jobs when no provider is configured.
type noopQueue struct{}

func (noopQueue) Enqueue(model.FAQ) {}

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	var backend cache.TranslationCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		backend = redisCache
		logger.Info("answer cache connected", "module", "main", "action", "start", "resource", "cache", "result", "ok", "backend", "redis")
	} else {
		backend = cache.NewInMemoryCache(cfg.CacheTTL)
		logger.Warn("no redis configured, using in-process answer cache", "module", "main", "action", "start", "resource", "cache", "result", "degraded", "backend", "memory")
	}
	defer backend.Close()

	faqRepo := repository.NewFAQRepository(dbConn)
	answers := cache.NewAnswerCache(backend)

	var queue service.TranslationQueue = noopQueue{}
	var dispatcher *service.TranslateDispatcher
	provider, err := translate.NewProvider(translate.Config{
		Provider: cfg.TranslateProvider,
		APIKey:   cfg.TranslateAPIKey,
		BaseURL:  cfg.TranslateBaseURL,
		Model:    cfg.TranslateModel,
	})
	if err != nil {
		logger.Warn("translation provider not configured, translations disabled", "module", "main", "action", "start", "resource", "translation", "result", "degraded", "error", err)
	} else {
		limiter := translate.NewRateLimiter(cfg.TranslateQPS)
		translator := service.NewTranslator(faqRepo, answers, provider, limiter, cfg.TargetLanguages)
		dispatcher = service.NewTranslateDispatcher(translator, 2, 64, 5*time.Minute)
		dispatcher.Start()
		queue = dispatcher
	}

	faqService := service.NewFAQService(faqRepo, answers, queue)
	faqHandler := handler.NewFAQHandler(faqService)

	router := transport.NewRouter(faqHandler)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		if dispatcher != nil {
			dispatcher.Stop()
		}
		_ = backend.Close()
		_ = dbConn.Close()
		os.Exit(0)
	}()

	logger.Info("server starting",
		"module", "main", "action", "start", "resource", "server", "result", "ok",
		"app", config.AppName, "version", config.AppVersion, "addr", cfg.Addr)

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
