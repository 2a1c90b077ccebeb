package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"theaterlist/internal/config"
	"theaterlist/internal/database"
	"theaterlist/internal/document"
	httpapi "theaterlist/internal/http"
	"theaterlist/internal/logger"
	"theaterlist/internal/repository"
	"theaterlist/internal/service"
	"theaterlist/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "theaterlist")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Storage: postgres when enabled and reachable, memory otherwise.
	var db *sql.DB
	var listsRepo repository.ListsRepository
	var directoryRepo repository.DirectoryRepository
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for theaterlist")
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory", zap.Error(err))
		}
	}
	if db != nil {
		listsRepo = repository.NewPostgresListsRepository(db)
		directoryRepo = repository.NewPostgresDirectoryRepository(db)
	} else {
		listsRepo = repository.NewMemoryListsRepo()
		directoryRepo = repository.NewMemoryDirectoryRepo()
	}

	if err := repository.SeedDirectory(context.Background(), directoryRepo); err != nil {
		log.Warn("Failed to seed directory", zap.Error(err))
	}

	// Settings: redis when enabled, memory otherwise.
	var kv store.KV
	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = store.NewRedisKV(redisClient)
	} else {
		kv = store.NewMemoryKV()
	}

	listSvc := service.NewListService(listsRepo, directoryRepo, log)
	settingsSvc := service.NewSettingsService(kv, log)

	var mail *service.MailClient
	if cfg.Mail.Enabled {
		mail = service.NewMailClient(cfg.Mail, log)
	}
	emailSvc := service.NewEmailService(listsRepo, settingsSvc, mail, log)

	sink := document.NewDirectorySink(cfg.DocumentsDir)
	generator := document.NewGenerator(sink, cfg.PhaseDelay, log)
	docSvc := service.NewDocumentService(listsRepo, directoryRepo, generator, log)

	router := httpapi.NewRouter(log)
	router.RegisterListRoutes(
		httpapi.NewListHandler(listSvc, log),
		httpapi.NewDocumentHandler(docSvc, log),
		httpapi.NewEmailHandler(emailSvc, log),
	)
	router.RegisterDirectoryRoutes(httpapi.NewDirectoryHandler(directoryRepo, log))
	router.RegisterSettingsRoutes(httpapi.NewSettingsHandler(settingsSvc, log))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case <-errCh:
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
