package main

import (
	"LostFound/internal/ai"
	"LostFound/internal/blob"
	"LostFound/internal/config"
	"LostFound/internal/handlers"
	"LostFound/internal/middleware"
	"LostFound/internal/notify"
	"LostFound/internal/repo"
	"LostFound/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := repo.Open(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			sugar.Errorw("failed to close database", "error", err)
		}
	}()

	store, files, err := newBlobStore(ctx, cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize blob store", "backend", cfg.BlobBackend, "error", err)
	}

	llm, err := ai.New(ctx, ai.Options{
		Provider:     cfg.LLMProvider,
		Model:        cfg.LLMModel,
		GeminiAPIKey: cfg.GeminiAPIKey,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
	})
	if err != nil {
		sugar.Fatalw("failed to initialize llm client", "provider", cfg.LLMProvider, "error", err)
	}

	var notifier notify.Notifier = notify.LogNotifier{Logger: sugar}
	if cfg.ResendAPIKey != "" {
		notifier = notify.NewResend(notify.ResendOpts{APIKey: cfg.ResendAPIKey, From: cfg.SenderEmail})
	}

	matcher := service.NewMatcher(repos.Items, repos.Matches, llm, notifier, sugar)
	itemService := service.NewItemService(repos.Items, store, llm, matcher, sugar)

	h := handlers.NewHandler(itemService, sugar, cfg, files)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		// сопоставление выполняется внутри запроса и может занимать десятки секунд
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"PublicURL", cfg.PublicURL,
		"Store", repos.Backend,
		"BlobBackend", cfg.BlobBackend,
		"LLMProvider", cfg.LLMProvider,
		"EmailEnabled", cfg.ResendAPIKey != "",
		"CORSOrigins", cfg.CORSOrigins,
	)

	go func() {
		sugar.Infow("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}
}

// newLogger: JSON-логгер для продакшена, development - для локального запуска.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zc := zap.NewDevelopmentConfig()
	if cfg.LogJSON {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	return zc.Build()
}

// newBlobStore возвращает хранилище фотографий и, для локального варианта, обработчик раздачи файлов.
func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, http.Handler, error) {
	if cfg.BlobBackend == config.BlobBackendS3 {
		s, err := blob.NewS3Store(ctx, blob.S3Options{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.AWSRegion,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	}

	s, err := blob.NewLocalStore(cfg.BlobDir, cfg.PublicURL+"/files")
	if err != nil {
		return nil, nil, err
	}
	return s, s.Handler(), nil
}
