package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/legalsearch/internal/config"
	"github.com/kailas-cloud/legalsearch/internal/domain/search/relevance"
	logpkg "github.com/kailas-cloud/legalsearch/internal/logger"
	"github.com/kailas-cloud/legalsearch/internal/metrics"
	documentrepo "github.com/kailas-cloud/legalsearch/internal/repository/document"
	chiTransport "github.com/kailas-cloud/legalsearch/internal/transport/chi"
	documentuc "github.com/kailas-cloud/legalsearch/internal/usecase/document"
	healthuc "github.com/kailas-cloud/legalsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/legalsearch/internal/usecase/search"
	"github.com/kailas-cloud/legalsearch/internal/version"
)

func runServe(ctx context.Context) error {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level, bool(cfg.Debug))
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting legalsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("addr", cfg.HTTP.Addr()),
		zap.String("base_path", cfg.HTTP.BasePath),
		zap.Strings("cors_origins", cfg.CORS.Origins()),
		zap.Bool("debug", bool(cfg.Debug)),
	)

	repo, err := openCorpus(cfg.Corpus.Path)
	if err != nil {
		logger.Error("Failed to load corpus", zap.String("path", cfg.Corpus.Path), zap.Error(err))
		return err
	}
	count, _ := repo.Count(ctx)
	logger.Info("Corpus loaded", zap.Int("documents", count))

	metrics.RegisterSearchMetrics()
	metrics.CorpusDocuments.Set(float64(count))

	snippeter, err := relevance.NewSnippeter(cfg.Search.SnippetMaxLength, cfg.Search.SnippetContextChars)
	if err != nil {
		return fmt.Errorf("snippet config: %w", err)
	}

	searchSvc := searchuc.NewInstrumentedSearcher(searchuc.New(repo, snippeter))
	docSvc := documentuc.New(repo)
	healthSvc := healthuc.New(repo)

	server := chiTransport.NewServer(searchSvc, docSvc, healthSvc, logger).
		WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes)
	handler := chiTransport.NewRouter(server, logger, chiTransport.Options{
		BasePath:       cfg.HTTP.BasePath,
		AllowedOrigins: cfg.CORS.Origins(),
		RateLimitRPS:   cfg.HTTP.RateLimitRPS,
		RateLimitBurst: cfg.HTTP.RateLimitBurst,
		Debug:          bool(cfg.Debug),
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP server error", zap.Error(err))
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}

func openCorpus(path string) (*documentrepo.Repo, error) {
	if path == "" {
		repo, err := documentrepo.Builtin()
		if err != nil {
			return nil, fmt.Errorf("built-in corpus: %w", err)
		}
		return repo, nil
	}
	repo, err := documentrepo.NewFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return repo, nil
}
