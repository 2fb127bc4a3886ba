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

	dbadapter "devblog/internal/adapters/database"
	"devblog/internal/adapters/httpapi"
	"devblog/internal/adapters/memory"
	redisadapter "devblog/internal/adapters/redis"
	"devblog/internal/config"
	postapp "devblog/internal/core/post/service"
	activityPort "devblog/internal/ports/activity"
	"devblog/internal/workers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, warnings := config.Load()

	logger, err := config.NewLogger(cfg.Server.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	config.LogWarnings(logger, warnings)

	os.Exit(exitCode(logger, run(cfg, logger)))
}

// exitCode logs err and flushes the logger before the process exits.
func exitCode(logger *zap.Logger, err error) int {
	code := 0
	if err != nil {
		logger.Error("DevBlog stopped with an error", zap.Error(err))
		code = 1
	}
	_ = logger.Sync() // flush buffer
	return code
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sinks, closeSinks, err := openSinks(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSinks()

	activityWorker := workers.NewActivityWorker(
		sinks,
		cfg.Activity.QueueSize,
		cfg.Activity.BatchSize,
		cfg.Activity.FlushInterval,
		logger.Named("activity"),
	)
	// The worker outlives the signal context so requests drained by Shutdown still get recorded.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	workerDone := make(chan struct{})
	go func() {
		activityWorker.Run(workerCtx)
		close(workerDone)
	}()

	postRepo := memory.NewPostRepositoryMemory()
	postSvc := postapp.NewPostService(postRepo, activityWorker, logger.Named("posts"))
	postSvc.SeedSamplePosts(ctx)

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := httpapi.SetupRoutes(postSvc, cfg.Server.Version, logger.Named("http"))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("DevBlog is running", zap.String("url", "http://"+cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			stopWorker()
			<-workerDone
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during HTTP shutdown", zap.Error(err))
	}
	stopWorker()
	<-workerDone
	return nil
}

// openSinks always includes the log sink and adds MySQL and Redis when configured.
func openSinks(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]activityPort.Sink, func(), error) {
	sinks := []activityPort.Sink{workers.NewLogSink(logger.Named("activity"))}
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Activity.DSN != "" {
		db, err := config.OpenDB(cfg.Activity.DSN)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := config.CloseDB(db); err != nil {
				logger.Error("Error closing database connection", zap.Error(err))
			}
		})
		sinks = append(sinks, dbadapter.NewActivityRepositoryDatabase(db))
		logger.Info("Activity audit table enabled")
	}

	if cfg.Redis.Addr != "" {
		client, err := config.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing Redis connection", zap.Error(err))
			}
		})
		sinks = append(sinks, redisadapter.NewActivityFeedRedis(client, cfg.Redis.FeedSize))
		logger.Info("Recent activity feed enabled", zap.String("key", redisadapter.FeedKey))
	}

	return sinks, closeAll, nil
}
