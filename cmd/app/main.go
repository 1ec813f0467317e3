package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"printflow/cmd"
	api "printflow/internal/adapters/in/http"
	"printflow/internal/adapters/out/minio/filestorage"
	"printflow/internal/adapters/out/optimizer"
	"printflow/internal/adapters/out/postgres"
	"printflow/internal/jobs"
	"printflow/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, syncLogs, err := logging.New(logging.Config{Level: configs.LogLevel, Format: configs.LogFormat})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = syncLogs() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, logger); err != nil {
		logger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	defer func() { _ = rdb.Close() }()

	files, err := filestorage.New(filestorage.Config{
		Endpoint:  configs.MinioEndpoint,
		AccessKey: configs.MinioAccessKey,
		SecretKey: configs.MinioSecretKey,
		Bucket:    configs.MinioBucket,
		UseSSL:    configs.MinioUseSSL,
	})
	if err != nil {
		return fmt.Errorf("create file storage: %w", err)
	}
	if err = files.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("prepare bucket: %w", err)
	}

	packer := optimizer.NewClient(configs.OptimizerURL, &http.Client{Timeout: configs.OptimizerTimeout})

	app := cmd.NewCompositionRoot(configs, gormDB, rdb, files, packer, logger)

	jobManager := jobs.NewJobManager(app.CreateListOrphanedOrdersQueryHandler(), configs.AuditSchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := api.NewRouter(api.NewServer(app.Handlers()), api.RouterConfig{
		JWTSecret: configs.JWTSecret,
		RateLimit: configs.RateLimit,
		BodyLimit: "25M",
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	return startWebServer(ctx, e, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", port)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("HTTP server shutting down")
	return e.Shutdown(shutdownCtx)
}
