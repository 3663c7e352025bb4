package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/cache"
	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/adapters/media_storage"
	"github.com/khoahotran/personal-portfolio/adapters/persistence"
	profileUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/profile"
	"github.com/khoahotran/personal-portfolio/internal/config"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
	"github.com/khoahotran/personal-portfolio/pkg/tracing"
)

func main() {
	fmt.Println("Starting Portfolio Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}
	appLogger := logger.New(logger.Options{Env: cfg.App.Env, Level: cfg.Log.Level, File: cfg.Log.File})
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("worker needs kafka.brokers", errors.New("no Kafka brokers configured"))
	}

	shutdownTracing, err := tracing.Setup(cfg, appLogger, "portfolio-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer shutdownTracing(context.Background())

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Cloudinary
	blobStore, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize blob store", err)
	}

	// Worker Use Case
	processPhotoUC := profileUC.NewProcessPhotoUseCase(
		persistence.NewPostgresProfileRepo(dbPool, appLogger),
		blobStore,
		cache.NewRedisProfileCache(redisClient, cfg.Redis.ProfileTTL, appLogger),
		appLogger,
	)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicProfileEvents), zap.String("group_id", cfg.Kafka.GroupID))

	newPhotoConsumer(consumer, processPhotoUC, appLogger).run(ctx)
}
