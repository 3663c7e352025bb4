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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/cache"
	"github.com/khoahotran/personal-portfolio/adapters/event"
	httpAdapter "github.com/khoahotran/personal-portfolio/adapters/http"
	"github.com/khoahotran/personal-portfolio/adapters/media_storage"
	"github.com/khoahotran/personal-portfolio/adapters/persistence"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	authUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/auth"
	certificateUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/certificate"
	educationUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/education"
	profileUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/project"
	skillUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/skill"
	socialMediaUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/socialmedia"
	toolUC "github.com/khoahotran/personal-portfolio/internal/application/usecase/tool"
	"github.com/khoahotran/personal-portfolio/internal/config"
	"github.com/khoahotran/personal-portfolio/pkg/auth"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
	"github.com/khoahotran/personal-portfolio/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.New(logger.Options{Env: cfg.App.Env, Level: cfg.Log.Level, File: cfg.Log.File})
	defer appLogger.Sync()

	shutdownTracing, err := tracing.Setup(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize dependencies
	if cfg.DB.AutoMigrate {
		if err := persistence.RunMigrations(cfg.DB.MigrationsPath, cfg.DB.DSN, appLogger); err != nil {
			appLogger.Fatal("cannot migrate database", err)
		}
	}

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

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	repos := profileUC.Repositories{
		Profile:     persistence.NewPostgresProfileRepo(dbPool, appLogger),
		Skill:       persistence.NewPostgresSkillRepo(dbPool, appLogger),
		Education:   persistence.NewPostgresEducationRepo(dbPool, appLogger),
		Certificate: persistence.NewPostgresCertificateRepo(dbPool, appLogger),
		Tool:        persistence.NewPostgresToolRepo(dbPool, appLogger),
		SocialMedia: persistence.NewPostgresSocialMediaRepo(dbPool, appLogger),
		Project:     persistence.NewPostgresProjectRepo(dbPool, appLogger),
	}
	adminRepo := persistence.NewPostgresAdminRepo(dbPool, appLogger)

	// Services
	tokenSvc := auth.NewTokenService(cfg.Auth.AdminUsername, cfg.Auth.TokenTTL)
	blobStore, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize blob store", err)
	}
	profileCache := cache.NewRedisProfileCache(redisClient, cfg.Redis.ProfileTTL, appLogger)
	var events service.EventPublisher
	if kafkaClient != nil {
		events = kafkaClient
	}
	notifier := service.NewChangeNotifier(profileCache, events, appLogger)

	// Use Cases
	loginUseCase, err := authUC.NewLoginUseCase(adminRepo, tokenSvc, authUC.Credentials{
		Username: cfg.Auth.AdminUsername,
		Password: cfg.Auth.AdminPassword,
	}, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init login", err)
	}
	verifyTokenUseCase := authUC.NewVerifyTokenUseCase(tokenSvc)
	profileUseCase := profileUC.NewProfileUseCase(repos, profileCache, notifier, appLogger)
	uploadPhotoUseCase := profileUC.NewUploadPhotoUseCase(repos.Profile, blobStore, notifier, profileUC.UploadPhotoConfig{
		Folder:   cfg.Cloudinary.Folder,
		MaxBytes: cfg.Upload.MaxPhotoBytes,
	}, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(repos.Skill, notifier, appLogger)
	educationUseCase := educationUC.NewEducationUseCase(repos.Education, notifier, appLogger)
	certificateUseCase := certificateUC.NewCertificateUseCase(repos.Certificate, notifier, appLogger)
	toolUseCase := toolUC.NewToolUseCase(repos.Tool, notifier, appLogger)
	socialMediaUseCase := socialMediaUC.NewSocialMediaUseCase(repos.SocialMedia, notifier, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(repos.Project, notifier)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(repos.Project)
	listFeaturedProjectsUseCase := projectUC.NewListFeaturedProjectsUseCase(repos.Project)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(repos.Project, notifier)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(repos.Project, notifier)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth:        httpAdapter.NewAuthHandler(loginUseCase, verifyTokenUseCase),
		Profile:     httpAdapter.NewProfileHandler(profileUseCase, uploadPhotoUseCase),
		Skill:       httpAdapter.NewSkillHandler(skillUseCase),
		Education:   httpAdapter.NewEducationHandler(educationUseCase),
		Certificate: httpAdapter.NewCertificateHandler(certificateUseCase),
		Tool:        httpAdapter.NewToolHandler(toolUseCase),
		SocialMedia: httpAdapter.NewSocialMediaHandler(socialMediaUseCase),
		Project: httpAdapter.NewProjectHandler(
			createProjectUseCase,
			listProjectsUseCase,
			listFeaturedProjectsUseCase,
			updateProjectUseCase,
			deleteProjectUseCase,
		),
	}

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(handlers, httpAdapter.RouterOptions{
		GuardWrites: cfg.Auth.GuardWrites,
		TokenSvc:    tokenSvc,
	}, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.Bool("guard_writes", cfg.Auth.GuardWrites))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Cannot run server", err)
		}
	case sig := <-sigCh:
		appLogger.Info("Shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			appLogger.Error("Server shutdown failed", err)
		}
	}
}
