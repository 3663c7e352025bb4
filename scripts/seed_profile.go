package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/khoahotran/personal-portfolio/adapters/persistence"
	"github.com/khoahotran/personal-portfolio/internal/config"
	"github.com/khoahotran/personal-portfolio/internal/domain/profile"
	"github.com/khoahotran/personal-portfolio/pkg/auth"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

// Creates the first profile row and the admin row. Run once against an
// empty database: go run scripts/seed_profile.go
func main() {
	fmt.Println("seeding portfolio profile...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)

	if err := persistence.RunMigrations(cfg.DB.MigrationsPath, cfg.DB.DSN, appLogger); err != nil {
		log.Fatalf("cannot migrate: %v", err)
	}

	pool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	profileRepo := persistence.NewPostgresProfileRepo(pool, appLogger)

	if existing, err := profileRepo.GetLatest(ctx); err == nil {
		fmt.Printf("profile #%d '%s' already exists, nothing to do\n", existing.ID, existing.Name)
	} else {
		p := &profile.Profile{
			Name:     envOr("PROFILE_NAME", "Ito"),
			Title:    envOr("PROFILE_TITLE", "Software Engineer"),
			Location: envOr("PROFILE_LOCATION", ""),
			Email:    envOr("PROFILE_EMAIL", ""),
			Phone:    envOr("PROFILE_PHONE", ""),
		}
		if err := profileRepo.Create(ctx, p); err != nil {
			log.Fatalf("cannot create profile: %v", err)
		}
		fmt.Printf("created profile #%d '%s'\n", p.ID, p.Name)
	}

	hash, err := auth.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}
	if err := persistence.NewPostgresAdminRepo(pool, appLogger).EnsureExists(ctx, cfg.Auth.AdminUsername, hash); err != nil {
		log.Fatalf("cannot add admin: %v", err)
	}

	fmt.Printf("admin '%s' is present\n", cfg.Auth.AdminUsername)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
