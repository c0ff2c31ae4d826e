package app

import (
	"context"
	"log"

	"github.com/JuliusM5/lidija-sub000/internal/config"
	"github.com/JuliusM5/lidija-sub000/internal/repository"
	"github.com/JuliusM5/lidija-sub000/internal/service"
	"github.com/JuliusM5/lidija-sub000/internal/store"
)

// App wires the storage, repositories and services together and runs the
// startup tasks: legacy-ID migration, admin seeding and optional demo data.
func App(cfg *config.Config) (*repository.Repository, *service.Service) {
	s, err := store.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("could not open data directory: %v", err)
	}

	if err := store.MigrateLegacy(s); err != nil {
		log.Fatalf("data migration failed: %v", err)
	}

	uploads := store.NewUploads(cfg.UploadsDir, cfg.MaxUploadSize)
	repo := repository.NewRepository(s, uploads)
	services := service.NewService(repo, cfg, uploads)

	ctx := context.Background()
	users := repository.NewUserRepository(s)
	if err := users.SeedDefaultAdmin(ctx, cfg.AdminUser, cfg.AdminPassword); err != nil {
		log.Fatalf("could not seed admin user: %v", err)
	}

	if cfg.DemoMode {
		if err := service.SeedDemoData(ctx, repo.Recipe); err != nil {
			log.Fatalf("could not seed demo data: %v", err)
		}
	}

	return repo, services
}
