package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ruimv/tribunal-backend/internal/cache"
	"github.com/ruimv/tribunal-backend/internal/config"
	"github.com/ruimv/tribunal-backend/internal/database"
	"github.com/ruimv/tribunal-backend/internal/server"
	"github.com/ruimv/tribunal-backend/internal/token"
	"github.com/ruimv/tribunal-backend/pkg/logger"
)

func main() {
	var migrate bool
	flag.BoolVar(&migrate, "migrate", false, "Run database migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}

	if migrate {
		if err := database.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations", "error", err)
		}
		log.Info("Database migrations completed successfully")
		return
	}

	cacheService := cache.New(cfg.CacheSize, cfg.CacheTTL)
	tokenMaker := token.NewMaker(cfg.JWTSecret, cfg.TokenTTL)

	srv := server.New(cfg, db, tokenMaker, cacheService, log)

	log.Info("Starting tribunal backend",
		"host", cfg.Host,
		"port", cfg.Port,
	)

	if err := srv.Run(); err != nil {
		log.Fatal("Server failed to start", "error", err)
	}
}
