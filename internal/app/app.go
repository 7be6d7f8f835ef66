package app

import (
	"volunteerhub_backend/internal/config"
	"volunteerhub_backend/internal/database"
	"volunteerhub_backend/internal/logger"
	"volunteerhub_backend/internal/seed"
)

// Run - точка входа пакетной утилиты. mode: "full" - полный набор
// данных, "core" - облегченный подграф, "wipe" - только очистка.
func Run(mode string) {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.ConnectGorm(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	if mode == "wipe" {
		if err := database.ClearAll(db); err != nil {
			logger.Fatal("Failed to clear data", "error", err)
		}
		logger.Info("All data cleared")
		return
	}

	seeder, err := seed.NewSeeder(db, cfg.Seed)
	if err != nil {
		logger.Fatal("Failed to initialize seeder", "error", err)
	}

	var report seed.Report
	if mode == "core" {
		report, err = seeder.GenerateCore()
	} else {
		report, err = seeder.GenerateAll()
	}
	if err != nil {
		logger.Fatal("Generation failed", "error", err)
	}

	for entity, count := range report {
		logger.Info("Generated", "entity", entity, "count", count)
	}
	logger.Info("Dataset generation completed")
}
