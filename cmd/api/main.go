package main

import (
	"fmt"
	"os"
	"time"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/logger"
	"finboard/internal/server"
	"finboard/internal/services"
	"finboard/internal/store"
	"finboard/internal/validator"
)

//go:generate swag init -d ../.. -g cmd/api/main.go -o ../../internal/docs

// @title           Finboard API
// @version         1.0
// @description     Finboard is a personal finance tracker: transactions, investment portfolios, budgets and savings goals kept in an in-memory store.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	seed, err := loadSeed(appConfig)
	if err != nil {
		return err
	}

	st, err := store.New(seed)
	if err != nil {
		return fmt.Errorf("failed to build store: %w", err)
	}

	// Audit log database
	dbManager, err := database.NewManager(database.NewConfig(appConfig.AuditDSN))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close audit database", "error", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	auditService := services.NewAuditService(dbManager.DB())
	st.Subscribe(auditService.Record)

	validator.Register()

	router := server.NewRouter(server.Services{
		Transactions: services.NewTransactionService(st),
		Portfolios:   services.NewPortfolioService(st),
		Budgets:      services.NewBudgetService(st),
		Goals:        services.NewGoalService(st, time.Now),
		Dashboard:    services.NewDashboardService(st, appConfig.Currency),
		Audit:        auditService,
	}, appConfig.CORSOrigin)

	log.Infof("Starting Finboard server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// loadSeed picks the initial store contents: SEED_FILE when set, otherwise
// the built-in sample data or nothing, per SEED.
func loadSeed(cfg *config.Config) (store.Seed, error) {
	log := logger.Get()

	if cfg.SeedFile != "" {
		f, err := os.Open(cfg.SeedFile)
		if err != nil {
			return store.Seed{}, fmt.Errorf("failed to open seed file: %w", err)
		}
		defer f.Close()

		seed, err := store.LoadSeed(f)
		if err != nil {
			return store.Seed{}, fmt.Errorf("failed to load seed file %s: %w", cfg.SeedFile, err)
		}
		log.Infow("loaded seed file", "path", cfg.SeedFile,
			"transactions", len(seed.Transactions), "portfolios", len(seed.Portfolios))
		return seed, nil
	}

	if cfg.SeedMode == config.SeedEmpty {
		log.Info("starting with an empty store")
		return store.Seed{}, nil
	}
	log.Info("starting with sample data")
	return store.SampleSeed(), nil
}
