package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"skillboard/adapters/postgres"
	"skillboard/app"
	"skillboard/internal"
	"skillboard/internal/config"
	"skillboard/internal/errors"
	"skillboard/internal/migration"
	"skillboard/ui"
)

func main() {
	// Load .env file if present (development convenience)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer db.Close()

	templates := app.NewTemplateService(postgres.NewTemplateRepository(db), nil, logger)
	server := ui.NewServer(templates, appConfig)

	if appConfig.Debug.Enabled {
		go func() {
			addr := ":" + appConfig.Debug.Port
			logger.Info("debug server listening on %s", addr)
			if err := http.ListenAndServe(addr, ui.NewDebugRouter()); err != nil {
				logger.Error("debug server stopped: %v", err)
			}
		}()
	}

	logger.Info("skillboard API listening on :%s", appConfig.Server.Port)
	if err := server.Run(appConfig.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// initDatabase connects to PostgreSQL and runs schema migrations
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migration.NewRunner().Run(ctx, db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}
	return db, nil
}
