// This is the main entry point of the Nutritrack Go application.
// It parses the command line, loads configuration, opens the store, builds the
// application and runs the HTTP server until it receives a shutdown signal.
//
// Analogy to Nest.js: this file is similar to `main.ts`, where the application is
// created and bootstrapped to listen for requests.
// @title Nutritrack API
// @version 1.0
// @description Nutrition tracking API: registration, login, food catalog and daily food tracking.
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// `godotenv` loads environment variables from a .env file, useful for development.
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	// `urfave/cli` gives us subcommands (`serve`, `migrate up|down`) and --help for free.
	"github.com/urfave/cli/v2"

	"github.com/user/nutritrack-go/app"
	"github.com/user/nutritrack-go/background"
	"github.com/user/nutritrack-go/config"
	"github.com/user/nutritrack-go/db"
	"github.com/user/nutritrack-go/logging"
)

// rateLimiterIdle is how long a client IP may stay quiet before its limiter is dropped.
const rateLimiterIdle = 15 * time.Minute

func main() {
	// Load .env file. In production, variables are usually set directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("Error loading .env file")
	}

	cliApp := &cli.App{
		Name:  "nutritrack",
		Usage: "nutrition tracking REST backend",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply or roll back the PostgreSQL schema",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "apply all pending migrations",
						Action: migrateAction(db.Up),
					},
					{
						Name:   "down",
						Usage:  "roll back the most recent migration",
						Action: migrateAction(db.Down),
					},
				},
			},
		},
		// Running the binary without a command starts the server.
		DefaultCommand: "serve",
	}

	if err := cliApp.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("nutritrack failed")
	}
}

func migrateAction(direction db.Direction) cli.ActionFunc {
	return func(c *cli.Context) error {
		storeCfg, err := config.LoadStoreConfig()
		if err != nil {
			return err
		}
		if storeCfg.Driver != config.DriverPostgres {
			return fmt.Errorf("migrations only apply to the postgres driver, STORE_DRIVER is %q", storeCfg.Driver)
		}
		logger := logging.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
		return db.RunMigrations(storeCfg.Postgres, direction, logger)
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	if cfg.Store.Driver == config.DriverPostgres && cfg.Store.Postgres.AutoMigrate {
		if err := db.RunMigrations(cfg.Store.Postgres, db.Up, logger); err != nil {
			return err
		}
	}

	openCtx, cancelOpen := context.WithTimeout(c.Context, 30*time.Second)
	store, err := app.OpenStore(openCtx, cfg.Store)
	cancelOpen()
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer store.Close()
	logger.WithField("driver", store.Driver).Info("Store opened")
	if store.Driver == config.DriverMemory {
		logger.Warn("Using the in-memory store: all data is lost on restart")
	}

	application := app.New(cfg, store, logger)

	// `stopChan` is closed on shutdown; every background goroutine listens on it.
	stopChan := make(chan struct{})
	application.Limiter.StartCleanup(time.Minute, rateLimiterIdle, stopChan)
	var janitorDone <-chan struct{}
	if application.Sessions != nil {
		janitorDone = background.StartSessionJanitor(application.Sessions, cfg.Session.CleanupInterval, logger, stopChan)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      application.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 65 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for SIGINT (Ctrl+C) / SIGTERM, or for the server to fail on its own.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("Server shutting down...")
	case err := <-serverErr:
		close(stopChan)
		return fmt.Errorf("server failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Signal background services to stop and wait for an in-flight sweep.
	close(stopChan)
	if application.Sessions != nil {
		select {
		case <-janitorDone:
		case <-ctx.Done():
			logger.Warn("Session janitor did not stop in time")
		}
	}
	logger.Info("Server stopped gracefully")
	return nil
}
