package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	app := &cli.App{
		Name:  "acorn-grove",
		Usage: "reward, market and chat backend for the grove game",
		Commands: []*cli.Command{
			{
				Name:   "server",
				Usage:  "serve the HTTP and websocket API",
				Action: runServer,
			},
			{
				Name:   "migrate",
				Usage:  "bring the postgres schema to the current version and exit",
				Action: runMigrate,
			},
		},
		DefaultCommand: "server",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runServer(c *cli.Context) error {
	cfg, appLogger, err := bootstrap()
	if err != nil {
		return err
	}
	defer appLogger.Flush()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	a, err := newApplication(ctx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to build application", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	defer a.close()

	if err := a.startMaintenance(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           a.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"storage": cfg.Storage.Driver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := tp.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		a.stopMaintenance(shutdownCtx)
		// Websocket connections are hijacked and not tracked by Shutdown.
		a.hub.Close()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

func runMigrate(c *cli.Context) error {
	cfg, appLogger, err := bootstrap()
	if err != nil {
		return err
	}
	defer appLogger.Flush()

	if cfg.Storage.Driver != "postgres" {
		return fmt.Errorf("migrate needs the postgres storage driver, got %q", cfg.Storage.Driver)
	}

	tp := timeProvider.NewRealTimeProvider()
	dbManager := database.NewManager(databaseConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(c.Context); err != nil {
		return err
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(c.Context); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	version, err := dbManager.MigrationManager().GetCurrentVersion(c.Context)
	if err != nil {
		return err
	}
	appLogger.Info("Schema is up to date", map[string]any{
		"version": version,
		"latest":  dbManager.MigrationManager().LatestVersion(),
	})
	return nil
}

// bootstrap loads configuration and builds the process logger
func bootstrap() (*config.Config, coreport.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	return cfg, appLogger, nil
}

func databaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		SlowThreshold:   cfg.Database.SlowThreshold,
		LogLevel:        cfg.Database.LogLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
		IsolationLevel:  cfg.Database.IsolationLevel,
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Storage.Driver == "postgres" {
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or GROVE_DB_HOST)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or GROVE_DB_USERNAME)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or GROVE_DB_NAME)")
		}
		if cfg.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Storage.Driver == "postgres" {
			switch strings.ToLower(cfg.Database.SSLMode) {
			case "require", "verify-ca", "verify-full":
			default:
				warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production")
			}
		}
		if cfg.Storage.Driver == "memory" {
			warnings = append(warnings, "storage.driver memory loses every balance on restart")
		}
		if cfg.Auth.TokenCodec == "raw" {
			warnings = append(warnings, "auth.tokenCodec raw uses the user id as the bearer token")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
