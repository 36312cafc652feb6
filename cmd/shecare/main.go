package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/shecare/internal/api"
	"github.com/terraincognita07/shecare/internal/cli"
	"github.com/terraincognita07/shecare/internal/db"
	"github.com/terraincognita07/shecare/internal/logger"
	"github.com/terraincognita07/shecare/internal/services"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "shecare",
		Short:        "SheCare health tracking backend",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand(), newResetPasswordCommand())
	return root
}

func newServeCommand() *cobra.Command {
	cfg := defaultServerConfig()
	var tzName string
	var cookieSecure bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Flags override the matching environment variables:
  --port        PORT
  --db          DB_PATH
  --tz          TZ
  --log-mode    LOG_MODE (dev, prod)
  --classifier  CLASSIFIER_PATH
  --cookie-secure COOKIE_SECURE

SECRET_KEY is read from the environment only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secretKey, err := resolveSecretKey()
			if err != nil {
				return err
			}
			cfg.SecretKey = secretKey

			port, err := resolvePort(cfg.Port)
			if err != nil {
				return err
			}
			cfg.Port = port

			if cmd.Flags().Changed("cookie-secure") {
				cfg.CookieSecure = cookieSecure
			} else if cfg.CookieSecure, err = resolveCookieSecure(os.Getenv("COOKIE_SECURE")); err != nil {
				return err
			}

			log, err := logger.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("logger init failed: %w", err)
			}
			defer log.Sync()

			cfg.Location = loadLocation(tzName, log)
			return runServer(cmd.Context(), cfg, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	flags.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	flags.StringVar(&tzName, "tz", getEnv("TZ", "UTC"), "time zone used to resolve today")
	flags.StringVar(&cfg.LogMode, "log-mode", cfg.LogMode, "log mode (dev or prod)")
	flags.StringVar(&cfg.ClassifierPath, "classifier", cfg.ClassifierPath, "YAML file with risk classifier weights")
	flags.BoolVar(&cookieSecure, "cookie-secure", false, "mark the auth cookie as Secure")
	return cmd
}

func newResetPasswordCommand() *cobra.Command {
	var email string
	dbPath := getEnv("DB_PATH", defaultServerConfig().DBPath)

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Replace a user's password with a temporary one",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(getEnv("LOG_MODE", "dev"))
			if err != nil {
				return fmt.Errorf("logger init failed: %w", err)
			}
			defer log.Sync()
			return cli.RunResetPasswordCommand(dbPath, email, cmd.OutOrStdout(), log)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the account to reset")
	cmd.Flags().StringVar(&dbPath, "db", dbPath, "SQLite database path")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func runServer(ctx context.Context, cfg serverConfig, log *logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	app, err := newServerApp(database, cfg, log)
	if err != nil {
		return err
	}

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	}()

	log.Info("SheCare listening", "port", cfg.Port, "db", cfg.DBPath, "tz", cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newServerApp(database *gorm.DB, cfg serverConfig, log *logger.Logger) (*fiber.App, error) {
	riskModels, err := loadRiskModels(cfg.ClassifierPath)
	if err != nil {
		return nil, fmt.Errorf("risk models init failed: %w", err)
	}
	nutrition, err := services.DefaultNutritionCatalog()
	if err != nil {
		return nil, fmt.Errorf("nutrition catalog init failed: %w", err)
	}

	handler, err := api.NewHandler(database, api.HandlerConfig{
		SecretKey:    cfg.SecretKey,
		Location:     cfg.Location,
		CookieSecure: cfg.CookieSecure,
		Logger:       log,
		RiskModels:   riskModels,
		Nutrition:    nutrition,
	})
	if err != nil {
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "SheCare",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	return app, nil
}
