package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-shop-api/internal/adapters/auth/jwtauth"
	pg "pet-shop-api/internal/adapters/storage/postgres"
	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/platform/config"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/router"
)

// @title Pet Shop API
// @version 1.0
// @description Tienda de mascotas: perfiles, historia clínica, vacunas, peluquería, turnos y catálogo.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	if zl, ok := appLog.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	if err := run(cfg, appLog); err != nil {
		appLog.Error("server stopped with error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, appLog logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer opened.Close()
		db = opened

		if cfg.RunMigrations {
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			appLog.Info("migrations applied", nil)
		}
	} else {
		appLog.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	tokens, err := jwtauth.NewManager(jwtauth.Config{
		Secret: cfg.JWTSecret,
		TTL:    cfg.JWTTTL,
		Issuer: cfg.AppName,
	})
	if err != nil {
		return err
	}

	if cfg.AuthDevMode {
		appLog.Warn("auth dev mode enabled: X-Debug-User-ID headers are trusted", nil)
	}

	app := router.Build(router.Options{
		AuthVerifier: tokens,
		DevAuth:      cfg.AuthDevMode,
		Tokens:       tokens,
		DB:           db,
		Logger:       appLog,
		RateLimit: middleware.RateLimitConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		},
	})

	if cfg.BootstrapAdmin() {
		if _, err := app.Users.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting server", map[string]any{
			"addr":      srv.Addr,
			"postgres":  db != nil,
			"log_level": logger.ParseLevel(cfg.LogLevel).String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLog.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
