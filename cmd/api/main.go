package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agenda-universal/especialidades-api/internal/api"
	"github.com/agenda-universal/especialidades-api/internal/core/service"
	"github.com/agenda-universal/especialidades-api/internal/infrastructure/config"
	mongodb "github.com/agenda-universal/especialidades-api/internal/infrastructure/db/mongo"
	"github.com/agenda-universal/especialidades-api/pkg/logger"
)

// @title        Especialidades API
// @version      1.0
// @description  CRUD REST service for medical specialties behind JWT authentication.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	specialtyRepo := mongodb.NewSpecialtyRepository(db)
	if err := specialtyRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure specialty indexes")
	}

	authRepo := mongodb.NewAuthRepository(db)
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure user indexes")
	}

	if cfg.Seed.Password == "" {
		log.Warn().Msg("SEED_PASSWORD not set, skipping user seeding")
	} else {
		authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
		if err := authService.EnsureUser(ctx, cfg.Seed.Username, cfg.Seed.Password); err != nil {
			log.Fatal().Err(err).Str("username", cfg.Seed.Username).Msg("failed to seed user")
		}
	}

	e := api.NewRouter(db, cfg.JWTSecret, cfg.TokenTTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
