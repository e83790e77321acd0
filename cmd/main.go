package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trimspire/config"
	"trimspire/middlewares"
	"trimspire/routes"
	"trimspire/services"
	"trimspire/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	command := flag.String("command", "start", "Command to run (start, seed, migrate)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := utils.NewLogger(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*command, cfg, log); err != nil {
		log.Fatal("exiting", zap.String("command", *command), zap.Error(err))
	}
}

func run(command string, cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	db, err := config.OpenDB(cfg, log)
	if err != nil {
		return err
	}
	log.Info("connected to database", zap.String("driver", cfg.DBDriver))

	var uploader utils.ImageUploader
	if cfg.S3Bucket != "" {
		u, err := utils.NewS3Uploader(ctx, cfg.S3Region, cfg.S3Bucket, cfg.CloudFrontURL)
		if err != nil {
			return err
		}
		uploader = u
	}
	recipes := services.NewRecipeService(db, uploader)

	switch command {
	case "migrate":
		// OpenDB already migrated the schema.
		return nil
	case "seed":
		n, err := recipes.Seed(ctx, services.SeedRecipes)
		if err != nil {
			return err
		}
		log.Info("seeded recipes", zap.Int("created", n))
		return nil
	case "start":
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	var mailer utils.Mailer = utils.LogMailer{Log: log}
	if cfg.MailDriver == "ses" {
		m, err := utils.NewSESMailer(ctx, cfg.AWSRegion, cfg.MailFrom)
		if err != nil {
			return err
		}
		mailer = m
	}

	tokens := utils.NewTokens(cfg.JWTSecret)
	auth := services.NewAuthService(db, tokens, mailer, cfg.AppURL, cfg.APIURL, log)
	quiz := services.NewQuizService(db, auth, log)
	menu := services.NewMenuService(db, nil)

	limiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	stop := make(chan struct{})
	defer close(stop)
	go limiter.Run(stop)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.SetupRouter(routes.Deps{
		Config:   cfg,
		DB:       db,
		Log:      log,
		Auth:     auth,
		Quiz:     quiz,
		Menu:     menu,
		Recipes:  recipes,
		Uploader: uploader,
		Limiter:  limiter,
	})
	if err != nil {
		return err
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	case <-shutdown:
	}

	log.Info("shutdown signal received, shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("server stopped cleanly")
	return nil
}
