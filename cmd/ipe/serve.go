package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ipe/config"
	"ipe/internal/adapters/auth"
	"ipe/internal/adapters/email"
	delivery "ipe/internal/delivery/http"
	"ipe/internal/delivery/http/controllers"
	"ipe/internal/delivery/http/middleware"
	"ipe/internal/repository/postgres"
	"ipe/internal/services"
)

const (
	shutdownTimeout   = 10 * time.Second
	rateLimitInterval = time.Minute
	rateLimitMaxIdle  = 10 * time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)
	if cfg.UsesDefaultSecret() {
		logger.Warn("SECRET_KEY is not set; using the development default")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl, postgres.DefaultPoolConfig(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "err", err)
		}
	}()

	if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
		if err := postgres.MigrateUp(ctx, db); err != nil {
			return err
		}
	}

	handler, limiter, err := buildHandler(cfg, db, logger)
	if err != nil {
		return err
	}
	go limiter.RunCleanup(ctx, rateLimitInterval, rateLimitMaxIdle)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// buildHandler wires repositories, services and controllers into the router.
func buildHandler(cfg *config.Config, db *sql.DB, logger *slog.Logger) (http.Handler, *middleware.RateLimiter, error) {
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init mailer: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	entryRepo := postgres.NewEntryRepository(db)
	reactionRepo := postgres.NewReactionRepository(db)

	gate := services.NewInviteGate(cfg.InviteCode, cfg.RequireInvite)
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), config.AppName, logger)
	userSvc := services.NewUserService(userRepo,
		auth.NewBcryptHasher(0),
		auth.NewJWTIssuer(cfg.SecretKey),
		cfg.TokenExpiry,
		gate,
		emailSvc,
		logger,
		cfg.RequestTimeout,
	)
	entrySvc := services.NewEntryService(entryRepo, userRepo, reactionRepo, gate, cfg.RequestTimeout)
	reactionSvc := services.NewReactionService(reactionRepo, entryRepo, cfg.RequestTimeout)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler := delivery.NewRouter(delivery.RouterDeps{
		Logger:         logger,
		TokenVerifier:  auth.NewJWTVerifier(cfg.SecretKey),
		RateLimiter:    limiter,
		AllowedOrigins: cfg.AllowedOrigins,
		Users:          controllers.NewUserController(logger, userSvc),
		Entries:        controllers.NewEntryController(logger, entrySvc),
		Reactions:      controllers.NewReactionController(logger, reactionSvc),
		About:          controllers.NewAboutController(config.AppName, gate),
		Health:         controllers.NewHealthController(logger, db, 2*time.Second),
	})
	return handler, limiter, nil
}
