package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campus-books-server/internal/config"
	"github.com/campus-books-server/internal/infrastructure/dynamo"
	"github.com/campus-books-server/internal/infrastructure/google"
	jwtinfra "github.com/campus-books-server/internal/infrastructure/jwt"
	s3infra "github.com/campus-books-server/internal/infrastructure/s3"
	"github.com/campus-books-server/internal/infrastructure/smtp"
	"github.com/campus-books-server/internal/infrastructure/sns"
	"github.com/campus-books-server/internal/logging"
	transporthttp "github.com/campus-books-server/internal/transport/http"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	if envErr != nil {
		slog.Info("no .env file found, reading from environment")
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			slog.Warn("sentry disabled", "err", err)
		}
	}

	err := run(cfg)
	if err != nil {
		sentry.CaptureException(err)
	}
	// Flush before os.Exit, which skips deferred calls.
	sentry.Flush(2 * time.Second)
	if err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	jwtProvider, err := newJWTProvider(cfg)
	if err != nil {
		return fmt.Errorf("jwt provider: %w", err)
	}

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient, err := dynamo.NewClient(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("dynamodb client: %w", err)
	}
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	deps := &transporthttp.Deps{
		UserRepo:      dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		CollegeRepo:   dynamo.NewCollegeRepo(dynamoClient, cfg.DynamoTables.Colleges),
		AdmissionRepo: dynamo.NewAdmissionRepo(dynamoClient, cfg.DynamoTables.Admissions),
		GraduateRepo:  dynamo.NewGraduateRepo(dynamoClient, cfg.DynamoTables.Graduates),
		ResearchRepo:  dynamo.NewResearchRepo(dynamoClient, cfg.DynamoTables.Research),
		JWTProvider:   jwtProvider,
		Ready: func(ctx context.Context) error {
			return dynamo.Ready(ctx, dynamoClient, cfg.DynamoTables)
		},
	}

	// Presigned image URLs (optional).
	if cfg.S3BucketName != "" {
		deps.Images = s3infra.NewStore(s3infra.NewClient(cfg), cfg.S3BucketName, cfg.ImageURLTTL)
	}

	// Google ID-token proof on POST /jwt (optional).
	if cfg.GoogleClientID != "" {
		deps.Verifier = google.NewVerifier(cfg.GoogleClientID)
	}

	// Admission confirmations (optional).
	if cfg.NotifyAdmissions {
		deps.Mailer = smtp.NewMailer(cfg)
		if sender, err := sns.NewSender(cfg); err == nil {
			deps.SMSSender = sender
		} else {
			slog.Warn("SNS sender not available", "err", err)
		}
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

// newJWTProvider requires JWT_SECRET in production. Elsewhere a random
// per-process secret is used, so tokens do not survive a restart.
func newJWTProvider(cfg *config.Config) (*jwtinfra.Provider, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		secret = hex.EncodeToString(buf)
		slog.Warn("JWT_SECRET not set, using an ephemeral secret")
	}
	return jwtinfra.NewProvider(secret, cfg.JWTExpiry)
}
