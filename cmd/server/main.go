package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acaradashboard/config"
	_ "acaradashboard/docs"
	"acaradashboard/internal/adapters/auth"
	"acaradashboard/internal/adapters/email"
	"acaradashboard/internal/adapters/storage"
	delivery "acaradashboard/internal/delivery/http"
	"acaradashboard/internal/delivery/http/controllers"
	"acaradashboard/internal/services"
	"acaradashboard/internal/validation"
)

// @title Acara Dashboard API
// @version 1.0
// @description Create and list events (acara) for the dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from the identity provider, e.g. "Bearer {token}"
func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger(os.Stderr, "", "").Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)

	// run owns every deferred close, so exiting here never skips one.
	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Adapters without connections are built first so a bad setting fails
	// before the store or redis is dialed.
	blobs, err := storage.NewBlobStorage(storage.Config{
		Provider:      cfg.Storage.Provider,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		URLTTL:        cfg.Storage.URLTTL,
		S3: storage.S3Config{
			Region:          cfg.Storage.AWSRegion,
			AccessKeyID:     cfg.Storage.AWSAccessKeyID,
			SecretAccessKey: cfg.Storage.AWSSecretAccessKey,
			Bucket:          cfg.Storage.S3Bucket,
			Endpoint:        cfg.Storage.S3Endpoint,
			UsePathStyle:    cfg.Storage.S3UsePathStyle,
		},
		OSS: storage.OSSConfig{
			Endpoint:        cfg.Storage.OSSEndpoint,
			AccessKeyID:     cfg.Storage.OSSAccessKeyID,
			SecretAccessKey: cfg.Storage.OSSAccessKeySecret,
			SecurityToken:   cfg.Storage.OSSSecurityToken,
			Bucket:          cfg.Storage.OSSBucket,
			PublicRead:      cfg.Storage.OSSPublicRead,
		},
	})
	if err != nil {
		return fmt.Errorf("configure storage: %w", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.SESRegion,
			AccessKeyID:        cfg.Storage.AWSAccessKeyID,
			SecretAccessKey:    cfg.Storage.AWSSecretAccessKey,
			Endpoint:           cfg.Mail.SESEndpoint,
			InsecureSkipVerify: cfg.Mail.InsecureSkipVerify,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("configure mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	verifier, err := auth.NewJWTVerifier(auth.VerifierConfig{
		Secret:       cfg.Auth.JWTSecret,
		PublicKeyPEM: cfg.Auth.JWTPublicKey,
		Issuer:       cfg.Auth.JWTIssuer,
	})
	if err != nil {
		return fmt.Errorf("configure token verifier: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer closeStore()
	logger.Info("store ready", "driver", cfg.StoreDriver)

	guard, closeGuard, err := openGuard(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer closeGuard()

	acaraService := services.NewAcaraService(
		store,
		validation.NewAcaraSchema(),
		services.NewImageUploader(blobs, time.Now),
		guard,
		emailService,
		logger,
		cfg.PublicURL,
		cfg.RequestTimeout,
	)

	router := delivery.NewRouter(delivery.RouterConfig{
		Logger:          logger,
		Verifier:        verifier,
		AcaraController: controllers.NewAcaraController(logger, acaraService),
		CORSOrigins:     cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
	}
	logger.Info("server stopped")
	return nil
}
