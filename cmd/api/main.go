package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/typetalk-sentiment/api/internal/comprehend"
	"github.com/typetalk-sentiment/api/internal/config"
	"github.com/typetalk-sentiment/api/internal/logging"
	"github.com/typetalk-sentiment/api/internal/server"
	"github.com/typetalk-sentiment/api/internal/typetalk"
	"github.com/typetalk-sentiment/api/internal/usecase"
)

func main() {
	// Load environment variables from .env file outside production
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			logrus.Info("No .env file found, using environment variables")
		}
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Setup(os.Stdout, cfg.Level(), cfg.LogFormat)
	logrus.WithField("app_env", cfg.AppEnv).Info("Starting Typetalk Sentiment API")

	typetalkClient := newTypetalkClient(cfg)

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize sentiment analyzer: %v", err)
	}

	service := usecase.NewService(typetalkClient, analyzer)
	srv := server.NewServer(cfg.Port, service)

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

func newTypetalkClient(cfg *config.Config) typetalk.Client {
	if cfg.UseMockTypetalk {
		logrus.Warn("Using Typetalk stub client")
		return typetalk.NewStubClient()
	}
	return typetalk.NewAPIClient(cfg.TypetalkBaseURL, cfg.TypetalkTimeout)
}

func newAnalyzer(cfg *config.Config) (comprehend.Analyzer, error) {
	if cfg.UseMockComprehend {
		logrus.Warn("Using AWS Comprehend stub analyzer")
		return comprehend.StubAnalyzer{}, nil
	}
	return comprehend.NewAPIClient(cfg.AWSRegion, cfg.ComprehendEndpoint, cfg.LanguageCode)
}
