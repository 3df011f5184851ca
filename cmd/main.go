/*
Package main is the entry point for the BloxClone platform service.

It is responsible for loading configuration, initializing the global logging
system, opening the embedded storage, building the state store and the events
hub, setting up the HTTP server, and gracefully handling operating system
interrupt signals (SIGINT, SIGTERM) to ensure a smooth shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bloxclone/internal/app/assistant"
	"bloxclone/internal/app/db"
	"bloxclone/internal/app/events"
	"bloxclone/internal/app/store"
	"bloxclone/internal/configs"
	"bloxclone/internal/handler"
	"bloxclone/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Str("storage_path", cfg.StoragePath).
		Bool("assistant_enabled", cfg.AssistantAPIKey != "").
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the embedded storage and apply migrations.
	sqlDB, err := db.Open(cfg.StoragePath)
	if err != nil {
		logx.Fatal(err, "Failed to open storage")
	}
	defer sqlDB.Close()

	ownerHash, err := bcrypt.GenerateFromPassword([]byte(cfg.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		logx.Fatal(err, "Failed to hash owner password")
	}

	// Build the state store over the storage, seeding defaults on first run.
	appStore, err := store.New(ctx, db.NewKV(sqlDB), store.Options{
		OwnerUsername:     cfg.OwnerUsername,
		OwnerPasswordHash: ownerHash,
		// Headless runs have nobody to ask; purchases confirm themselves.
		Confirmer: store.ConfirmerFunc(func(string) bool { return true }),
	})
	if err != nil {
		logx.Fatal(err, "Failed to initialize state store")
	}

	hub := events.NewHub()

	assistantClient := assistant.New(assistant.Options{
		APIKey:  cfg.AssistantAPIKey,
		Model:   cfg.AssistantModel,
		BaseURL: cfg.AssistantBaseURL,
		Rate:    cfg.AssistantRate,
		Burst:   cfg.AssistantBurst,
	})

	// Setup HTTP server and routes
	router := handler.Router(&handler.AppDeps{
		Store:     appStore,
		Hub:       hub,
		Assistant: assistantClient,
		Config:    cfg,
	})

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("BloxClone platform starting on http://%s", cfg.Address()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	hub.Shutdown()

	logx.Info("Server gracefully stopped.")
}
