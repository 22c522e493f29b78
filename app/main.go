package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/feedshape/feed-shape/app/api"
	"github.com/feedshape/feed-shape/app/cfg"
	"github.com/feedshape/feed-shape/app/config"
	"github.com/feedshape/feed-shape/app/database"
	"github.com/feedshape/feed-shape/app/feed"
	"github.com/feedshape/feed-shape/app/tasks"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	log.Printf("Starting FeedShape server (version %s)...", appCfg.Version)

	// Database connection
	log.Printf("Opening database at %s...", appCfg.DBPath)
	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Printf("Database ready (schema version %d, dirty: %v)", version, dirty)

	// Load feed subscriptions
	log.Printf("Loading subscriptions from %s...", appCfg.FeedsDir)
	configCache := config.NewCache(appCfg.FeedsDir)
	if err := configCache.Run(); err != nil {
		log.Fatal("Failed to load subscriptions:", err)
	}
	log.Printf("Loaded %d subscriptions", configCache.GetConfigCount())

	// Initialize repositories and core components
	feedRepo := database.NewFeedRepository(db)
	episodeRepo := database.NewEpisodeRepository(db)

	var parserOpts []feed.Option
	if appCfg.LenientGUID {
		parserOpts = append(parserOpts, feed.WithLenientGUID())
	}
	parser := feed.NewParser(parserOpts...)

	httpClient := &http.Client{}

	// Initialize and start scheduler
	log.Printf("Starting background scheduler with %d workers...", appCfg.WorkerCount)
	scheduler := tasks.NewScheduler(configCache, feedRepo, episodeRepo, httpClient, parser)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize HTTP server
	log.Println("Initializing HTTP server...")
	handler := api.NewHandler(configCache, feedRepo, episodeRepo, parser, scheduler)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("API endpoints available:")
		log.Printf("  Feed:          http://localhost:%s/feeds/<name>", appCfg.Port)
		log.Printf("  Parse:         http://localhost:%s/parse (POST)", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)
		log.Printf("  Statistics:    http://localhost:%s/stats", appCfg.Port)

		if appCfg.APIAccessKey != "" {
			log.Printf("  List feeds:    http://localhost:%s/api/feeds (requires API key)", appCfg.Port)
			log.Printf("  Feed details:  http://localhost:%s/api/feeds/<name>/details (requires API key)", appCfg.Port)
			log.Printf("  Reparse:       http://localhost:%s/api/feeds/<name>/reparse (POST, requires API key)", appCfg.Port)
		} else {
			log.Printf("  API endpoints: DISABLED (API_ACCESS_KEY not set)")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("FeedShape server started successfully!")
	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	// Scheduler is stopped via defer
	log.Println("Background scheduler stopped")

	log.Println("FeedShape server shutdown complete")
}
