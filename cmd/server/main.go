package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/nicholasjackson/env"

	"github.com/opencatalog/shopping-api/internal/domain"
	"github.com/opencatalog/shopping-api/internal/events"
	"github.com/opencatalog/shopping-api/internal/service"
	"github.com/opencatalog/shopping-api/internal/store"
	httpTransport "github.com/opencatalog/shopping-api/internal/transport/http"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":8000", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	databaseURL = env.String("DATABASE_URL", false,
		"", "Connection string for the document store; when empty the API runs without a store")
	databaseName = env.String("DATABASE_NAME", false,
		"shopping", "Name of the database holding the product collection")
)

func main() {
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "shopping-api",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Connect to the document store. A missing or unreachable store is not
	// fatal: the API starts anyway and answers 503 on catalog operations.
	var mongoStore *store.MongoStore
	if *databaseURL == "" {
		logger.Warn("DATABASE_URL not set, catalog operations will be unavailable")
	} else {
		connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		ms, err := store.Connect(connectCtx, *databaseURL, *databaseName, logger.Named("store"))
		connectCancel()
		if err != nil {
			logger.Warn("Unable to connect to document store, catalog operations will be unavailable",
				"error", err)
		} else {
			mongoStore = ms
			logger.Info("Connected to document store", "database", *databaseName)
		}
	}

	// The service interface takes a nil store when none is configured
	var st store.Store
	if mongoStore != nil {
		st = mongoStore
	}

	// Initialize the event bus and log product creations
	bus := events.NewBus()
	creations := bus.Subscribe()
	go func() {
		for event := range creations {
			logger.Info("Product created",
				"id", event.ID, "title", event.Title, "category", event.Category)
		}
	}()

	// Initialize the CatalogService
	catalog := service.NewCatalogService(st, bus, logger.Named("catalog-service"))

	// Initialize the validator
	validator := domain.NewValidation()

	// Initialize HTTP handlers and the router
	ch := httpTransport.NewCatalogHandler(catalog, logger.Named("http-handler"))
	dh := httpTransport.NewDiagnosticsHandler(mongoStore, logger.Named("diagnostics"))
	router := httpTransport.NewRouter(ch, dh, validator, logger)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	server.Shutdown(shutdownCtx)

	bus.Unsubscribe(creations)

	if mongoStore != nil {
		if err := mongoStore.Disconnect(shutdownCtx); err != nil {
			logger.Error("Error disconnecting from document store", "error", err)
		}
	}
}
