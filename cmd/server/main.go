package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightlog-service/internal/infrastructure/config"
	"flightlog-service/internal/infrastructure/persistence"
	"flightlog-service/internal/interface/dataset"
	"flightlog-service/internal/interface/handler"
	"flightlog-service/internal/interface/provider"
	"flightlog-service/internal/interface/repository"
	"flightlog-service/internal/usecase"
	"flightlog-service/pkg/logger"
	"flightlog-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flightlog Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection for the logbook
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up MongoDB connection for the lookup audit log
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Set up repositories
	flightRepo := repository.NewGormFlightRepository(gormDB)
	lookupLogRepo := repository.NewMongoLookupLogRepository(db)

	// Shared outbound HTTP client. Reference fetches and provider lookups
	// have no retry; the timeout bounds a hung upstream.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// Load the airport reference dataset once per process
	airportClient := dataset.NewAirportClient(cfg.AirportsDatasetURL, httpClient, log)
	airports, err := airportClient.FetchIndex(ctx)
	if err != nil {
		log.Warn("Airport dataset unavailable, distances degrade to manual entry", "error", err)
	}

	// Set up the resolver chain and lookup pipeline
	m := metrics.NewMetrics("flightlog")
	airlineClient := dataset.NewAirlineClient(cfg.AirlinesDatasetURL, httpClient, log)
	resolver := usecase.NewChainResolver(
		usecase.NewOverrideResolver(usecase.DefaultOverrides()),
		usecase.NewDatasetResolver(airlineClient, log),
	)
	normalizer := usecase.NewIdentNormalizer(resolver, log)
	aeroClient := provider.NewAeroAPIClient(cfg.AeroAPIURL, cfg.AeroAPIKey, httpClient, log)
	lookupUsecase := usecase.NewLookupUsecase(normalizer, aeroClient, lookupLogRepo, m, log)

	homeMarket := usecase.NewHomeMarket(airports, cfg.HomeCountry, cfg.HomeICAOPrefix)
	reconciler := usecase.NewTripReconciler(lookupUsecase, airports, homeMarket, flightRepo, m, log)
	statsUsecase := usecase.NewStatsUsecase(flightRepo, homeMarket, log)

	// Set up handlers
	lookupHandler := handler.NewLookupHandler(lookupUsecase, log)
	tripHandler := handler.NewTripHandler(reconciler, log)
	flightHandler := handler.NewFlightHandler(flightRepo, statsUsecase, log)

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.HandleFunc("/api/flight_lookup", lookupHandler.FlightLookup)
	mux.HandleFunc("/api/lookups", lookupHandler.RecentLookups)
	mux.HandleFunc("/api/trips", tripHandler.SaveTrip)
	mux.HandleFunc("/api/flights", flightHandler.ListFlights)
	mux.HandleFunc("/api/stats", flightHandler.GetStats)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Flightlog Service stopped")
}
