package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"

	"github.com/zabeliqbal/langkawi-data-hub/api"
	"github.com/zabeliqbal/langkawi-data-hub/collector"
	"github.com/zabeliqbal/langkawi-data-hub/config"
	"github.com/zabeliqbal/langkawi-data-hub/db"
	"github.com/zabeliqbal/langkawi-data-hub/services/flightapi"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			configPath = "config.yaml"
		}
	}
	if err := config.Load(configPath); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := db.InitDB(config.AppConfig.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	fetcher := flightapi.NewClient(config.AppConfig.FlightAPI.URL, config.AppConfig.FlightAPI.Timeout)
	c := collector.NewCollector(fetcher, collector.DBStore{})

	router := api.NewRouter(c)
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)
	handler := handlers.LoggingHandler(os.Stdout, cors(router))

	// Background refresh of the arrivals board, when configured. Operator
	// triggers through the admin endpoint still work either way.
	if config.AppConfig.Sync.Interval > 0 && config.AppConfig.FlightAPI.URL != "" {
		go func() {
			ticker := time.NewTicker(config.AppConfig.Sync.Interval)
			defer ticker.Stop()

			if _, err := c.Sync(time.Now()); err != nil {
				log.Printf("Error syncing flight data: %v", err)
			}
			for range ticker.C {
				if _, err := c.Sync(time.Now()); err != nil {
					log.Printf("Error syncing flight data: %v", err)
				}
			}
		}()
		log.Printf("Flight sync loop started (interval: %v)", config.AppConfig.Sync.Interval)
	}

	addr := ":" + config.AppConfig.Server.Port
	log.Printf("Starting Langkawi data hub API on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}
}
