package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/boreas/internal/api/rest"
	"github.com/fortuna/boreas/internal/store"
)

const (
	serviceName    = "boreas-api"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s", serviceName, serviceVersion)

	dsn := os.Getenv("BOREAS_DSN")
	if dsn == "" {
		var err error
		dsn, err = store.BuildDSN(
			getEnv("DB_ENGINE", "postgres"),
			getEnv("DB_HOST", ""),
			getEnv("DB_NAME", ""),
			getEnv("DB_USER", ""),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_SCHEMA", ""),
		)
		if err != nil {
			log.Fatalf("Invalid database configuration: %v", err)
		}
	}

	port := getEnv("REST_PORT", "8080")

	db, err := store.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer db.Close()

	log.Println("✓ Connected to database")

	server := rest.NewServer(port, db)
	go func() {
		log.Printf("✓ REST API listening on :%s", port)
		if err := server.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Printf("Shutting down %s gracefully...", serviceName)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
