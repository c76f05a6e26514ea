package main

import (
	"context"
	"errors"
	"finhealth/pkg/api/analysis"
	"finhealth/pkg/core/benchmark"
	"finhealth/pkg/core/store"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Optional benchmark table overrides
	if err := benchmark.LoadFromFile("config/benchmarks.yaml"); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("[WARNING] Failed to load benchmark overrides: %v\n", err)
		}
		fmt.Println("  Using built-in benchmark tables")
	} else {
		fmt.Println("[CONFIG] Loaded benchmark overrides from config/benchmarks.yaml")
	}

	// Optional persistence
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database unavailable, assessments will not be persisted: %v\n", err)
		} else {
			defer store.Close()
			fmt.Println("[STORE] Connected to Postgres")
		}
	} else {
		fmt.Println("[STORE] DATABASE_URL not set, persistence disabled")
	}

	// Assessment endpoints
	http.HandleFunc("/api/analyze", analysis.HandleAnalyze)
	http.HandleFunc("/api/upload", analysis.HandleUpload)
	http.HandleFunc("/api/forecast", analysis.HandleForecast)
	http.HandleFunc("/api/benchmark", analysis.HandleBenchmark)
	http.HandleFunc("/health", analysis.HandleHealth)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - POST /api/analyze    (JSON statement + profile)")
	fmt.Println("  - POST /api/upload     (multipart CSV/HTML statement)")
	fmt.Println("  - POST /api/forecast")
	fmt.Println("  - POST /api/benchmark")
	fmt.Println("  - GET  /health")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
