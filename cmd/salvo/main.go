// Package main is the entry point for Salvo.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/salvo/internal/game"
	"github.com/samdwyer/salvo/internal/gamedata"
	"github.com/samdwyer/salvo/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	seed := flag.Int64("seed", envSeed(), "random seed for fleet placement and opponent moves (0 = random)")
	flag.Parse()

	ctx := context.Background()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	if path := os.Getenv("SALVO_FLEET_FILE"); path != "" {
		fleet, err := gamedata.LoadFleetFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			log.Fatalf("Failed to load fleet: %v", err)
		}
		cfg.Fleet = fleet
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	// The screen owns the terminal until Run returns
	restore := redirectLog()
	err = g.Run(ctx)
	restore()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// envSeed reads SALVO_SEED, returning 0 when unset or invalid.
func envSeed() int64 {
	raw := os.Getenv("SALVO_SEED")
	if raw == "" {
		return 0
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Note: ignoring invalid SALVO_SEED %q: %v", raw, err)
		return 0
	}
	return seed
}

// redirectLog sends log output to SALVO_LOG_FILE, or discards it, while the
// terminal screen is active. The returned function restores stderr.
func redirectLog() (restore func()) {
	var out io.Writer = io.Discard
	var file *os.File
	if path := os.Getenv("SALVO_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Printf("Note: cannot open log file %s: %v", path, err)
		} else {
			out, file = f, f
		}
	}
	log.SetOutput(out)
	return func() {
		log.SetOutput(os.Stderr)
		if file != nil {
			file.Close()
		}
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// It returns false when no Honeycomb API key is configured.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_SALVO_API_KEY")
	if apiKey == "" {
		return false
	}

	dataset := os.Getenv("HONEYCOMB_SALVO_DATASET")
	if dataset == "" {
		dataset = "salvo"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
