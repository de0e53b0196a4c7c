package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/susrithamallela/foodvision/internal/api"
	"github.com/susrithamallela/foodvision/internal/catalog"
	"github.com/susrithamallela/foodvision/internal/logging"
	"github.com/susrithamallela/foodvision/internal/service"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cutoff := envFloat("FUZZY_CUTOFF", service.DefaultFuzzyCutoff)
	defaultCalories := envFloat("DEFAULT_CALORIES", service.DefaultFallbackCalories)

	var (
		table *catalog.Table
		err   error
	)
	if path := os.Getenv("FOOD_DB"); path != "" {
		table, err = catalog.LoadFile(path)
	} else {
		table, err = catalog.LoadDefault()
	}
	if err != nil {
		slog.Error("failed to load food database", "error", err)
		os.Exit(1)
	}

	svc := service.New(table, cutoff, defaultCalories)
	handler := api.NewRouter(svc)

	addr := fmt.Sprintf(":%s", port)
	slog.Info("foodvision service listening", "addr", addr, "foods", table.Len())
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Error("invalid "+key, "value", raw, "error", err)
		os.Exit(1)
	}
	return v
}
