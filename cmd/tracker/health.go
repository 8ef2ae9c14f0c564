package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/billyhines/kalshi-liquidity/internal/store"
	"github.com/billyhines/kalshi-liquidity/internal/tracker"
)

// createHealthHandler creates the HTTP handler for health checks.
func createHealthHandler(st store.Store, tr *tracker.Tracker, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := struct {
			Status     string         `json:"status"`
			Components map[string]any `json:"components"`
		}{
			Status:     "healthy",
			Components: make(map[string]any),
		}

		// Check the snapshot store
		if err := st.Ping(ctx); err != nil {
			health.Status = "unhealthy"
			health.Components["store"] = map[string]string{
				"status": "disconnected",
				"error":  err.Error(),
			}
		} else {
			health.Components["store"] = "connected"
		}

		// Check the tracked game set
		tracked := tr.TrackedCount()
		health.Components["tracker"] = map[string]any{
			"games": tracked,
		}
		if tracked == 0 && health.Status == "healthy" {
			health.Status = "degraded"
		}

		w.Header().Set("Content-Type", "application/json")
		if health.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	mux.HandleFunc("/debug/games", func(w http.ResponseWriter, r *http.Request) {
		games := tr.Games()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"count": len(games),
			"games": games,
		})
	})

	return mux
}
