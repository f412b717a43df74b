package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

// Pinger checks the store connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// UIKeyChecker reports required UI keys absent from the published cache
type UIKeyChecker interface {
	MissingUIKeys() []string
}

// HealthHandler reports store reachability and UI text completeness
type HealthHandler struct {
	store Pinger
	cache UIKeyChecker
}

// NewHealthHandler creates new HealthHandler instance
func NewHealthHandler(store Pinger, cache UIKeyChecker) *HealthHandler {
	return &HealthHandler{
		store: store,
		cache: cache,
	}
}

type healthResponse struct {
	Status        string   `json:"status"`
	MissingUIKeys []string `json:"missing_ui_keys,omitempty"`
}

// Check returns 200 when the store answers the ping. Missing UI keys are
// reported but do not fail the check: the static fallbacks cover them.
func (hh *HealthHandler) Check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := hh.store.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(healthResponse{Status: "store unreachable"})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:        "ok",
			MissingUIKeys: hh.cache.MissingUIKeys(),
		})
	}
}
