package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FlowScope/internal/config"
	"FlowScope/internal/geo"
	"FlowScope/internal/pipeline"
	"FlowScope/internal/storage"

	"github.com/gorilla/mux"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the flow store
	store, err := storage.NewClickHouseStore(cfg.Storage.ClickHouse)
	if err != nil {
		log.Fatalf("Failed to create flow store: %v", err)
	}
	defer store.Close()

	// Initialize router
	r := mux.NewRouter()

	apiHandler := &APIHandler{store: store, cfg: cfg}
	r.HandleFunc("/api/v1/visualize", apiHandler.visualizeHandler).Methods("POST")
	r.HandleFunc("/api/v1/healthz", apiHandler.healthHandler).Methods("GET")

	// Start HTTP server
	server := &http.Server{
		Addr:    cfg.API.ListenAddr,
		Handler: r,
	}

	go func() {
		log.Printf("API server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", server.Addr, err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("API server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("API server exited.")
}

// APIHandler holds the dependencies for API handlers.
type APIHandler struct {
	store *storage.ClickHouseStore
	cfg   *config.Config
}

// visualizeRequest selects the time window and the size of the diagram.
type visualizeRequest struct {
	Since string `json:"since"` // duration, e.g. "1h", "24h"
	Limit int    `json:"limit"` // max raw records to fetch
	TopN  int    `json:"topN"`  // aggregated flows to visualize
}

// visualizeHandler fetches a flow window from the store, runs the
// aggregation pipeline and returns the graph, map points and summary.
func (h *APIHandler) visualizeHandler(w http.ResponseWriter, r *http.Request) {
	var req visualizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("failed to decode request: %v", err), http.StatusBadRequest)
		return
	}

	window := 24 * time.Hour
	if req.Since != "" {
		parsed, err := time.ParseDuration(req.Since)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid 'since' duration: %v", err), http.StatusBadRequest)
			return
		}
		window = parsed
	}
	limit := req.Limit
	if limit <= 0 {
		limit = h.cfg.API.DefaultLimit
	}
	topN := req.TopN
	if topN <= 0 {
		topN = h.cfg.Viz.TopN
	}

	records, err := h.store.FetchFlows(r.Context(), time.Now().Add(-window), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to query flows: %v", err), http.StatusInternalServerError)
		return
	}

	// Each request gets its own resolver so caches never leak across searches.
	resolver := geo.NewResolver(h.cfg.Geo.DatabasePath)
	defer resolver.Close()

	result, err := pipeline.Run(records, resolver, topN)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to build visualization: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (h *APIHandler) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
