package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"FlowScope/internal/config"
	"FlowScope/internal/core/model"
	"FlowScope/internal/probe"
	"FlowScope/internal/storage"
)

const defaultFlushInterval = 5 * time.Second

func main() {
	log.Println("Starting fs-collector...")

	// 1. Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	flushInterval := defaultFlushInterval
	if cfg.Collector.FlushInterval != "" {
		parsed, err := time.ParseDuration(cfg.Collector.FlushInterval)
		if err != nil {
			log.Fatalf("Invalid flush_interval: %v", err)
		}
		flushInterval = parsed
	}
	batchSize := cfg.Collector.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}

	// 2. Connect to the flow store
	store, err := storage.NewClickHouseStore(cfg.Storage.ClickHouse)
	if err != nil {
		log.Fatalf("Failed to create flow store: %v", err)
	}
	defer store.Close()

	// 3. Subscribe to the probe subject and buffer records
	sub, err := probe.NewSubscriber(cfg.Collector.NATSURL, cfg.Collector.Subject)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	var mu sync.Mutex
	var buffer []model.FlowRecord

	flush := func() {
		mu.Lock()
		batch := buffer
		buffer = nil
		mu.Unlock()

		if len(batch) == 0 {
			return
		}
		if err := store.WriteBatch(context.Background(), batch, time.Now().UTC()); err != nil {
			log.Printf("Failed to write batch of %d records: %v", len(batch), err)
		}
	}

	err = sub.Start(func(rec model.FlowRecord) {
		mu.Lock()
		buffer = append(buffer, rec)
		full := len(buffer) >= batchSize
		mu.Unlock()
		if full {
			flush()
		}
	})
	if err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	// 4. Flush the buffer on a ticker
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				flush()
			case <-done:
				return
			}
		}
	}()

	// 5. Wait for a shutdown signal, then flush one last time
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutdown signal received, flushing remaining records...")
	close(done)
	flush()
	log.Println("Shutdown complete.")
}
