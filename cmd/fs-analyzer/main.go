package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"FlowScope/internal/config"
	"FlowScope/internal/geo"
	"FlowScope/internal/ingest"
	"FlowScope/internal/pipeline"
	"FlowScope/internal/render"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file.")
	topN := flag.Int("top", 0, "Number of top flows to visualize (0 uses the configured default).")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: fs-analyzer [flags] <path_to_flows_csv>")
		flag.Usage()
		os.Exit(1)
	}
	csvPath := flag.Arg(0)

	// 1. Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	n := cfg.Viz.TopN
	if *topN > 0 {
		n = *topN
	}

	// 2. Read the raw flow table
	records, err := ingest.LoadCSV(csvPath)
	if err != nil {
		log.Fatalf("Failed to load flows from '%s': %v", csvPath, err)
	}
	log.Printf("Loaded %d flow records from '%s'", len(records), csvPath)

	// 3. Run the pipeline with a fresh resolver for this run
	resolver := geo.NewResolver(cfg.Geo.DatabasePath)
	defer resolver.Close()

	result, err := pipeline.Run(records, resolver, n)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}
	log.Printf("Aggregated %d records into %d flows (%d nodes, %d map markers)",
		result.Stats.TotalFlows, len(result.Flows), len(result.Graph.Nodes), len(result.Points))
	if result.GeoDegraded {
		log.Println("Geo database unavailable: the map artifact will be empty.")
	}

	// 4. Write the artifacts
	writer := render.NewWriter(cfg.Viz.OutputDir)
	title := fmt.Sprintf("Top %d Network Flows - Traffic Analysis", n)
	runDir, err := writer.Write(result, title)
	if err != nil {
		log.Fatalf("Failed to write artifacts: %v", err)
	}
	log.Printf("Artifacts written to %s", runDir)
}
