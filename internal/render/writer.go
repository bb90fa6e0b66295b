package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"FlowScope/internal/pipeline"
)

const (
	sankeyFileName  = "sankey.json"
	geoMapFileName  = "geomap.geojson"
	summaryFileName = "summary.json"
)

// Writer persists the artifacts of one pipeline run to disk.
type Writer struct {
	rootPath string
}

// NewWriter creates a writer that places run artifacts under rootPath.
func NewWriter(rootPath string) *Writer {
	return &Writer{rootPath: rootPath}
}

// Write serializes a pipeline result into a timestamped run directory and
// returns its path. Three artifacts are produced: the Sankey figure, the
// GeoJSON marker collection and the summary statistics.
func (w *Writer) Write(result *pipeline.Result, title string) (string, error) {
	runDir := filepath.Join(w.rootPath, time.Now().UTC().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}

	figure := SankeyFromGraph(result.Graph, title)
	if err := writeJSON(filepath.Join(runDir, sankeyFileName), figure); err != nil {
		return "", err
	}

	fc := FeatureCollection(result.Flows, result.Points)
	if err := writeJSON(filepath.Join(runDir, geoMapFileName), fc); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, summaryFileName), result.Stats); err != nil {
		return "", err
	}

	return runDir, nil
}

func writeJSON(path string, payload interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create artifact file '%s': %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode artifact '%s': %w", path, err)
	}
	return nil
}
