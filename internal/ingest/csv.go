package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"FlowScope/internal/core/model"
)

// Expected column order for headerless files and the canonical header.
var csvColumns = []string{"sourceIp", "destinationIp", "totalBytes", "protocol"}

// LoadCSV reads a flow table from a CSV file. The file may start with a
// header row naming the columns in any order; without one, columns are
// taken as sourceIp, destinationIp, totalBytes, protocol. Validation is
// fail-fast: a malformed row aborts the load with an error naming the row.
// A missing protocol value defaults to "unknown"; byte counts are never
// fabricated.
func LoadCSV(filePath string) ([]model.FlowRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open flow file: %w", err)
	}
	defer file.Close()

	return readAll(csv.NewReader(file))
}

func readAll(reader *csv.Reader) ([]model.FlowRecord, error) {
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records := []model.FlowRecord{}
	columns := map[string]int{}
	line := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line+1, err)
		}
		line++

		if line == 1 {
			if isHeader(row) {
				for i, name := range row {
					columns[strings.TrimSpace(name)] = i
				}
				continue
			}
			for i, name := range csvColumns {
				columns[name] = i
			}
		}

		rec, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string, columns map[string]int) (model.FlowRecord, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	src := field("sourceIp")
	if src == "" {
		return model.FlowRecord{}, fmt.Errorf("missing sourceIp")
	}
	dst := field("destinationIp")
	if dst == "" {
		return model.FlowRecord{}, fmt.Errorf("missing destinationIp")
	}

	rawBytes := field("totalBytes")
	if rawBytes == "" {
		return model.FlowRecord{}, fmt.Errorf("missing totalBytes")
	}
	// ParseUint rejects negatives and non-numeric values in one pass.
	totalBytes, err := strconv.ParseUint(rawBytes, 10, 64)
	if err != nil {
		return model.FlowRecord{}, fmt.Errorf("invalid totalBytes %q", rawBytes)
	}

	protocol := field("protocol")
	if protocol == "" {
		protocol = "unknown"
	}

	return model.FlowRecord{
		SourceIP:      src,
		DestinationIP: dst,
		TotalBytes:    totalBytes,
		Protocol:      protocol,
	}, nil
}

// isHeader reports whether the first row names at least the two IP columns.
func isHeader(row []string) bool {
	found := 0
	for _, cell := range row {
		switch strings.TrimSpace(cell) {
		case "sourceIp", "destinationIp":
			found++
		}
	}
	return found == 2
}
