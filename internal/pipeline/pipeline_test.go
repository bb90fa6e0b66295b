package pipeline

import (
	"strings"
	"testing"

	"FlowScope/internal/core/model"
)

// stubResolver places every IP it knows and reports a configurable
// degraded state.
type stubResolver struct {
	known    map[string]model.GeoPoint
	degraded bool
}

func (s *stubResolver) Resolve(ip string) (model.GeoPoint, bool) {
	point, ok := s.known[ip]
	return point, ok
}

func (s *stubResolver) Degraded() bool { return s.degraded }

func TestRun_EndToEnd(t *testing.T) {
	// 1. A raw table with a duplicate pair and one private endpoint.
	records := []model.FlowRecord{
		{SourceIP: "8.8.8.8", DestinationIP: "1.1.1.1", TotalBytes: 500, Protocol: "TCP"},
		{SourceIP: "8.8.8.8", DestinationIP: "1.1.1.1", TotalBytes: 250, Protocol: "TCP"},
		{SourceIP: "192.168.1.5", DestinationIP: "8.8.8.8", TotalBytes: 100, Protocol: "UDP"},
	}
	resolver := &stubResolver{known: map[string]model.GeoPoint{
		"8.8.8.8": {IP: "8.8.8.8", Country: "United States", Latitude: 37.4, Longitude: -122.0},
		"1.1.1.1": {IP: "1.1.1.1", Country: "Australia", Latitude: -33.8, Longitude: 151.2},
	}}

	// 2. Run the pipeline.
	result, err := Run(records, resolver, 10)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 3. Aggregation: two distinct pairs, duplicate summed.
	if len(result.Flows) != 2 {
		t.Fatalf("Expected 2 aggregated flows, got %d", len(result.Flows))
	}
	if result.Flows[0].TotalBytes != 750 {
		t.Errorf("Expected summed top flow of 750 bytes, got %d", result.Flows[0].TotalBytes)
	}

	// 4. Graph: three endpoints, two links, all indices valid.
	if len(result.Graph.Nodes) != 3 || len(result.Graph.Links) != 2 {
		t.Errorf("Unexpected graph shape: %d nodes, %d links", len(result.Graph.Nodes), len(result.Graph.Links))
	}

	// 5. Geo: the private endpoint is excluded, the rest deduplicated.
	if len(result.Points) != 2 {
		t.Errorf("Expected 2 geo points, got %+v", result.Points)
	}

	// 6. Summary reflects the raw table, not the aggregation.
	if result.Stats.TotalFlows != 3 || result.Stats.FlowsVisualized != 2 {
		t.Errorf("Unexpected stats: %+v", result.Stats)
	}
	if result.GeoDegraded {
		t.Errorf("Resolver is healthy, degraded flag should be false")
	}
}

func TestRun_EmptyInput(t *testing.T) {
	result, err := Run(nil, &stubResolver{}, 10)
	if err != nil {
		t.Fatalf("Empty input must not be an error: %v", err)
	}
	if len(result.Flows) != 0 || len(result.Graph.Nodes) != 0 || len(result.Points) != 0 {
		t.Errorf("Expected empty result for empty input, got %+v", result)
	}
	if result.Stats.TotalFlows != 0 {
		t.Errorf("Expected zero TotalFlows, got %d", result.Stats.TotalFlows)
	}
}

func TestRun_MalformedRecordAbortsWholeCall(t *testing.T) {
	records := []model.FlowRecord{
		{SourceIP: "8.8.8.8", DestinationIP: "1.1.1.1", TotalBytes: 10, Protocol: "TCP"},
		{SourceIP: "", DestinationIP: "1.1.1.1", TotalBytes: 10, Protocol: "TCP"},
	}

	result, err := Run(records, &stubResolver{}, 10)
	if err == nil {
		t.Fatalf("Expected a contract-violation error")
	}
	if result != nil {
		t.Errorf("No partial results on failure, got %+v", result)
	}
	if !strings.Contains(err.Error(), "record 1") {
		t.Errorf("Error must identify the offending row: %v", err)
	}
}

func TestRun_DegradedResolverReportedOnce(t *testing.T) {
	records := []model.FlowRecord{
		{SourceIP: "8.8.8.8", DestinationIP: "1.1.1.1", TotalBytes: 10, Protocol: "TCP"},
	}

	result, err := Run(records, &stubResolver{degraded: true}, 10)
	if err != nil {
		t.Fatalf("Degraded geo capability must not fail the run: %v", err)
	}
	if !result.GeoDegraded {
		t.Errorf("Degraded state must be surfaced in the result")
	}
	if len(result.Points) != 0 {
		t.Errorf("Degraded resolver yields an empty map, got %+v", result.Points)
	}
	if len(result.Graph.Links) != 1 {
		t.Errorf("Graph building continues regardless of geo state")
	}
}
