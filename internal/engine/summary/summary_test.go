package summary

import (
	"reflect"
	"testing"

	"FlowScope/internal/core/model"
)

func TestSummarize(t *testing.T) {
	records := []model.FlowRecord{
		{SourceIP: "a", DestinationIP: "x", TotalBytes: 1, Protocol: "UDP"},
		{SourceIP: "a", DestinationIP: "y", TotalBytes: 2, Protocol: "TCP"},
		{SourceIP: "b", DestinationIP: "x", TotalBytes: 3, Protocol: "TCP"},
		{SourceIP: "c", DestinationIP: "x", TotalBytes: 4, Protocol: ""},
	}

	stats := Summarize(records, 2)

	if stats.TotalFlows != 4 {
		t.Errorf("TotalFlows = %d, want 4", stats.TotalFlows)
	}
	if stats.DistinctSourceCount != 3 {
		t.Errorf("DistinctSourceCount = %d, want 3", stats.DistinctSourceCount)
	}
	if stats.DistinctDestCount != 2 {
		t.Errorf("DistinctDestCount = %d, want 2", stats.DistinctDestCount)
	}
	if stats.FlowsVisualized != 2 {
		t.Errorf("FlowsVisualized must be passed through verbatim, got %d", stats.FlowsVisualized)
	}

	if len(stats.TopProtocols) != 3 {
		t.Fatalf("Expected 3 ranked protocols, got %+v", stats.TopProtocols)
	}
	if stats.TopProtocols[0].Protocol != "TCP" || stats.TopProtocols[0].Count != 2 {
		t.Errorf("Expected TCP x2 at rank 0, got %+v", stats.TopProtocols[0])
	}
	// UDP and unknown both count 1; UDP appeared first.
	if stats.TopProtocols[1].Protocol != "UDP" || stats.TopProtocols[2].Protocol != "unknown" {
		t.Errorf("Tie-break must keep first-appearance order, got %+v", stats.TopProtocols)
	}
}

func TestSummarize_EndpointRankings(t *testing.T) {
	records := []model.FlowRecord{
		{SourceIP: "a", DestinationIP: "x", TotalBytes: 1, Protocol: "UDP"},
		{SourceIP: "a", DestinationIP: "y", TotalBytes: 2, Protocol: "TCP"},
		{SourceIP: "b", DestinationIP: "x", TotalBytes: 3, Protocol: "TCP"},
		{SourceIP: "c", DestinationIP: "x", TotalBytes: 4, Protocol: "TCP"},
	}

	stats := Summarize(records, 3)

	// Sources: c sent 4, a and b both sent 3; a appeared first.
	wantSources := []model.EndpointBytes{
		{IP: "c", TotalBytes: 4},
		{IP: "a", TotalBytes: 3},
		{IP: "b", TotalBytes: 3},
	}
	if !reflect.DeepEqual(stats.TopSources, wantSources) {
		t.Errorf("TopSources = %+v, want %+v", stats.TopSources, wantSources)
	}

	wantDests := []model.EndpointBytes{
		{IP: "x", TotalBytes: 8},
		{IP: "y", TotalBytes: 2},
	}
	if !reflect.DeepEqual(stats.TopDestinations, wantDests) {
		t.Errorf("TopDestinations = %+v, want %+v", stats.TopDestinations, wantDests)
	}
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil, 0)
	if stats.TotalFlows != 0 || stats.DistinctSourceCount != 0 || stats.DistinctDestCount != 0 {
		t.Errorf("Expected zeroed stats for empty input, got %+v", stats)
	}
	if len(stats.TopProtocols) != 0 {
		t.Errorf("Expected no protocols for empty input, got %+v", stats.TopProtocols)
	}
}
