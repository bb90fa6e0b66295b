package geomap

import (
	"testing"

	"FlowScope/internal/core/model"
)

// fakeResolver resolves only the IPs it knows about and counts lookups.
type fakeResolver struct {
	known   map[string]model.GeoPoint
	lookups map[string]int
}

func newFakeResolver(known map[string]model.GeoPoint) *fakeResolver {
	return &fakeResolver{known: known, lookups: make(map[string]int)}
}

func (f *fakeResolver) Resolve(ip string) (model.GeoPoint, bool) {
	f.lookups[ip]++
	point, ok := f.known[ip]
	return point, ok
}

func (f *fakeResolver) Degraded() bool { return false }

func TestBuild_DedupAndOrder(t *testing.T) {
	resolver := newFakeResolver(map[string]model.GeoPoint{
		"10.0.0.1": {IP: "10.0.0.1", Country: "Germany", Latitude: 52.5, Longitude: 13.4},
		"10.0.0.2": {IP: "10.0.0.2", Country: "France", Latitude: 48.8, Longitude: 2.3},
	})

	// 10.0.0.1 appears both as a source and as a destination.
	flows := []model.AggregatedFlow{
		{SourceIP: "10.0.0.1", DestinationIP: "10.0.0.2", TotalBytes: 10, Protocol: "TCP"},
		{SourceIP: "10.0.0.2", DestinationIP: "10.0.0.1", TotalBytes: 20, Protocol: "TCP"},
	}

	points := Build(flows, resolver)
	if len(points) != 2 {
		t.Fatalf("Expected exactly one marker per IP, got %d", len(points))
	}
	if points[0].IP != "10.0.0.1" || points[1].IP != "10.0.0.2" {
		t.Errorf("Expected first-appearance order, got %+v", points)
	}
	if resolver.lookups["10.0.0.1"] != 1 {
		t.Errorf("Each distinct IP must be resolved once, got %d lookups", resolver.lookups["10.0.0.1"])
	}
}

func TestBuild_UnresolvedExcluded(t *testing.T) {
	resolver := newFakeResolver(map[string]model.GeoPoint{
		"8.8.8.8": {IP: "8.8.8.8", Country: "United States", Latitude: 37.4, Longitude: -122.0},
	})

	flows := []model.AggregatedFlow{
		{SourceIP: "192.168.1.5", DestinationIP: "8.8.8.8", TotalBytes: 10, Protocol: "UDP"},
	}

	points := Build(flows, resolver)
	if len(points) != 1 || points[0].IP != "8.8.8.8" {
		t.Errorf("Unresolved endpoints must be dropped without error, got %+v", points)
	}
}

func TestBuild_EmptyInputs(t *testing.T) {
	resolver := newFakeResolver(nil)

	if points := Build(nil, resolver); len(points) != 0 {
		t.Errorf("Expected empty point set for empty input, got %+v", points)
	}

	// Nothing resolvable is a valid, empty result.
	flows := []model.AggregatedFlow{
		{SourceIP: "10.0.0.1", DestinationIP: "10.0.0.2", TotalBytes: 1, Protocol: "TCP"},
	}
	if points := Build(flows, resolver); len(points) != 0 {
		t.Errorf("Expected empty point set when nothing resolves, got %+v", points)
	}
}
