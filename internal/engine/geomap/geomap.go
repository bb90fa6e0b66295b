package geomap

import (
	"FlowScope/internal/core/model"
)

// Build resolves every distinct endpoint of the ranked flow set and returns
// the map markers in first-appearance order (source before destination per
// flow). An IP appearing as both source and destination yields exactly one
// marker. Unresolved endpoints are excluded, never errors; the result may
// legitimately be empty.
func Build(flows []model.AggregatedFlow, resolver model.Resolver) []model.GeoPoint {
	points := []model.GeoPoint{}
	seen := make(map[string]struct{})

	visit := func(ip string) {
		if _, ok := seen[ip]; ok {
			return
		}
		seen[ip] = struct{}{}
		if point, ok := resolver.Resolve(ip); ok {
			points = append(points, point)
		}
	}

	for _, flow := range flows {
		visit(flow.SourceIP)
		visit(flow.DestinationIP)
	}
	return points
}
