package summary

import (
	"sort"

	"FlowScope/internal/core/model"
)

// Summarize derives the headline statistics from the raw flow table.
// flowsVisualized is the number of aggregated flows that made it into the
// graph and is passed through verbatim; it is distinct from TotalFlows,
// the raw record count.
func Summarize(records []model.FlowRecord, flowsVisualized int) model.SummaryStats {
	protoIndex := make(map[string]int)
	protocols := []model.ProtocolCount{}
	srcIndex := make(map[string]int)
	sources := []model.EndpointBytes{}
	dstIndex := make(map[string]int)
	dests := []model.EndpointBytes{}

	for _, rec := range records {
		if idx, ok := srcIndex[rec.SourceIP]; ok {
			sources[idx].TotalBytes += rec.TotalBytes
		} else {
			srcIndex[rec.SourceIP] = len(sources)
			sources = append(sources, model.EndpointBytes{IP: rec.SourceIP, TotalBytes: rec.TotalBytes})
		}
		if idx, ok := dstIndex[rec.DestinationIP]; ok {
			dests[idx].TotalBytes += rec.TotalBytes
		} else {
			dstIndex[rec.DestinationIP] = len(dests)
			dests = append(dests, model.EndpointBytes{IP: rec.DestinationIP, TotalBytes: rec.TotalBytes})
		}

		proto := rec.Protocol
		if proto == "" {
			proto = "unknown"
		}
		if idx, ok := protoIndex[proto]; ok {
			protocols[idx].Count++
		} else {
			protoIndex[proto] = len(protocols)
			protocols = append(protocols, model.ProtocolCount{Protocol: proto, Count: 1})
		}
	}

	// Rank by occurrence or volume; stable sorts keep first-appearance
	// order on ties.
	sort.SliceStable(protocols, func(i, j int) bool {
		return protocols[i].Count > protocols[j].Count
	})
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].TotalBytes > sources[j].TotalBytes
	})
	sort.SliceStable(dests, func(i, j int) bool {
		return dests[i].TotalBytes > dests[j].TotalBytes
	})

	return model.SummaryStats{
		TotalFlows:          len(records),
		DistinctSourceCount: len(sources),
		DistinctDestCount:   len(dests),
		FlowsVisualized:     flowsVisualized,
		TopProtocols:        protocols,
		TopSources:          sources,
		TopDestinations:     dests,
	}
}
