package aggregate

import (
	"sort"

	"FlowScope/internal/core/model"
)

// pair is the ordered (source, destination) grouping key. (A,B) and (B,A)
// are distinct flows.
type pair struct {
	src string
	dst string
}

// Aggregate groups records by ordered (source, destination) pair, sums
// their byte counts and returns the groups ranked descending by total
// bytes. Protocol is the one of the first record seen for a pair; empty
// protocols are normalized to "unknown". Ties keep first-appearance order,
// so identical inputs always produce identical output. topN caps the
// result; topN <= 0 returns all groups.
func Aggregate(records []model.FlowRecord, topN int) []model.AggregatedFlow {
	if len(records) == 0 {
		return []model.AggregatedFlow{}
	}

	groups := make(map[pair]int, len(records))
	flows := make([]model.AggregatedFlow, 0, len(records))

	for _, rec := range records {
		key := pair{src: rec.SourceIP, dst: rec.DestinationIP}
		if idx, ok := groups[key]; ok {
			flows[idx].TotalBytes += rec.TotalBytes
			continue
		}
		protocol := rec.Protocol
		if protocol == "" {
			protocol = "unknown"
		}
		groups[key] = len(flows)
		flows = append(flows, model.AggregatedFlow{
			SourceIP:      rec.SourceIP,
			DestinationIP: rec.DestinationIP,
			TotalBytes:    rec.TotalBytes,
			Protocol:      protocol,
		})
	}

	// Stable sort keeps insertion order for equal byte counts.
	sort.SliceStable(flows, func(i, j int) bool {
		return flows[i].TotalBytes > flows[j].TotalBytes
	})

	if topN > 0 && len(flows) > topN {
		flows = flows[:topN]
	}
	return flows
}
