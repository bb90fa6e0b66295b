package pipeline

import (
	"fmt"

	"FlowScope/internal/core/model"
	"FlowScope/internal/engine/aggregate"
	"FlowScope/internal/engine/geomap"
	"FlowScope/internal/engine/graph"
	"FlowScope/internal/engine/summary"
)

// Result is the complete output surface of one pipeline run. All fields
// are freshly built value objects; nothing outlives the run.
type Result struct {
	Flows       []model.AggregatedFlow `json:"flows"`
	Graph       model.FlowGraph        `json:"graph"`
	Points      []model.GeoPoint       `json:"points"`
	Stats       model.SummaryStats     `json:"stats"`
	GeoDegraded bool                   `json:"geoDegraded"`
}

// Run executes the full transform over a raw flow table: validate,
// aggregate to the ranked topN subset, then build the graph, the geo
// point set and the summary from it. A malformed record aborts the whole
// call; no partial results are returned. Callers running concurrent
// searches must pass independently constructed resolvers.
func Run(records []model.FlowRecord, resolver model.Resolver, topN int) (*Result, error) {
	if err := validate(records); err != nil {
		return nil, err
	}

	flows := aggregate.Aggregate(records, topN)

	return &Result{
		Flows:       flows,
		Graph:       graph.Build(flows),
		Points:      geomap.Build(flows, resolver),
		Stats:       summary.Summarize(records, len(flows)),
		GeoDegraded: resolver.Degraded(),
	}, nil
}

// validate rejects records that violate the input contract. Zero-byte
// flows are valid; missing endpoints are not.
func validate(records []model.FlowRecord) error {
	for i, rec := range records {
		if rec.SourceIP == "" {
			return fmt.Errorf("record %d: missing source IP", i)
		}
		if rec.DestinationIP == "" {
			return fmt.Errorf("record %d: missing destination IP", i)
		}
	}
	return nil
}
