package model

// FlowRecord is a single raw traffic observation between two endpoints.
// Records are immutable once read from a source; duplicate (source,
// destination) pairs are expected and are summed during aggregation.
type FlowRecord struct {
	SourceIP      string `json:"sourceIp"`
	DestinationIP string `json:"destinationIp"`
	TotalBytes    uint64 `json:"totalBytes"`
	Protocol      string `json:"protocol"`
}

// AggregatedFlow is the sum of all FlowRecords sharing the same ordered
// (source, destination) pair. Protocol is taken from the first contributing
// record so repeated runs over the same input stay deterministic.
type AggregatedFlow struct {
	SourceIP      string `json:"sourceIp"`
	DestinationIP string `json:"destinationIp"`
	TotalBytes    uint64 `json:"totalBytes"`
	Protocol      string `json:"protocol"`
}

// Link is a single graph edge between two node indices.
type Link struct {
	Source    int    `json:"source"`
	Target    int    `json:"target"`
	Value     uint64 `json:"value"`
	Color     string `json:"color"`
	HoverText string `json:"hoverText"`
}

// FlowGraph is the node/link structure fed to a Sankey-style renderer.
// Nodes are ordered by first appearance (source before destination per
// flow); NodeColors is parallel to Nodes; every link index is valid.
// An empty graph (no nodes, no links) is a valid, renderable state.
type FlowGraph struct {
	Nodes      []string `json:"nodes"`
	NodeColors []string `json:"nodeColors"`
	Links      []Link   `json:"links"`
}

// GeoPoint is a resolved map marker for one endpoint. Points exist only
// for IPs the resolver could place; absence is an exclusion, not an error.
type GeoPoint struct {
	IP        string  `json:"ip"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ProtocolCount is one entry of the ranked protocol breakdown.
type ProtocolCount struct {
	Protocol string `json:"protocol"`
	Count    int    `json:"count"`
}

// EndpointBytes is one entry of a per-endpoint traffic ranking.
type EndpointBytes struct {
	IP         string `json:"ip"`
	TotalBytes uint64 `json:"totalBytes"`
}

// SummaryStats holds the headline statistics derived from the raw table.
type SummaryStats struct {
	TotalFlows          int             `json:"totalFlows"`
	DistinctSourceCount int             `json:"distinctSourceCount"`
	DistinctDestCount   int             `json:"distinctDestCount"`
	FlowsVisualized     int             `json:"flowsVisualized"`
	TopProtocols        []ProtocolCount `json:"topProtocols"`
	TopSources          []EndpointBytes `json:"topSources"`
	TopDestinations     []EndpointBytes `json:"topDestinations"`
}
