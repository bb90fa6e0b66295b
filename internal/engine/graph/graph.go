package graph

import (
	"FlowScope/internal/core/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// hoverPrinter groups byte counts by thousands in hover labels.
var hoverPrinter = message.NewPrinter(language.English)

// Build converts a ranked flow sequence into a node/link graph. Nodes are
// registered in first-appearance order (source before destination per
// flow), which keeps the visual layout stable across repeated runs on the
// same data. An empty flow sequence yields an empty graph, which is a
// valid renderable state for the caller's placeholder.
func Build(flows []model.AggregatedFlow) model.FlowGraph {
	g := model.FlowGraph{
		Nodes:      []string{},
		NodeColors: []string{},
		Links:      []model.Link{},
	}
	if len(flows) == 0 {
		return g
	}

	nodeIndex := make(map[string]int)
	register := func(ip string) int {
		if idx, ok := nodeIndex[ip]; ok {
			return idx
		}
		idx := len(g.Nodes)
		nodeIndex[ip] = idx
		g.Nodes = append(g.Nodes, ip)
		return idx
	}

	for i, flow := range flows {
		src := register(flow.SourceIP)
		dst := register(flow.DestinationIP)
		g.Links = append(g.Links, model.Link{
			Source:    src,
			Target:    dst,
			Value:     flow.TotalBytes,
			Color:     PaletteColor(i),
			HoverText: hoverText(flow),
		})
	}

	// Node intensity scales with the node's share of the heaviest talker.
	traffic := make([]uint64, len(g.Nodes))
	for _, flow := range flows {
		traffic[nodeIndex[flow.SourceIP]] += flow.TotalBytes
		traffic[nodeIndex[flow.DestinationIP]] += flow.TotalBytes
	}
	var maxTraffic uint64
	for _, t := range traffic {
		if t > maxTraffic {
			maxTraffic = t
		}
	}
	for _, t := range traffic {
		g.NodeColors = append(g.NodeColors, GradientColor(t, maxTraffic))
	}

	return g
}

// hoverText composes the label shown when hovering a link: endpoints,
// thousands-grouped byte count and protocol.
func hoverText(flow model.AggregatedFlow) string {
	return hoverPrinter.Sprintf("%s → %s<br>Total Bytes: %d<br>Protocol: %s",
		flow.SourceIP, flow.DestinationIP, flow.TotalBytes, flow.Protocol)
}
