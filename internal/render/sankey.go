package render

import (
	"FlowScope/internal/core/model"
)

// SankeyNode mirrors the node block of a Plotly Sankey trace.
type SankeyNode struct {
	Label []string `json:"label"`
	Color []string `json:"color"`
}

// SankeyLink mirrors the link block of a Plotly Sankey trace. The slices
// are parallel, one entry per link.
type SankeyLink struct {
	Source []int    `json:"source"`
	Target []int    `json:"target"`
	Value  []uint64 `json:"value"`
	Color  []string `json:"color"`
	Label  []string `json:"label"`
}

// SankeyTrace is a single "sankey" trace.
type SankeyTrace struct {
	Type        string     `json:"type"`
	Orientation string     `json:"orientation"`
	Node        SankeyNode `json:"node"`
	Link        SankeyLink `json:"link"`
}

// SankeyFigure is the figure-level JSON a Plotly-compatible renderer
// consumes directly. The core owns only the data; layout styling beyond
// the title belongs to the presentation layer.
type SankeyFigure struct {
	Data   []SankeyTrace     `json:"data"`
	Layout map[string]string `json:"layout"`
}

// SankeyFromGraph converts a FlowGraph into a renderer-ready figure.
// An empty graph yields a figure with empty node and link arrays, which
// renders as the caller's placeholder.
func SankeyFromGraph(g model.FlowGraph, title string) SankeyFigure {
	trace := SankeyTrace{
		Type:        "sankey",
		Orientation: "h",
		Node: SankeyNode{
			Label: g.Nodes,
			Color: g.NodeColors,
		},
		Link: SankeyLink{
			Source: make([]int, 0, len(g.Links)),
			Target: make([]int, 0, len(g.Links)),
			Value:  make([]uint64, 0, len(g.Links)),
			Color:  make([]string, 0, len(g.Links)),
			Label:  make([]string, 0, len(g.Links)),
		},
	}
	for _, l := range g.Links {
		trace.Link.Source = append(trace.Link.Source, l.Source)
		trace.Link.Target = append(trace.Link.Target, l.Target)
		trace.Link.Value = append(trace.Link.Value, l.Value)
		trace.Link.Color = append(trace.Link.Color, l.Color)
		trace.Link.Label = append(trace.Link.Label, l.HoverText)
	}

	return SankeyFigure{
		Data:   []SankeyTrace{trace},
		Layout: map[string]string{"title": title},
	}
}
