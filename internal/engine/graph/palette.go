package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// linkPalette is the fixed, versioned link color table. Links cycle through
// it by position, so diagrams with more links than colors still get
// visually distinct ribbons.
var linkPalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// linkAlpha is the fixed transparency applied to every link ribbon.
const linkAlpha = 0.7

// Two-stop node gradient: the green channel runs from the low-traffic stop
// to the high-traffic stop on a fixed blue base.
const (
	gradientLowStop  = 100
	gradientHighStop = 255
)

func init() {
	// The palette is a hand-maintained table; a bad entry must fail loudly
	// at startup instead of rendering as black.
	for _, hex := range linkPalette {
		if _, err := parseHex(hex); err != nil {
			panic(fmt.Sprintf("graph: invalid palette entry %q: %v", hex, err))
		}
	}
}

// PaletteColor returns the rgba color for the link at position i,
// cycling through the palette.
func PaletteColor(i int) string {
	return hexToRGBA(linkPalette[i%len(linkPalette)], linkAlpha)
}

// GradientColor maps a node's total traffic onto the two-stop gradient,
// scaled against the maximum node traffic in the graph. A graph where the
// maximum is zero uses the high-intensity stop so single-node and
// zero-byte graphs still render.
func GradientColor(traffic, maxTraffic uint64) string {
	intensity := gradientHighStop
	if maxTraffic > 0 {
		span := float64(gradientHighStop - gradientLowStop)
		intensity = gradientLowStop + int(span*float64(traffic)/float64(maxTraffic))
	}
	return fmt.Sprintf("rgba(100, %d, 237, 0.8)", intensity)
}

// parseHex parses a #RRGGBB color into its packed 24-bit value.
func parseHex(hex string) (uint64, error) {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return 0, fmt.Errorf("color %q is not in #RRGGBB form", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q is not in #RRGGBB form: %w", hex, err)
	}
	return v, nil
}

// hexToRGBA converts a #RRGGBB color to an rgba() string with the given
// alpha. Entries are validated at init, so parse errors cannot occur here.
func hexToRGBA(hex string, alpha float64) string {
	v, _ := parseHex(hex)
	r, g, b := (v>>16)&0xFF, (v>>8)&0xFF, v&0xFF
	return fmt.Sprintf("rgba(%d, %d, %d, %.1f)", r, g, b, alpha)
}
