package colour

import (
	"fmt"
	"strings"
)

const (
	// ForegroundDark is used on backgrounds brighter than middle grey.
	ForegroundDark = "rgb(0, 0, 0)"
	// ForegroundLight is used on everything else, middle grey included.
	ForegroundLight = "rgb(255, 255, 255)"

	// foregroundThreshold is the channel sum of middle grey (127.5 per channel).
	foregroundThreshold = float64(ChannelMax*3) / 2
)

// Pair is a CSS foreground/background colour pair.
type Pair struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// ForegroundForSum picks the text colour for a background whose channels add
// up to sum. Only sums strictly above middle grey get a dark foreground.
func ForegroundForSum(sum float64) string {
	if sum > foregroundThreshold {
		return ForegroundDark
	}
	return ForegroundLight
}

// ForegroundString returns the contrasting text colour for background c.
func ForegroundString(c RGB) string {
	return ForegroundForSum(float64(int(c.R) + int(c.G) + int(c.B)))
}

// Foreground returns the contrasting text colour for c.
func (rgb RGB) Foreground() string {
	return ForegroundString(rgb)
}

// TransformForCSS maps colours to CSS pairs, preserving order.
// It never modifies colours.
func TransformForCSS(colours []RGB) []Pair {
	pairs := make([]Pair, len(colours))
	for i, c := range colours {
		pairs[i] = Pair{
			Foreground: ForegroundString(c),
			Background: c.String(),
		}
	}
	return pairs
}

// CSSVariables renders pairs as custom properties inside a :root block, e.g.
// "--swatch-0-bg" and "--swatch-0-fg" for the first pair with prefix "swatch".
func CSSVariables(pairs []Pair, prefix string) string {
	prefix = strings.Trim(prefix, "- ")
	if prefix == "" {
		prefix = "swatch"
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for i, p := range pairs {
		fmt.Fprintf(&b, "  --%s-%d-bg: %s;\n", prefix, i, p.Background)
		fmt.Fprintf(&b, "  --%s-%d-fg: %s;\n", prefix, i, p.Foreground)
	}
	b.WriteString("}\n")
	return b.String()
}
