package colour

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a CSS string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Channel returns the value of channel ch.
func (rgb RGB) Channel(ch Channel) uint8 {
	switch ch {
	case ChannelR:
		return rgb.R
	case ChannelG:
		return rgb.G
	case ChannelB:
		return rgb.B
	default:
		return 0
	}
}

// WithChannel returns a copy of rgb with channel ch set to v.
func (rgb RGB) WithChannel(ch Channel, v uint8) RGB {
	switch ch {
	case ChannelR:
		rgb.R = v
	case ChannelG:
		rgb.G = v
	case ChannelB:
		rgb.B = v
	}
	return rgb
}

// Palette is an ordered set of colours, darkest band first.
type Palette struct {
	Colours []RGB
	// Anchor is the dominant channel of the palette.
	Anchor Channel
	// Adjusted is set once the anchor channel has been warmed.
	Adjusted bool
	// Seed is the generator seed the palette came from. It is only
	// meaningful when Seeded is set; zero is a valid seed.
	Seed   uint64
	Seeded bool
}

// NewPalette wraps colours without adjusting them.
func NewPalette(colours []RGB) *Palette {
	return &Palette{
		Colours: colours,
		Anchor:  AnchorChannel(colours),
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Adjust applies the temperature adjustment to every colour. Calling it on
// an already adjusted palette is a no-op.
func (p *Palette) Adjust() {
	if p.Adjusted {
		return
	}
	p.Anchor = AdjustPaletteTemperature(p.Colours)
	p.Adjusted = true
}

// Pairs returns the CSS foreground/background pairs for the palette.
func (p *Palette) Pairs() []Pair {
	return TransformForCSS(p.Colours)
}

// CSSVariables renders the palette as CSS custom properties.
func (p *Palette) CSSVariables(prefix string) string {
	return CSSVariables(p.Pairs(), prefix)
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex        string `json:"hex"`
	RGB        RGB    `json:"rgb"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// PaletteJSON represents the palette in JSON format. Seed is omitted for
// palettes that did not come from a seeded generator.
type PaletteJSON struct {
	Count    int          `json:"count"`
	Seed     *uint64      `json:"seed,omitempty"`
	Anchor   Channel      `json:"anchor"`
	Adjusted bool         `json:"adjusted"`
	Pairs    []Pair       `json:"pairs"`
	Colours  []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{
			Hex:        c.Hex(),
			RGB:        c,
			Foreground: c.Foreground(),
			Background: c.String(),
		}
	}

	out := PaletteJSON{
		Count:    len(p.Colours),
		Anchor:   p.Anchor,
		Adjusted: p.Adjusted,
		Pairs:    p.Pairs(),
		Colours:  colours,
	}
	if p.Seeded {
		s := p.Seed
		out.Seed = &s
	}

	return json.MarshalIndent(out, "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colours (anchor %s):\n", len(p.Colours), p.Anchor)
	for i, c := range p.Colours {
		fmt.Fprintf(&b, "  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return b.String()
}

// Get returns the colour at the specified index.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.Colours) {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colours))
	}
	return p.Colours[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}
