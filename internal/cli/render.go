package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/pkg/colour"
)

// renderOptions selects how a palette is written.
type renderOptions struct {
	format    string
	cssPrefix string
	preview   string
}

// renderPalette writes p to out in the chosen format. Swatch previews go to
// previewOut so that out stays machine readable.
func renderPalette(out, previewOut io.Writer, p *colour.Palette, opts renderOptions) error {
	switch opts.format {
	case config.FormatTable, "":
		renderTable(out, p)
	case config.FormatJSON:
		data, err := p.ToJSON()
		if err != nil {
			return fmt.Errorf("encode palette: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case config.FormatCSS:
		fmt.Fprint(out, p.CSSVariables(opts.cssPrefix))
	case config.FormatPlain:
		for _, pair := range p.Pairs() {
			fmt.Fprintf(out, "%s\t%s\n", pair.Foreground, pair.Background)
		}
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}

	if shouldPreview(previewOut, opts.preview) {
		renderPreview(previewOut, p)
	}
	return nil
}

func renderTable(out io.Writer, p *colour.Palette) {
	table := NewTable([]string{"#", "BACKGROUND", "FOREGROUND", "HEX"})
	table.AlignRight(0)
	for i, c := range p.All() {
		table.AddRow([]string{strconv.Itoa(i), c.String(), c.Foreground(), c.Hex()})
	}
	fmt.Fprint(out, table.Render())

	state := "not adjusted"
	if p.Adjusted {
		state = fmt.Sprintf("+%d", colour.AnchorIncrement)
	}
	if p.Seeded {
		fmt.Fprintf(out, "\nanchor: %s (%s), seed: %d\n", p.Anchor, state, p.Seed)
	} else {
		fmt.Fprintf(out, "\nanchor: %s (%s)\n", p.Anchor, state)
	}
}

// renderPreview draws one block per colour with its foreground as text.
func renderPreview(out io.Writer, p *colour.Palette) {
	if p.Len() == 0 {
		return
	}

	r := lipgloss.NewRenderer(out)
	blocks := make([]string, 0, p.Len())
	for i, c := range p.All() {
		fg := "#ffffff"
		if c.Foreground() == colour.ForegroundDark {
			fg = "#000000"
		}
		style := r.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(fg)).
			Padding(1, 2)
		blocks = append(blocks, style.Render(fmt.Sprintf("%2d %s", i, strings.TrimPrefix(c.Hex(), "#"))))
	}
	fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
}

func shouldPreview(w io.Writer, mode string) bool {
	switch mode {
	case previewAlways:
		return true
	case previewAuto:
		return isTerminal(w)
	default:
		return false
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	// #nosec G115 -- file descriptors fit in int
	return ok && term.IsTerminal(int(f.Fd()))
}
