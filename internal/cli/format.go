package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/config"
)

// formatValue is a pflag.Value restricted to the known output formats.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(config.ValidFormats(), s) {
		return fmt.Errorf("invalid format %q (valid: %s)", s, strings.Join(config.ValidFormats(), ", "))
	}
	*f = formatValue(s)
	return nil
}

func (f *formatValue) Type() string { return "format" }

// Preview modes.
const (
	previewNever  = "never"
	previewAuto   = "auto"
	previewAlways = "always"
)

// previewValue controls swatch previews. A bare --preview means auto.
type previewValue string

var _ pflag.Value = (*previewValue)(nil)

func (p *previewValue) String() string { return string(*p) }

func (p *previewValue) Set(s string) error {
	switch s {
	case previewNever, previewAuto, previewAlways:
		*p = previewValue(s)
		return nil
	case "true":
		*p = previewAuto
		return nil
	case "false":
		*p = previewNever
		return nil
	default:
		return fmt.Errorf("invalid preview mode %q (valid: never, auto, always)", s)
	}
}

func (p *previewValue) Type() string { return "mode" }

// addOutputFlags registers the flags shared by generate and transform.
func addOutputFlags(flags *pflag.FlagSet, format *formatValue, preview *previewValue, cssPrefix *string) {
	flags.VarP(format, "format", "f", "output format (table, json, css, plain)")
	flags.Var(preview, "preview", "show colour swatches (never, auto, always)")
	flags.Lookup("preview").NoOptDefVal = previewAuto
	flags.StringVar(cssPrefix, "css-prefix", "swatch", "custom property prefix for css output")
}
