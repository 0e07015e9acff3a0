package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/pkg/colour"
)

// transformOptions holds the transform command flags.
type transformOptions struct {
	format    formatValue
	preview   previewValue
	cssPrefix string
	warm      bool
}

func newTransformCmd(root *rootOptions) *cobra.Command {
	opts := &transformOptions{
		format:  formatValue(config.FormatTable),
		preview: previewNever,
	}

	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "Convert a JSON colour list to CSS pairs",
		Long: `Read a JSON array of {"r": .., "g": .., "b": ..} objects and print CSS
foreground/background pairs for them, in order.

Reads standard input when no file or "-" is given. With --warm the palette's
dominant channel is raised by 15 on every colour first.

Examples:
  echo '[{"r":10,"g":20,"b":30}]' | swatch transform --format json
  swatch transform palette.json --warm --format css`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.warm, "warm", false, "apply the temperature adjustment")
	addOutputFlags(cmd.Flags(), &opts.format, &opts.preview, &opts.cssPrefix)

	return cmd
}

// runTransform executes the transform command.
func runTransform(cmd *cobra.Command, args []string, root *rootOptions, opts *transformOptions) error {
	logger := root.logger(cmd)

	cfg, err := root.loadConfig(logger)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = opts.format.String()
	}
	if cmd.Flags().Changed("css-prefix") {
		cfg.CSSPrefix = opts.cssPrefix
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	colours, err := colour.DecodeColours(data)
	if err != nil {
		return err
	}

	palette := colour.NewPalette(colours)
	if opts.warm {
		palette.Adjust()
	}
	logger.Debug("transformed palette", "colours", palette.Len(), "anchor", palette.Anchor.String(), "adjusted", palette.Adjusted)

	return renderPalette(cmd.OutOrStdout(), cmd.ErrOrStderr(), palette, renderOptions{
		format:    cfg.Format,
		cssPrefix: cfg.CSSPrefix,
		preview:   opts.preview.String(),
	})
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}
