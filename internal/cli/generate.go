package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/seed"
	"github.com/jmylchreest/swatch/pkg/colour"
)

// generateOptions holds the generate command flags.
type generateOptions struct {
	length    int
	format    formatValue
	preview   previewValue
	cssPrefix string
	seedMode  string
	seed      uint64
	seedText  string
	noAdjust  bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{
		format:  formatValue(config.FormatTable),
		preview: previewNever,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a banded colour palette",
		Long: `Generate a palette of colours stepping from dark to light.

The channel range 0-255 is split into one band per colour; colour i draws each
of its channels from band i. The channel with the largest total across the
palette is then raised by 15 on every colour (clamped to 255), and each colour
is paired with a black or white foreground.

Examples:
  # Five colours as a table
  swatch generate

  # Eight colours as CSS custom properties
  swatch generate -n 8 --format css --css-prefix brand

  # Reproducible palette from a phrase
  swatch generate --seed-mode text --seed-text "autumn leaves"

  # Reproducible palette from a number, with a terminal preview
  swatch generate --seed-mode manual --seed 42 --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "n", config.DefaultLength, "number of colours")
	cmd.Flags().StringVar(&opts.seedMode, "seed-mode", string(seed.ModeRandom), "seed mode (random, manual, text)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed value for manual seed mode")
	cmd.Flags().StringVar(&opts.seedText, "seed-text", "", "seed phrase for text seed mode")
	cmd.Flags().BoolVar(&opts.noAdjust, "no-adjust", false, "skip the temperature adjustment")
	addOutputFlags(cmd.Flags(), &opts.format, &opts.preview, &opts.cssPrefix)

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	logger := root.logger(cmd)

	cfg, err := root.loadConfig(logger)
	if err != nil {
		return err
	}

	// Explicit flags override the file and environment.
	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Length = opts.length
	}
	if flags.Changed("format") {
		cfg.Format = opts.format.String()
	}
	if flags.Changed("css-prefix") {
		cfg.CSSPrefix = opts.cssPrefix
	}
	if flags.Changed("seed-mode") {
		cfg.SeedMode = opts.seedMode
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
		if !flags.Changed("seed-mode") {
			cfg.SeedMode = string(seed.ModeManual)
		}
	}
	if flags.Changed("seed-text") {
		cfg.SeedText = opts.seedText
		if !flags.Changed("seed-mode") {
			cfg.SeedMode = string(seed.ModeText)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seedValue, err := seed.Calculate(cfg.SeedConfig())
	if err != nil {
		return fmt.Errorf("calculate seed: %w", err)
	}
	logger.Debug("using seed", "mode", cfg.SeedMode, "seed", seedValue)

	gen := colour.NewGenerator(
		colour.WithSeed(seedValue),
		colour.WithLogger(logger),
		colour.WithAdjustment(!opts.noAdjust),
	)

	palette, err := gen.Generate(cfg.Length)
	if err != nil {
		return fmt.Errorf("generate palette: %w", err)
	}

	return renderPalette(cmd.OutOrStdout(), cmd.ErrOrStderr(), palette, renderOptions{
		format:    cfg.Format,
		cssPrefix: cfg.CSSPrefix,
		preview:   opts.preview.String(),
	})
}
