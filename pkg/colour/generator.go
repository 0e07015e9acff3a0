package colour

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/seed"
)

// Generator builds banded palettes from its own random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	src     Source
	seed    uint64
	seedSet bool
	seeded  bool
	adjust  bool
	logger  hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator reproducible: the same seed always yields the
// same palettes in the same order.
func WithSeed(s uint64) Option {
	return func(g *Generator) {
		g.seed = s
		g.seedSet = true
	}
}

// WithSource replaces the seeded source, e.g. with a fixed sequence in tests.
// Palettes from such a generator carry no seed.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithAdjustment toggles the temperature adjustment. It is enabled by default.
func WithAdjustment(enabled bool) Option {
	return func(g *Generator) {
		g.adjust = enabled
	}
}

// NewGenerator creates a Generator. Without WithSeed or WithSource it is
// seeded from crypto/rand.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		adjust: true,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.src == nil {
		if !g.seedSet {
			g.seed = seed.GenerateRandomSeed()
		}
		g.src = NewSource(g.seed)
		g.seeded = true
	}
	return g
}

// NewSource returns a ChaCha8 backed source for seed.
func NewSource(s uint64) *rand.Rand {
	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], s)
	// #nosec G404 -- deterministic colour generation, not cryptography
	return rand.New(rand.NewChaCha8(seedArray))
}

// Seed returns the seed of the generator's source and whether the source
// was built from it.
func (g *Generator) Seed() (uint64, bool) {
	return g.seed, g.seeded
}

// Colours draws length colours, colour i from band i, without adjusting them.
func (g *Generator) Colours(length int) ([]RGB, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: length must not be negative, got %d", ErrInvalidArgument, length)
	}

	colours := make([]RGB, 0, length)
	for i := range length {
		c, err := RandomColour(g.src, i, length)
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
	}
	return colours, nil
}

// Generate draws a palette of length colours and, unless disabled, warms
// the palette's anchor channel.
func (g *Generator) Generate(length int) (*Palette, error) {
	colours, err := g.Colours(length)
	if err != nil {
		return nil, err
	}

	p := NewPalette(colours)
	p.Seed, p.Seeded = g.seed, g.seeded
	if g.adjust {
		p.Adjust()
	}

	g.logger.Debug("generated palette",
		"length", length,
		"seed", g.seed,
		"seeded", g.seeded,
		"anchor", p.Anchor.String(),
		"adjusted", p.Adjusted)

	return p, nil
}

// MakePalette runs the full pipeline and returns the CSS pairs.
func (g *Generator) MakePalette(length int) ([]Pair, error) {
	p, err := g.Generate(length)
	if err != nil {
		return nil, err
	}
	return p.Pairs(), nil
}

// MakePalette generates length CSS pairs from a freshly seeded generator.
// Concurrent calls never share a random source.
func MakePalette(length int) ([]Pair, error) {
	return NewGenerator().MakePalette(length)
}
