// Package colour provides banded palette generation and CSS formatting.
package colour

import (
	"fmt"
	"math"
)

const (
	// ChannelMax is the largest legal channel value.
	ChannelMax = 255
	// ChannelMin is the smallest legal channel value.
	ChannelMin = 0
	// AnchorIncrement is added to the anchor channel of every colour during
	// temperature adjustment.
	AnchorIncrement = 15
)

// Source yields uniformly distributed values in [0, 1).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// BandBounds returns the integer bounds of band i when [0, 255] is split into
// length bands: lo is the ceiling of the band's lower edge and hi the floor of
// its upper edge. For large lengths hi may be smaller than lo.
func BandBounds(i, length int) (lo, hi int) {
	lo = int(math.Ceil(float64(i*ChannelMax) / float64(length)))
	hi = int(math.Floor(float64((i+1)*ChannelMax) / float64(length)))
	return lo, hi
}

// SampleBand draws a channel value from band i of length bands.
//
// The value is floor(r*(hi-lo)) + lo for a uniform r, so it lies in [lo, hi)
// for non-degenerate bands. A collapsed band (hi <= lo) yields lo or hi, which
// are both still within [0, 255].
func SampleBand(src Source, i, length int) (uint8, error) {
	if err := checkBand(i, length); err != nil {
		return 0, err
	}

	lo, hi := BandBounds(i, length)
	v := int(math.Floor(src.Float64()*float64(hi-lo))) + lo

	// #nosec G115 -- v is within [0, 255] for any valid band
	return uint8(v), nil
}

// RandomColour draws each channel independently from band i.
func RandomColour(src Source, i, length int) (RGB, error) {
	if err := checkBand(i, length); err != nil {
		return RGB{}, err
	}

	// checkBand already passed, the errors below cannot occur.
	r, _ := SampleBand(src, i, length)
	g, _ := SampleBand(src, i, length)
	b, _ := SampleBand(src, i, length)

	return RGB{R: r, G: g, B: b}, nil
}

func checkBand(i, length int) error {
	if length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidArgument, length)
	}
	if i < 0 || i >= length {
		return fmt.Errorf("%w: band %d out of range [0, %d)", ErrInvalidArgument, i, length)
	}
	return nil
}
