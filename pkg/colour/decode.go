package colour

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// colourRecord mirrors RGB with optional fields so missing channels can be
// told apart from zero.
type colourRecord struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
}

// DecodeColours parses a JSON array of {"r": .., "g": .., "b": ..} objects.
// Every record must carry all three channels as whole numbers in [0, 255].
func DecodeColours(data []byte) ([]RGB, error) {
	var records []colourRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode colours: %w", ErrInvalidArgument, err)
	}

	colours := make([]RGB, len(records))
	for i, rec := range records {
		c, err := rec.toRGB()
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i, err)
		}
		colours[i] = c
	}
	return colours, nil
}

func (rec colourRecord) toRGB() (RGB, error) {
	var out RGB
	for _, ch := range Channels {
		var v *float64
		switch ch {
		case ChannelR:
			v = rec.R
		case ChannelG:
			v = rec.G
		case ChannelB:
			v = rec.B
		}

		if v == nil {
			return RGB{}, fmt.Errorf("%w: missing channel %s", ErrInvalidArgument, ch)
		}
		if *v < ChannelMin || *v > ChannelMax || *v != math.Trunc(*v) {
			return RGB{}, fmt.Errorf("%w: channel %s value %v is not an integer in [0, 255]", ErrInvalidArgument, ch, *v)
		}

		// #nosec G115 -- range checked above
		out = out.WithChannel(ch, uint8(*v))
	}
	return out, nil
}
