package colour

import "fmt"

// Channel selects one of the red, green or blue components of a colour.
type Channel uint8

// Colour channels in scan order. Ties in AnchorChannel go to the later one.
const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
)

// Channels lists every channel in scan order.
var Channels = [...]Channel{ChannelR, ChannelG, ChannelB}

// String returns the single-letter channel name ("r", "g" or "b").
func (c Channel) String() string {
	switch c {
	case ChannelR:
		return "r"
	case ChannelG:
		return "g"
	case ChannelB:
		return "b"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

// Valid reports whether c is one of the three colour channels.
func (c Channel) Valid() bool {
	return c <= ChannelB
}

// MarshalText implements encoding.TextMarshaler.
func (c Channel) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: unknown channel %d", ErrInvalidArgument, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Channel) UnmarshalText(text []byte) error {
	ch, err := ParseChannel(string(text))
	if err != nil {
		return err
	}
	*c = ch
	return nil
}

// ParseChannel converts "r", "g" or "b" to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "r":
		return ChannelR, nil
	case "g":
		return ChannelG, nil
	case "b":
		return ChannelB, nil
	default:
		return 0, fmt.Errorf("%w: unknown channel %q (valid: r, g, b)", ErrInvalidArgument, s)
	}
}

// Totals holds per-channel sums over a palette.
type Totals struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Get returns the total for ch.
func (t Totals) Get(ch Channel) int {
	switch ch {
	case ChannelR:
		return t.R
	case ChannelG:
		return t.G
	case ChannelB:
		return t.B
	default:
		return 0
	}
}

// Sum adds up each channel of colours. An empty slice yields zero totals.
func Sum(colours []RGB) Totals {
	var t Totals
	for _, c := range colours {
		t.R += int(c.R)
		t.G += int(c.G)
		t.B += int(c.B)
	}
	return t
}

// GreatestChannel returns the channel with the largest total.
//
// Channels are scanned in r, g, b order and ties go to the last channel
// holding the maximum, so equal totals for g and b select b. The comparison
// starts from zero; if every total is negative ChannelR is returned.
func GreatestChannel(t Totals) Channel {
	greatest := 0
	key := ChannelR
	for _, ch := range Channels {
		if v := t.Get(ch); v >= greatest {
			greatest = v
			key = ch
		}
	}
	return key
}

// AnchorChannel returns the dominant channel of a palette: the one with the
// greatest sum across all colours.
func AnchorChannel(colours []RGB) Channel {
	return GreatestChannel(Sum(colours))
}
