package colour

// Warm returns rgb with AnchorIncrement added to channel ch, clamped to
// ChannelMax. The other channels are unchanged. An invalid channel returns rgb.
func (rgb RGB) Warm(ch Channel) RGB {
	if !ch.Valid() {
		return rgb
	}

	v := int(rgb.Channel(ch)) + AnchorIncrement
	if v >= ChannelMax {
		v = ChannelMax
	}

	// #nosec G115 -- v is clamped to [0, 255]
	return rgb.WithChannel(ch, uint8(v))
}

// AdjustTemperature warms channel ch of the colour c points to.
func AdjustTemperature(c *RGB, ch Channel) {
	*c = c.Warm(ch)
}

// AdjustPaletteTemperature finds the anchor channel of colours once and warms
// that channel of every colour in place. It returns the anchor channel.
func AdjustPaletteTemperature(colours []RGB) Channel {
	anchor := AnchorChannel(colours)
	for i := range colours {
		AdjustTemperature(&colours[i], anchor)
	}
	return anchor
}
