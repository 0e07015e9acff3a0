package colour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdjustTemperature(t *testing.T) {
	tests := []struct {
		name    string
		colour  RGB
		channel Channel
		want    RGB
	}{
		{name: "adds increment", colour: RGB{R: 10, G: 20, B: 30}, channel: ChannelB, want: RGB{R: 10, G: 20, B: 45}},
		{name: "clamps to max", colour: RGB{R: 10, G: 20, B: 250}, channel: ChannelB, want: RGB{R: 10, G: 20, B: 255}},
		{name: "lands on max", colour: RGB{R: 240, G: 1, B: 2}, channel: ChannelR, want: RGB{R: 255, G: 1, B: 2}},
		{name: "already max", colour: RGB{R: 0, G: 255, B: 0}, channel: ChannelG, want: RGB{R: 0, G: 255, B: 0}},
		{name: "zero channel", colour: RGB{}, channel: ChannelR, want: RGB{R: 15}},
		{name: "invalid channel", colour: RGB{R: 1, G: 2, B: 3}, channel: Channel(5), want: RGB{R: 1, G: 2, B: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.colour
			AdjustTemperature(&c, tt.channel)
			if c != tt.want {
				t.Errorf("AdjustTemperature(%+v, %s) = %+v, want %+v", tt.colour, tt.channel, c, tt.want)
			}
		})
	}
}

func TestWarmDoesNotMutate(t *testing.T) {
	c := RGB{R: 10, G: 20, B: 30}
	warmed := c.Warm(ChannelG)

	if c != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("Warm modified its receiver: %+v", c)
	}
	if warmed != (RGB{R: 10, G: 35, B: 30}) {
		t.Errorf("Warm(g) = %+v", warmed)
	}
}

func TestAdjustPaletteTemperature(t *testing.T) {
	palette := []RGB{
		{R: 10, G: 20, B: 30},
		{R: 40, G: 50, B: 60},
		{R: 70, G: 80, B: 90},
		{R: 100, G: 110, B: 250},
	}

	anchor := AdjustPaletteTemperature(palette)
	if anchor != ChannelB {
		t.Fatalf("AdjustPaletteTemperature() anchor = %s, want b", anchor)
	}

	want := []RGB{
		{R: 10, G: 20, B: 45},
		{R: 40, G: 50, B: 75},
		{R: 70, G: 80, B: 105},
		{R: 100, G: 110, B: 255},
	}
	if diff := cmp.Diff(want, palette); diff != "" {
		t.Errorf("AdjustPaletteTemperature() mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjustPaletteTemperatureUsesOneAnchor(t *testing.T) {
	// The second colour is individually red-dominant but the palette is green.
	palette := []RGB{
		{R: 0, G: 200, B: 0},
		{R: 100, G: 50, B: 0},
	}

	if anchor := AdjustPaletteTemperature(palette); anchor != ChannelG {
		t.Fatalf("anchor = %s, want g", anchor)
	}
	if palette[1] != (RGB{R: 100, G: 65, B: 0}) {
		t.Errorf("second colour = %+v, want green warmed", palette[1])
	}
}
