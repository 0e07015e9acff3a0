package colour

import (
	"errors"
	"testing"
)

// fixedSource always returns the same value.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// sequenceSource returns values in order, wrapping around.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestBandBounds(t *testing.T) {
	tests := []struct {
		name   string
		i      int
		length int
		wantLo int
		wantHi int
	}{
		{name: "single band", i: 0, length: 1, wantLo: 0, wantHi: 255},
		{name: "first of three", i: 0, length: 3, wantLo: 0, wantHi: 85},
		{name: "middle of three", i: 1, length: 3, wantLo: 85, wantHi: 170},
		{name: "last of three", i: 2, length: 3, wantLo: 170, wantHi: 255},
		{name: "fractional edges", i: 1, length: 4, wantLo: 64, wantHi: 127},
		{name: "collapsed band", i: 2, length: 300, wantLo: 2, wantHi: 2},
		{name: "inverted band", i: 1, length: 1000, wantLo: 1, wantHi: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := BandBounds(tt.i, tt.length)
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("BandBounds(%d, %d) = (%d, %d), want (%d, %d)",
					tt.i, tt.length, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestSampleBandStaysInBand(t *testing.T) {
	lengths := []int{1, 2, 3, 4, 7, 16, 255, 256, 300, 1000}
	draws := []fixedSource{0, 0.25, 0.5, 0.999999}

	for _, length := range lengths {
		for i := range length {
			lo, hi := BandBounds(i, length)
			for _, src := range draws {
				v, err := SampleBand(src, i, length)
				if err != nil {
					t.Fatalf("SampleBand(%d, %d) error = %v", i, length, err)
				}
				if hi > lo && (int(v) < lo || int(v) >= hi) {
					t.Errorf("SampleBand(%d, %d) with %v = %d, want in [%d, %d)", i, length, float64(src), v, lo, hi)
				}
				if hi <= lo && int(v) != lo && int(v) != hi {
					t.Errorf("SampleBand(%d, %d) with %v = %d on collapsed band, want %d or %d", i, length, float64(src), v, lo, hi)
				}
			}
		}
	}
}

func TestSampleBandArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		src    Source
		i      int
		length int
		want   uint8
	}{
		{name: "band zero lower edge", src: fixedSource(0), i: 0, length: 3, want: 0},
		{name: "band one lower edge", src: fixedSource(0), i: 1, length: 3, want: 85},
		{name: "band one midpoint", src: fixedSource(0.5), i: 1, length: 3, want: 127},
		{name: "band one upper edge", src: fixedSource(0.999999), i: 1, length: 3, want: 169},
		{name: "top band upper edge", src: fixedSource(0.999999), i: 2, length: 3, want: 254},
		{name: "inverted band at zero draw", src: fixedSource(0), i: 1, length: 1000, want: 1},
		{name: "inverted band floors down", src: fixedSource(0.5), i: 1, length: 1000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleBand(tt.src, tt.i, tt.length)
			if err != nil {
				t.Fatalf("SampleBand() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SampleBand(%d, %d) = %d, want %d", tt.i, tt.length, got, tt.want)
			}
		})
	}
}

func TestSampleBandRandomDraws(t *testing.T) {
	src := NewSource(7)
	for range 1000 {
		mid, err := SampleBand(src, 1, 3)
		if err != nil {
			t.Fatalf("SampleBand() error = %v", err)
		}
		if mid < 85 || mid >= 170 {
			t.Fatalf("SampleBand(1, 3) = %d, want in [85, 170)", mid)
		}

		low, err := SampleBand(src, 0, 3)
		if err != nil {
			t.Fatalf("SampleBand() error = %v", err)
		}
		if low >= 85 {
			t.Fatalf("SampleBand(0, 3) = %d, want below 85", low)
		}
	}
}

func TestSampleBandInvalid(t *testing.T) {
	tests := []struct {
		name   string
		i      int
		length int
	}{
		{name: "zero length", i: 0, length: 0},
		{name: "negative length", i: 0, length: -3},
		{name: "negative index", i: -1, length: 3},
		{name: "index past end", i: 3, length: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleBand(fixedSource(0), tt.i, tt.length); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("SampleBand(%d, %d) error = %v, want ErrInvalidArgument", tt.i, tt.length, err)
			}
			if _, err := RandomColour(fixedSource(0), tt.i, tt.length); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("RandomColour(%d, %d) error = %v, want ErrInvalidArgument", tt.i, tt.length, err)
			}
		})
	}
}

func TestRandomColourDrawsChannelsIndependently(t *testing.T) {
	src := &sequenceSource{values: []float64{0, 0.5, 0.99}}

	got, err := RandomColour(src, 1, 3)
	if err != nil {
		t.Fatalf("RandomColour() error = %v", err)
	}

	want := RGB{R: 85, G: 127, B: 169}
	if got != want {
		t.Errorf("RandomColour(1, 3) = %+v, want %+v", got, want)
	}
	if src.next != 3 {
		t.Errorf("RandomColour consumed %d draws, want 3", src.next)
	}
}
