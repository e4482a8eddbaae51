package synth

import (
	"errors"
	"testing"
)

func TestParseDimensions(t *testing.T) {
	width, height, err := ParseDimensions("256x128")
	if err != nil {
		t.Fatalf("ParseDimensions returned error: %v", err)
	}
	if width != 256 || height != 128 {
		t.Fatalf("ParseDimensions = (%d, %d), want (256, 128)", width, height)
	}
}

func TestParseDimensionsMalformed(t *testing.T) {
	cases := []string{"", "256", "256x", "x128", "256x128x64", "ax128", "256xb", "0x128", "256x-1"}
	for _, dims := range cases {
		t.Run(dims, func(t *testing.T) {
			if _, _, err := ParseDimensions(dims); !errors.Is(err, ErrMalformedDimensions) {
				t.Fatalf("ParseDimensions(%q) err = %v, want ErrMalformedDimensions", dims, err)
			}
		})
	}
}

func TestParseDimensionsLargeValuesAccepted(t *testing.T) {
	width, height, err := ParseDimensions("100000x100000")
	if err != nil {
		t.Fatalf("ParseDimensions returned error: %v", err)
	}
	if width != 100000 || height != 100000 {
		t.Fatalf("ParseDimensions = (%d, %d), want (100000, 100000)", width, height)
	}
}
