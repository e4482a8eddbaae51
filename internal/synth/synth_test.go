package synth

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(" " + string(c) + " ")
		if err != nil {
			t.Fatalf("ParseCategory(%q) returned error: %v", c, err)
		}
		if got != c {
			t.Fatalf("ParseCategory(%q) = %q", c, got)
		}
	}
}

func TestParseCategoryRejectsUnknown(t *testing.T) {
	if _, err := ParseCategory("tilemap"); !errors.Is(err, ErrUnsupportedCategory) {
		t.Fatalf("ParseCategory err = %v, want ErrUnsupportedCategory", err)
	}
}

func TestSynthesizeUnsupportedCategoryFailsFast(t *testing.T) {
	s := NewSeeded(1)
	img, err := s.Synthesize("red circle", Category("tilemap"), "realistic", "32x32")
	if !errors.Is(err, ErrUnsupportedCategory) {
		t.Fatalf("Synthesize err = %v, want ErrUnsupportedCategory", err)
	}
	if img != nil {
		t.Fatalf("Synthesize returned image %v for unsupported category", img.Bounds())
	}
}

func TestSynthesizeMalformedDimensions(t *testing.T) {
	s := NewSeeded(1)
	if _, err := s.Synthesize("red", CategoryIcon, "realistic", "32by32"); !errors.Is(err, ErrMalformedDimensions) {
		t.Fatalf("Synthesize err = %v, want ErrMalformedDimensions", err)
	}
}

func TestSynthesizeDeterministicWithSeed(t *testing.T) {
	first, err := NewSeeded(99).Synthesize("red blue green texture", CategoryTexture, "realistic", "60x60")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	second, err := NewSeeded(99).Synthesize("red blue green texture", CategoryTexture, "realistic", "60x60")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if len(first.Pix) != len(second.Pix) {
		t.Fatalf("pixel buffers differ in length: %d vs %d", len(first.Pix), len(second.Pix))
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("pixel buffers diverge at offset %d", i)
		}
	}
}

func TestSynthesizeBufferStartsTransparent(t *testing.T) {
	// The background routine paints every row, so check the sprite
	// routine's untouched corners instead.
	s := NewSeeded(1)
	img, err := s.Synthesize("red circle", CategorySprite, "realistic", "50x50")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if px := img.NRGBAAt(0, 0); px.A != 0 {
		t.Fatalf("corner pixel = %v, want fully transparent", px)
	}
}
