package synth

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"strings"
	"time"
)

// ErrUnsupportedCategory indicates an asset category outside the closed set
// handled by the dispatcher.
var ErrUnsupportedCategory = errors.New("synth: unsupported asset category")

// Category enumerates the supported asset categories, each bound to a
// distinct drawing routine.
type Category string

const (
	CategoryTexture    Category = "texture"
	CategorySprite     Category = "sprite"
	CategoryIcon       Category = "icon"
	CategoryBackground Category = "background"
)

// Categories lists the supported asset categories.
func Categories() []Category {
	return []Category{CategoryTexture, CategorySprite, CategoryIcon, CategoryBackground}
}

// ParseCategory validates a free-form category string.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryTexture, CategorySprite, CategoryIcon, CategoryBackground:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCategory, s)
	}
}

// Synthesizer renders images from prompt keywords using fixed drawing rules.
// The random source is injected so palette picks can be made deterministic
// in tests.
type Synthesizer struct {
	rng *rand.Rand
}

// New constructs a Synthesizer backed by the provided random source. A nil
// source gets a time-seeded one.
func New(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{rng: rng}
}

// NewSeeded constructs a Synthesizer with a fixed seed.
func NewSeeded(seed int64) *Synthesizer {
	return New(rand.New(rand.NewSource(seed)))
}

// Synthesize renders an image for the given prompt, category, style, and
// "WxH" dimensions token. The buffer starts fully transparent and is mutated
// in place by exactly one category routine. An unmapped category fails fast
// rather than returning a blank image.
func (s *Synthesizer) Synthesize(prompt string, category Category, style, dims string) (*image.NRGBA, error) {
	width, height, err := ParseDimensions(dims)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	palette := ExtractColors(prompt)
	shapes := ExtractShapes(prompt)
	adjust := StyleFor(style)

	switch category {
	case CategoryTexture:
		s.drawTexture(img, palette, adjust)
	case CategorySprite:
		s.drawSprite(img, palette, shapes)
	case CategoryIcon:
		s.drawIcon(img, palette)
	case CategoryBackground:
		s.drawBackground(img, palette)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCategory, category)
	}
	return img, nil
}
