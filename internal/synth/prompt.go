package synth

import (
	"image/color"
	"strings"
)

// colorKeywords maps prompt keywords to RGB values. Matches are collected in
// table order, not prompt order.
var colorKeywords = []struct {
	name string
	rgb  color.NRGBA
}{
	{"red", color.NRGBA{R: 255, A: 255}},
	{"blue", color.NRGBA{B: 255, A: 255}},
	{"green", color.NRGBA{G: 255, A: 255}},
	{"yellow", color.NRGBA{R: 255, G: 255, A: 255}},
	{"purple", color.NRGBA{R: 128, B: 128, A: 255}},
	{"orange", color.NRGBA{R: 255, G: 165, A: 255}},
	{"brown", color.NRGBA{R: 139, G: 69, B: 19, A: 255}},
	{"black", color.NRGBA{A: 255}},
	{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	{"gray", color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
	{"pink", color.NRGBA{R: 255, G: 192, B: 203, A: 255}},
}

// defaultPalette is substituted when the prompt names no known color.
var defaultPalette = []color.NRGBA{
	{R: 100, G: 150, B: 200, A: 255},
	{R: 200, G: 100, B: 150, A: 255},
	{R: 150, G: 200, B: 100, A: 255},
}

// shapeKeywords is the fixed shape vocabulary recognized in prompts.
var shapeKeywords = []string{"circle", "square", "triangle", "rectangle", "star", "diamond", "hexagon"}

// ExtractColors returns the palette of colors named anywhere in the prompt,
// in table order. No deduplication or frequency weighting is applied.
func ExtractColors(prompt string) []color.NRGBA {
	lower := strings.ToLower(prompt)
	var found []color.NRGBA
	for _, kw := range colorKeywords {
		if strings.Contains(lower, kw.name) {
			found = append(found, kw.rgb)
		}
	}
	if len(found) == 0 {
		return append([]color.NRGBA(nil), defaultPalette...)
	}
	return found
}

// ExtractShapes returns the shape names found in the prompt, in vocabulary
// order, defaulting to a single rectangle.
func ExtractShapes(prompt string) []string {
	lower := strings.ToLower(prompt)
	var found []string
	for _, shape := range shapeKeywords {
		if strings.Contains(lower, shape) {
			found = append(found, shape)
		}
	}
	if len(found) == 0 {
		return []string{"rectangle"}
	}
	return found
}
