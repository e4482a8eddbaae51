package synth

import (
	"image"
	"image/color"
)

const (
	textureCellStep = 20
	textureCellFill = 15
	spriteShapeMax  = 3
	spriteShrinkPx  = 10
)

// drawTexture tiles the canvas with filled cells separated by gutters. Each
// cell gets a random palette color with the contrast factor applied per
// channel, clamped to the valid range.
func (s *Synthesizer) drawTexture(img *image.NRGBA, palette []color.NRGBA, adjust Style) {
	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x += textureCellStep {
		for y := bounds.Min.Y; y < bounds.Max.Y; y += textureCellStep {
			c := palette[s.rng.Intn(len(palette))]
			cell := color.NRGBA{
				R: scaleChannel(c.R, adjust.Contrast),
				G: scaleChannel(c.G, adjust.Contrast),
				B: scaleChannel(c.B, adjust.Contrast),
				A: 255,
			}
			fillRect(img, x, y, x+textureCellFill, y+textureCellFill, cell)
		}
	}
}

// drawSprite stacks up to three centered shapes, each 10px smaller than the
// previous one. Circles are filled discs; every other shape renders as a
// filled square.
func (s *Synthesizer) drawSprite(img *image.NRGBA, palette []color.NRGBA, shapes []string) {
	bounds := img.Bounds()
	cx, cy := bounds.Dx()/2, bounds.Dy()/2
	size := minInt(bounds.Dx(), bounds.Dy()) / 3

	for i, shape := range shapes {
		if i >= spriteShapeMax {
			break
		}
		c := palette[s.rng.Intn(len(palette))]
		if shape == "circle" {
			fillCircle(img, cx, cy, size, c)
		} else {
			fillRect(img, cx-size, cy-size, cx+size, cy+size, c)
		}
		size -= spriteShrinkPx
	}
}

// drawIcon renders a filled outlined circle with a smaller centered square.
// Single-color palettes reuse the first color for the outline; the inner
// square falls back to opaque white.
func (s *Synthesizer) drawIcon(img *image.NRGBA, palette []color.NRGBA) {
	bounds := img.Bounds()
	cx, cy := bounds.Dx()/2, bounds.Dy()/2
	size := minInt(bounds.Dx(), bounds.Dy()) / 3

	outline := palette[0]
	inner := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if len(palette) > 1 {
		outline = palette[1]
		inner = palette[1]
	}

	fillCircle(img, cx, cy, size, palette[0])
	strokeCircle(img, cx, cy, size, outline)

	half := size / 2
	fillRect(img, cx-half, cy-half, cx+half, cy+half, inner)
}

// drawBackground blends the first two palette colors row by row, top to
// bottom. A single-color palette blends the color with itself. Channel
// blends truncate to integers.
func (s *Synthesizer) drawBackground(img *image.NRGBA, palette []color.NRGBA) {
	bounds := img.Bounds()
	height := bounds.Dy()
	first := palette[0]
	second := first
	if len(palette) > 1 {
		second = palette[1]
	}

	for y := 0; y < height; y++ {
		ratio := float64(y) / float64(height)
		row := color.NRGBA{
			R: lerpChannel(first.R, second.R, ratio),
			G: lerpChannel(first.G, second.G, ratio),
			B: lerpChannel(first.B, second.B, ratio),
			A: 255,
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetNRGBA(x, bounds.Min.Y+y, row)
		}
	}
}

func scaleChannel(v uint8, factor float64) uint8 {
	scaled := int(float64(v) * factor)
	if scaled > 255 {
		return 255
	}
	if scaled < 0 {
		return 0
	}
	return uint8(scaled)
}

func lerpChannel(a, b uint8, ratio float64) uint8 {
	return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
}

// fillRect fills the half-open rectangle [x0,x1)x[y0,y1), clipped to the
// image bounds. Inverted rectangles draw nothing.
func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	bounds := img.Bounds()
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	if r <= 0 {
		return
	}
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				setClipped(img, x, y, c)
			}
		}
	}
}

func strokeCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	if r <= 0 {
		return
	}
	innerSq := (r - 1) * (r - 1)
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			if d <= r*r && d > innerSq {
				setClipped(img, x, y, c)
			}
		}
	}
}

func setClipped(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
