package synth

import (
	"fmt"
	"image"
	"image/color"
	"sort"
)

const paletteSummaryMax = 5

// SummarizePalette returns up to five "#rrggbb" strings for the most frequent
// opaque pixel colors in the image, ordered by descending frequency. Fully
// transparent pixels are skipped. An image with no visible pixels yields the
// sentinel "#000000".
func SummarizePalette(img *image.NRGBA) []string {
	counts := make(map[color.NRGBA]int)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.NRGBAAt(x, y)
			if px.A == 0 {
				continue
			}
			counts[px]++
		}
	}
	if len(counts) == 0 {
		return []string{"#000000"}
	}

	type entry struct {
		hex   string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for px, n := range counts {
		entries = append(entries, entry{
			hex:   fmt.Sprintf("#%02x%02x%02x", px.R, px.G, px.B),
			count: n,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].hex < entries[j].hex
	})

	limit := paletteSummaryMax
	if len(entries) < limit {
		limit = len(entries)
	}
	out := make([]string, 0, limit)
	for _, e := range entries[:limit] {
		out = append(out, e.hex)
	}
	return out
}
