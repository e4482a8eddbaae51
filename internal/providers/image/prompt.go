package image

import (
	"fmt"
	"strings"
)

// Style enhancements appended to user prompts before they reach a hosted
// model. Each backend responds best to its own phrasing.
var dalleStylePrompts = map[string]string{
	"realistic":  "photorealistic, high quality, detailed",
	"cartoon":    "cartoon style, animated, colorful",
	"pixel":      "pixel art style, 8-bit, retro gaming",
	"minimalist": "minimalist design, clean, simple",
}

var sdStylePrompts = map[string]string{
	"realistic":  "photorealistic, ultra detailed, 8k resolution",
	"cartoon":    "cartoon illustration, vibrant colors, stylized",
	"pixel":      "pixel art, 16-bit style, game sprite",
	"minimalist": "minimalist art, clean design, geometric",
}

// EnhanceDallePrompt builds the prompt sent to the DALL-E API.
func EnhanceDallePrompt(prompt, style string) string {
	return joinPromptParts(prompt, dalleStylePrompts[normalizeStyle(style)], "game asset")
}

// EnhanceStableDiffusionPrompt builds the prompt sent to the Stability API.
func EnhanceStableDiffusionPrompt(prompt, style string) string {
	return joinPromptParts(prompt, sdStylePrompts[normalizeStyle(style)], "game asset, high quality")
}

// SnapDalleSize maps arbitrary dimensions to a size token the DALL-E API
// accepts. Square requests pass through; everything else snaps to the
// default square.
func SnapDalleSize(width, height int) string {
	if width == height && width > 0 {
		return sizeToken(width, height)
	}
	return "1024x1024"
}

func sizeToken(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

func normalizeStyle(style string) string {
	return strings.ToLower(strings.TrimSpace(style))
}

func joinPromptParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}
