package image

import (
	"context"
	"strings"
)

// Backend identifiers accepted in generation requests.
const (
	BackendDalle           = "dalle"
	BackendStableDiffusion = "stable_diffusion"
	BackendProcedural      = "procedural"
)

// Model identifiers reported back to callers.
const (
	ModelDalle           = "dall-e-3"
	ModelStableDiffusion = "stable-diffusion-xl"
	ModelProcedural      = "procedural"
)

// GenerateRequest describes a normalized request passed to any image backend.
// Category only matters to the procedural backend; hosted models work from
// the prompt and style alone.
type GenerateRequest struct {
	Prompt    string
	Category  string
	Style     string
	Width     int
	Height    int
	Quality   string
	RequestID string
}

// Asset represents a generated image.
type Asset struct {
	Data       []byte
	MIME       string
	Width      int
	Height     int
	Model      string
	PromptUsed string
}

// Generator is the contract implemented by all image backends.
type Generator interface {
	// Model identifies the backend in responses and analytics.
	Model() string
	// Available reports whether the backend can serve requests right now.
	Available() bool
	Generate(ctx context.Context, req GenerateRequest) (*Asset, error)
}

// NormalizeBackend sanitizes free-form user input into a known backend
// identifier. Unknown values fall back to the given default.
func NormalizeBackend(preference, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(preference)) {
	case BackendDalle, "dall-e", "dall-e-3", "openai":
		return BackendDalle
	case BackendStableDiffusion, "stable-diffusion", "stability", "sd":
		return BackendStableDiffusion
	case BackendProcedural:
		return BackendProcedural
	default:
		return fallback
	}
}
