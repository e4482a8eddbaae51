package image

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"gamedevai/internal/synth"
)

// ProceduralGenerator renders assets locally with the synthesizer. It is
// always available and serves as the fallback when no hosted backend has
// credentials.
type ProceduralGenerator struct {
	synth *synth.Synthesizer
}

// NewProceduralGenerator wraps a synthesizer.
func NewProceduralGenerator(s *synth.Synthesizer) *ProceduralGenerator {
	return &ProceduralGenerator{synth: s}
}

func (g *ProceduralGenerator) Model() string {
	return ModelProcedural
}

func (g *ProceduralGenerator) Available() bool {
	return g.synth != nil
}

func (g *ProceduralGenerator) Generate(ctx context.Context, req GenerateRequest) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	category, err := synth.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	img, err := g.synth.Synthesize(req.Prompt, category, req.Style, sizeToken(req.Width, req.Height))
	if err != nil {
		return nil, fmt.Errorf("procedural generate: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("procedural encode: %w", err)
	}
	bounds := img.Bounds()
	return &Asset{
		Data:       buf.Bytes(),
		MIME:       "image/png",
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Model:      ModelProcedural,
		PromptUsed: req.Prompt,
	}, nil
}
