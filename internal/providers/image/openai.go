package image

import (
	"context"
	"fmt"

	"gamedevai/internal/providers/openai"
)

// DalleGenerator adapts the OpenAI images client to the Generator contract.
type DalleGenerator struct {
	client *openai.Client
}

// NewDalleGenerator wraps an already configured client.
func NewDalleGenerator(client *openai.Client) *DalleGenerator {
	return &DalleGenerator{client: client}
}

func (g *DalleGenerator) Model() string {
	return ModelDalle
}

func (g *DalleGenerator) Available() bool {
	return g.client != nil && g.client.HasCredentials()
}

func (g *DalleGenerator) Generate(ctx context.Context, req GenerateRequest) (*Asset, error) {
	if !g.Available() {
		return nil, openai.ErrMissingAPIKey
	}
	enhanced := EnhanceDallePrompt(req.Prompt, req.Style)
	result, err := g.client.GenerateImage(ctx, openai.ImageRequest{
		Prompt:  enhanced,
		Size:    SnapDalleSize(req.Width, req.Height),
		Quality: req.Quality,
	})
	if err != nil {
		return nil, fmt.Errorf("dalle generate: %w", err)
	}
	width, height := result.Width, result.Height
	if width == 0 || height == 0 {
		width, height = req.Width, req.Height
	}
	return &Asset{
		Data:       result.Data,
		MIME:       result.Format,
		Width:      width,
		Height:     height,
		Model:      ModelDalle,
		PromptUsed: enhanced,
	}, nil
}
