package image

import (
	"context"
	"fmt"

	"gamedevai/internal/providers/stability"
)

// StableDiffusionGenerator adapts the Stability client to the Generator
// contract.
type StableDiffusionGenerator struct {
	client *stability.Client
}

// NewStableDiffusionGenerator wraps an already configured client.
func NewStableDiffusionGenerator(client *stability.Client) *StableDiffusionGenerator {
	return &StableDiffusionGenerator{client: client}
}

func (g *StableDiffusionGenerator) Model() string {
	return ModelStableDiffusion
}

func (g *StableDiffusionGenerator) Available() bool {
	return g.client != nil && g.client.HasCredentials()
}

func (g *StableDiffusionGenerator) Generate(ctx context.Context, req GenerateRequest) (*Asset, error) {
	if !g.Available() {
		return nil, stability.ErrMissingAPIKey
	}
	enhanced := EnhanceStableDiffusionPrompt(req.Prompt, req.Style)
	result, err := g.client.GenerateImage(ctx, stability.ImageRequest{
		Prompt: enhanced,
		Width:  req.Width,
		Height: req.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("stable diffusion generate: %w", err)
	}
	return &Asset{
		Data:       result.Data,
		MIME:       result.Format,
		Width:      result.Width,
		Height:     result.Height,
		Model:      ModelStableDiffusion,
		PromptUsed: enhanced,
	}, nil
}
