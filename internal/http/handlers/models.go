package handlers

import (
	"net/http"

	"gamedevai/internal/providers/image"
)

type modelCapabilities struct {
	ModelName               string   `json:"model_name"`
	Available               bool     `json:"available"`
	SupportedStyles         []string `json:"supported_styles"`
	SupportedDimensions     []string `json:"supported_dimensions"`
	MaxPromptLength         int      `json:"max_prompt_length"`
	EstimatedGenerationTime string   `json:"estimated_generation_time"`
}

// Models describes each backend's capabilities and current availability.
func (a *App) Models(w http.ResponseWriter, r *http.Request) {
	available := a.Images.Available()
	a.json(w, http.StatusOK, map[string]modelCapabilities{
		image.ModelDalle: {
			ModelName:               "DALL-E 3",
			Available:               available[image.ModelDalle],
			SupportedStyles:         []string{"realistic", "cartoon", "minimalist"},
			SupportedDimensions:     []string{"1024x1024", "1792x1024", "1024x1792"},
			MaxPromptLength:         4000,
			EstimatedGenerationTime: "10-30 seconds",
		},
		image.ModelStableDiffusion: {
			ModelName:               "Stable Diffusion XL",
			Available:               available[image.ModelStableDiffusion],
			SupportedStyles:         []string{"realistic", "cartoon", "pixel", "minimalist"},
			SupportedDimensions:     []string{"512x512", "768x768", "1024x1024"},
			MaxPromptLength:         2000,
			EstimatedGenerationTime: "5-15 seconds",
		},
		image.ModelProcedural: {
			ModelName:               "Procedural Generator",
			Available:               true,
			SupportedStyles:         []string{"realistic", "cartoon", "pixel", "minimalist"},
			SupportedDimensions:     []string{"256x256", "512x512", "1024x1024"},
			MaxPromptLength:         500,
			EstimatedGenerationTime: "1-3 seconds",
		},
	})
}
