package handlers

import "net/http"

// Root serves the service information map.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"message": "GameDev AI Tools API",
		"version": APIVersion,
		"endpoints": map[string]string{
			"asset_generation": "/api/v1/generate-asset",
			"batch_generation": "/api/v1/generate-batch",
			"asset_history":    "/api/v1/assets",
			"debug_assistance": "/api/v1/debug",
			"usage_stats":      "/api/v1/usage-stats",
			"models":           "/api/v1/models",
			"health":           "/health",
		},
	})
}

// Health reports service status and backend availability.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"status":           "healthy",
		"available_models": a.Images.Available(),
		"api_version":      APIVersion,
		"timestamp":        a.now().Unix(),
	})
}
