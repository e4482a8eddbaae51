package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"gamedevai/internal/http/handlers"
	"gamedevai/internal/middleware"
)

// NewRouter assembles the full HTTP surface of the service.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.RequestID,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.CORSOrigins),
	)
	if app.Config.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))
	}

	r.Get("/", app.Root)
	r.Get("/health", app.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/models", app.Models)
		r.Post("/generate-asset", app.GenerateAsset)
		r.Post("/generate-batch", app.GenerateBatch)
		r.Post("/debug", app.DebugAssist)
		r.Get("/usage-stats", app.UsageStats)
		r.Route("/assets", func(r chi.Router) {
			r.Get("/", app.ListAssets)
			r.Get("/export", app.ExportAssets)
			r.Get("/{id}/file", app.AssetFile)
		})
	})

	return r
}
