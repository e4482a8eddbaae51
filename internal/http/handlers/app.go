package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"gamedevai/internal/debugassist"
	"gamedevai/internal/infra"
	"gamedevai/internal/infra/geoip"
	"gamedevai/internal/providers/image"
	"gamedevai/internal/storage"
)

// APIVersion is reported by the info and health endpoints.
const APIVersion = "2.0.0"

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Config *infra.Config
	Logger infra.Logger
	SQL    infra.SQLExecutor
	Images *image.Selector
	Debug  *debugassist.Assistant
	Store  *storage.FileStore
	GeoIP  geoip.CountryResolver

	// Now is injectable for tests; nil means the wall clock.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
