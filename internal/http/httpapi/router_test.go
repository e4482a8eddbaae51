package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"gamedevai/internal/debugassist"
	"gamedevai/internal/http/handlers"
	"gamedevai/internal/infra"
	"gamedevai/internal/providers/image"
	"gamedevai/internal/storage"
	"gamedevai/internal/synth"
)

type noopSQL struct{}

func (noopSQL) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (noopSQL) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return noopRow{}
}
func (noopSQL) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

type noopRow struct{}

func (noopRow) Scan(dest ...any) error { return pgx.ErrNoRows }

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	app := &handlers.App{
		Config: &infra.Config{
			AppEnv:          "test",
			Port:            "8080",
			AssetBaseURL:    "http://localhost:8080/api/v1/assets",
			DefaultProvider: "dalle",
			ProviderTimeout: time.Second,
		},
		Logger: zerolog.New(io.Discard),
		SQL:    noopSQL{},
		Images: image.NewSelector(nil, nil, image.NewProceduralGenerator(synth.NewSeeded(1))),
		Debug:  debugassist.New(),
		Store:  store,
	}
	return NewRouter(app)
}

func TestRouterHealth(t *testing.T) {
	router := newRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRouterGenerateAsset(t *testing.T) {
	router := newRouter(t)
	body, _ := json.Marshal(map[string]any{
		"prompt":     "blue ocean background",
		"asset_type": "background",
		"dimensions": "32x32",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-asset", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["model_used"] != "procedural" {
		t.Fatalf("model_used = %v", resp["model_used"])
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
