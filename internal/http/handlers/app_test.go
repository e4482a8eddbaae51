package handlers

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"gamedevai/internal/debugassist"
	"gamedevai/internal/infra"
	"gamedevai/internal/providers/image"
	"gamedevai/internal/storage"
	"gamedevai/internal/synth"
)

func newTestApp(t *testing.T, sql *stubSQL) *App {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return &App{
		Config: &infra.Config{
			AppEnv:          "test",
			Port:            "8080",
			AssetBaseURL:    "http://localhost:8080/api/v1/assets",
			DefaultProvider: "dalle",
			ProviderTimeout: time.Second,
		},
		Logger: zerolog.New(io.Discard),
		SQL:    sql,
		Images: image.NewSelector(nil, nil, image.NewProceduralGenerator(synth.NewSeeded(1))),
		Debug:  debugassist.New(),
		Store:  store,
	}
}
