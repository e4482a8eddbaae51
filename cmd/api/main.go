package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gamedevai/internal/debugassist"
	"gamedevai/internal/http/handlers"
	"gamedevai/internal/http/httpapi"
	"gamedevai/internal/infra"
	"gamedevai/internal/infra/credentials"
	"gamedevai/internal/infra/geoip"
	"gamedevai/internal/providers/image"
	"gamedevai/internal/providers/openai"
	"gamedevai/internal/providers/stability"
	"gamedevai/internal/storage"
	"gamedevai/internal/synth"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if err := infra.EnsureSchema(ctx, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}
	runner := infra.NewSQLRunner(dbpool, logger)

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize asset storage")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
		resolver = nil
	}

	// Environment keys win; the integration_tokens table is the fallback for
	// keys provisioned at runtime.
	tokens := credentials.NewStore(runner)
	openaiKey := cfg.OpenAIAPIKey
	if openaiKey == "" {
		if key, err := tokens.OpenAIAPIKey(ctx); err == nil {
			openaiKey = key
		}
	}
	stabilityKey := cfg.StabilityAPIKey
	if stabilityKey == "" {
		if key, err := tokens.StabilityAPIKey(ctx); err == nil {
			stabilityKey = key
		}
	}

	openaiClient, err := openai.NewClient(openai.Options{
		APIKey:         openaiKey,
		BaseURL:        cfg.OpenAIBaseURL,
		Model:          cfg.OpenAIModel,
		Logger:         &logger,
		RequestTimeout: cfg.ProviderTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build openai client")
	}
	stabilityClient, err := stability.NewClient(stability.Options{
		APIKey:         stabilityKey,
		BaseURL:        cfg.StabilityBaseURL,
		Engine:         cfg.StabilityEngine,
		Logger:         &logger,
		RequestTimeout: cfg.ProviderTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build stability client")
	}

	var rng *rand.Rand
	if cfg.ProceduralRandSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.ProceduralRandSeed))
	}
	selector := image.NewSelector(
		image.NewDalleGenerator(openaiClient),
		image.NewStableDiffusionGenerator(stabilityClient),
		image.NewProceduralGenerator(synth.New(rng)),
	)

	app := &handlers.App{
		Config: cfg,
		Logger: logger,
		SQL:    runner,
		Images: selector,
		Debug:  debugassist.New(),
		Store:  store,
		GeoIP:  resolver,
	}

	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
