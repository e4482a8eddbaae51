package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDBPool initializes a new pgx connection pool using the provided configuration.
func NewDBPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return pool, nil
}

// IsNoRows reports whether the error is pgx's no-rows sentinel.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS assets (
    id            text PRIMARY KEY,
    prompt        text NOT NULL,
    category      text NOT NULL,
    style         text NOT NULL,
    dimensions    text NOT NULL,
    model         text NOT NULL,
    storage_key   text NOT NULL,
    mime          text NOT NULL,
    bytes         bigint NOT NULL DEFAULT 0,
    width         int NOT NULL DEFAULT 0,
    height        int NOT NULL DEFAULT 0,
    color_palette jsonb NOT NULL DEFAULT '[]'::jsonb,
    country       text NOT NULL DEFAULT '',
    created_at    timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS debug_sessions (
    id            text PRIMARY KEY,
    engine        text NOT NULL,
    error_message text NOT NULL,
    analysis      text NOT NULL,
    solutions     jsonb NOT NULL DEFAULT '[]'::jsonb,
    created_at    timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS analytics_daily (
    day              text PRIMARY KEY,
    ai_requests      bigint NOT NULL DEFAULT 0,
    images_generated bigint NOT NULL DEFAULT 0,
    request_success  bigint NOT NULL DEFAULT 0,
    request_fail     bigint NOT NULL DEFAULT 0,
    debug_sessions   bigint NOT NULL DEFAULT 0,
    created_at       timestamptz NOT NULL DEFAULT now(),
    updated_at       timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS integration_tokens (
    provider   text PRIMARY KEY,
    token      text NOT NULL,
    properties jsonb NOT NULL DEFAULT '{}'::jsonb,
    updated_at timestamptz NOT NULL DEFAULT now()
)`,
}

// EnsureSchema creates the service tables when they do not exist yet. The
// service bootstraps its own schema on startup instead of shipping a
// migration pipeline.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
