package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gamedevai/internal/infra"
	"gamedevai/internal/sqlinline"
)

const (
	ProviderOpenAI    = "openai"
	ProviderStability = "stability"
)

// Store resolves provider API keys from the integration_tokens table. It is
// consulted when the environment does not carry a key.
type Store struct {
	sql infra.SQLExecutor
}

func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{sql: sql}
}

func (s *Store) OpenAIAPIKey(ctx context.Context) (string, error) {
	return s.Token(ctx, ProviderOpenAI)
}

func (s *Store) StabilityAPIKey(ctx context.Context) (string, error) {
	return s.Token(ctx, ProviderStability)
}

// Token returns the stored token for the provider, or empty when none exists.
func (s *Store) Token(ctx context.Context, provider string) (string, error) {
	row := s.sql.QueryRow(ctx, sqlinline.QSelectIntegrationToken, provider)
	var token string
	if err := row.Scan(&token); err != nil {
		if infra.IsNoRows(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(token), nil
}

// SetToken stores or replaces the provider token.
func (s *Store) SetToken(ctx context.Context, provider, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("credentials: token is required")
	}
	raw, err := json.Marshal(map[string]any{})
	if err != nil {
		return err
	}
	_, err = s.sql.Exec(ctx, sqlinline.QUpsertIntegrationToken, provider, token, raw)
	return err
}
