package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/vaidy-in/dealdesk/internal/domain"
	"github.com/vaidy-in/dealdesk/internal/observability"
)

// ScenarioStore persists scenario snapshots as JSON strings in Redis.
// Snapshots carry no TTL; the latest Save under a name wins.
type ScenarioStore struct {
	client *redis.Client
	prefix string
}

// NewScenarioStore creates a new Redis scenario store adapter.
func NewScenarioStore(client *redis.Client, prefix string) *ScenarioStore {
	return &ScenarioStore{
		client: client,
		prefix: prefix,
	}
}

func (s *ScenarioStore) key(name string) string {
	return s.prefix + name
}

// Save snapshots a scenario under a name, replacing any previous snapshot.
func (s *ScenarioStore) Save(ctx context.Context, name string, scenario *domain.Scenario) error {
	logger := observability.FromContext(ctx)

	data, err := json.Marshal(scenario)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	if err := s.client.Set(ctx, s.key(name), data, 0).Err(); err != nil {
		logger.Error("scenario save failed",
			observability.String("name", name),
			observability.Error(err))
		return fmt.Errorf("failed to save scenario: %w", err)
	}

	logger.Debug("scenario saved",
		observability.String("name", name),
		observability.Int("size", len(data)))
	return nil
}

// Load retrieves a named snapshot, or domain.ErrScenarioNotFound.
func (s *ScenarioStore) Load(ctx context.Context, name string) (*domain.Scenario, error) {
	logger := observability.FromContext(ctx)

	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrScenarioNotFound
		}
		logger.Error("scenario load failed",
			observability.String("name", name),
			observability.Error(err))
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}

	var scenario domain.Scenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}

	return &scenario, nil
}

// List returns the names of all stored snapshots.
func (s *ScenarioStore) List(ctx context.Context) ([]string, error) {
	logger := observability.FromContext(ctx)

	keys, err := s.client.Keys(ctx, s.prefix+"*").Result()
	if err != nil {
		logger.Error("scenario list failed",
			observability.Error(err))
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, s.prefix))
	}

	return names, nil
}
