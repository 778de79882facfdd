package domain

import (
	"context"
	"errors"
)

// ErrScenarioNotFound indicates no snapshot exists under the requested name.
var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioStore persists raw scenario inputs (never engine outputs) across
// sessions. Round-tripping must reproduce the identical Scenario.
type ScenarioStore interface {
	// Save snapshots a scenario under a name, replacing any previous
	// snapshot (last computed wins).
	Save(ctx context.Context, name string, scenario *Scenario) error

	// Load retrieves a named snapshot, or ErrScenarioNotFound.
	Load(ctx context.Context, name string) (*Scenario, error)

	// List returns the names of all stored snapshots.
	List(ctx context.Context) ([]string, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
