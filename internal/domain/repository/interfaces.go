package repository

import (
	"context"

	"stratosim/internal/domain/models"
)

// RunStore persists completed simulation run summaries.
type RunStore interface {
	Init(ctx context.Context) error // ensure tables, health checks
	Store(ctx context.Context, run *models.SimulationRun) error
	Recent(ctx context.Context, limit int) ([]*models.SimulationRun, error)
	Get(ctx context.Context, id string) (*models.SimulationRun, error)
	Health(ctx context.Context) error
	Close() error
}

// EventPublisher emits run lifecycle events for downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, run *models.SimulationRun) error
	Close() error
}

// PresetStore serves the platform and payload catalog.
type PresetStore interface {
	Platforms(ctx context.Context) ([]models.Platform, error)
	Platform(ctx context.Context, id int) (*models.Platform, error)
	Payloads(ctx context.Context) ([]models.Payload, error)
	Payload(ctx context.Context, id int) (*models.Payload, error)
}
