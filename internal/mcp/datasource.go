package mcp

import (
	"context"

	"github.com/meltforce/powerup/internal/models"
	"github.com/meltforce/powerup/internal/storage"
)

// DataSource abstracts the workout store for MCP tools. Both *storage.DB
// (local file) and HTTPClient (remote via REST API) satisfy this interface.
// Catalog content (presets, Training Vault) is static and served locally in
// either mode.
type DataSource interface {
	QueryStrengthWorkouts(ctx context.Context) ([]models.StrengthWorkout, error)
	QueryEnduranceWorkouts(ctx context.Context) ([]models.EnduranceWorkout, error)
	QueryHICWorkouts(ctx context.Context) ([]models.HICWorkout, error)
	QueryAllWorkouts(ctx context.Context) ([]models.Workout, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
