// Package walls provides the PostgreSQL-backed repository for wall records.
package walls

import (
	"context"

	"github.com/mkalens/wallpaper/internal/server/models"
)

type Repository interface {
	// Create inserts a wall and returns it with its generated timestamps.
	Create(ctx context.Context, wall *models.Wall) (*models.Wall, error)

	// GetDefault returns the single configured wall. With more than one row
	// present the oldest wins, deterministically.
	GetDefault(ctx context.Context) (*models.Wall, error)

	// GetByID returns the wall with the given id.
	GetByID(ctx context.Context, id string) (*models.Wall, error)

	// Count returns the number of wall rows.
	Count(ctx context.Context) (int64, error)
}
