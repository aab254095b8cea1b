package checkins

import (
	"context"

	"github.com/dmitrijs2005/mindful/internal/client/models"
)

// Repository stores check-ins of every user.
type Repository interface {
	// All returns every stored record in insertion order.
	All(ctx context.Context) ([]models.CheckIn, error)

	// Append adds one record at the end.
	Append(ctx context.Context, c models.CheckIn) error

	// SeedIfEmpty appends samples when the store (ScopeGlobal) or the
	// records of userID (ScopeUser) are empty. It reports whether anything
	// was written.
	SeedIfEmpty(ctx context.Context, scope SeedScope, userID string, samples []models.CheckIn) (bool, error)
}
