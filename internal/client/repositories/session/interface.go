package session

import (
	"context"

	"github.com/dmitrijs2005/mindful/internal/client/models"
)

// Repository stores at most one user: the current session.
type Repository interface {
	// Load returns the stored user, or nil when there is no session.
	Load(ctx context.Context) (*models.User, error)

	// Save replaces the stored session.
	Save(ctx context.Context, user *models.User) error

	// Clear removes the session. Clearing an empty session is not an error.
	Clear(ctx context.Context) error
}
