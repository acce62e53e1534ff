package port

import (
	"context"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
)

// PreferencesStorePort reads and writes the per-user settings record
// wholesale; there is no partial update.
type PreferencesStorePort interface {
	// Load returns the user's preferences, or the defaults when none were
	// saved yet.
	Load(ctx context.Context, userID uuid.UUID) (domain.Preferences, error)

	Save(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) error
}
