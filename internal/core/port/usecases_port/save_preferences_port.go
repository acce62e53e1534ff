package usecases_port

import (
	"context"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
)

type SavePreferencesUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) error
}
