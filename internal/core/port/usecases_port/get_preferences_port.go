package usecases_port

import (
	"context"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPreferencesUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) (domain.Preferences, error)
}
