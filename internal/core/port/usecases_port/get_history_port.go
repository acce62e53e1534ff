package usecases_port

import (
	"context"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetHistoryUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter, order domain.SortOrder) ([]domain.HistoryEntry, error)
}
