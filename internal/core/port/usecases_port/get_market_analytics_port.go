package usecases_port

import (
	"context"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetMarketAnalyticsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, district, taluk string) (*domain.AnalyticsResult, error)
}
