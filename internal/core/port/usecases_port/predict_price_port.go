package usecases_port

import (
	"context"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
)

type PredictPriceUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, req domain.PredictionRequest) (*domain.PredictionResult, error)
}
