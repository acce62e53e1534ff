package port

import (
	"context"

	"housing-insights-service/internal/core/domain"
)

// PredictorPort is the remote scoring endpoint.
type PredictorPort interface {
	// Predict submits the property attributes and returns the predicted
	// price in the endpoint's own currency (USD). Failures are classified:
	// domain.ErrPredictorUnreachable for transport errors,
	// *domain.EndpointError for non-success HTTP statuses and
	// *domain.PredictionRejectedError when the endpoint answers
	// success=false.
	Predict(ctx context.Context, req domain.PredictionRequest) (float64, error)

	// Health reports whether the endpoint is reachable and its model loaded.
	Health(ctx context.Context) (bool, error)
}
