package port

import (
	"context"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
)

// QueryEventPublisherPort announces recorded queries to downstream consumers.
// Publishing is best-effort: a failure must never fail the query that
// triggered it.
type QueryEventPublisherPort interface {
	PublishQueryRecorded(ctx context.Context, userID uuid.UUID, entry domain.HistoryEntry) error
}
