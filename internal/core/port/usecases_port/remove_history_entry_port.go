package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type RemoveHistoryEntryUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, entryID string) error
}
