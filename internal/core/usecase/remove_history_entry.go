package usecase

import (
	"context"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

type RemoveHistoryEntryUseCase struct {
	history port.HistoryStorePort
}

func NewRemoveHistoryEntryUseCase(history port.HistoryStorePort) *RemoveHistoryEntryUseCase {
	return &RemoveHistoryEntryUseCase{history: history}
}

// Execute removes one entry from the user's log. Removing an id that does
// not exist is a no-op, not an error.
func (uc *RemoveHistoryEntryUseCase) Execute(ctx context.Context, userID uuid.UUID, entryID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RemoveHistoryEntry",
		"user_id":  userID,
		"entry_id": entryID,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.history.Remove(ctx, userID, entryID); err != nil {
		ucLogger.Error("Failed to remove history entry", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
