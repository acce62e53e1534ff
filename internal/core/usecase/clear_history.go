package usecase

import (
	"context"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

type ClearHistoryUseCase struct {
	history port.HistoryStorePort
}

func NewClearHistoryUseCase(history port.HistoryStorePort) *ClearHistoryUseCase {
	return &ClearHistoryUseCase{history: history}
}

// Execute wipes the user's whole log. Other users' logs are untouched.
func (uc *ClearHistoryUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ClearHistory",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.history.Clear(ctx, userID); err != nil {
		ucLogger.Error("Failed to clear history", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
